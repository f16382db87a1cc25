package media

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/config"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage keeps uploads in an S3-compatible bucket.
// References are public URLs: "<public url>/<object key>".
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewS3Storage connects to the object store and creates the bucket if it is missing.
func NewS3Storage(ctx context.Context, cfg config.S3) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3Storage) Ingest(ctx context.Context, upload Upload) (string, error) {
	contentType, body, err := sniff(upload.Body)
	if err != nil {
		return "", err
	}

	key, err := objectName(upload.Filename)
	if err != nil {
		return "", err
	}

	size := upload.Size
	if size <= 0 {
		size = -1
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	ref := s.publicURL + "/" + key
	logger.FromContext(ctx).Infow("media stored", "ref", ref, "bytes", info.Size)
	return ref, nil
}

// Release removes the object behind ref. URLs outside this bucket are ignored.
func (s *S3Storage) Release(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, s.publicURL+"/")
	if !ok || key == "" {
		logger.FromContext(ctx).Warnw("media release skipped, foreign reference", "ref", ref)
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	logger.FromContext(ctx).Infow("media released", "ref", ref)
	return nil
}

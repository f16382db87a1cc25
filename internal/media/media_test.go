package media

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func pngUpload(name string) Upload {
	return Upload{Filename: name, ContentType: "image/png", Size: int64(len(pngHeader)), Body: bytes.NewReader(pngHeader)}
}

func TestIngestAll(t *testing.T) {
	ctx := context.Background()

	t.Run("all stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := NewMockStorage(ctrl)

		gomock.InOrder(
			storage.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return("uploads/a.png", nil),
			storage.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return("uploads/b.png", nil),
		)

		refs, err := IngestAll(ctx, storage, []Upload{pngUpload("a.png"), pngUpload("b.png")}, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"uploads/a.png", "uploads/b.png"}, refs)
	})

	t.Run("failure releases stored files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := NewMockStorage(ctrl)
		ingestErr := errors.New("disk full")

		gomock.InOrder(
			storage.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return("uploads/a.png", nil),
			storage.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return("uploads/b.png", nil),
			storage.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return("", ingestErr),
		)
		storage.EXPECT().Release(gomock.Any(), "uploads/a.png").Return(nil)
		storage.EXPECT().Release(gomock.Any(), "uploads/b.png").Return(nil)

		refs, err := IngestAll(ctx, storage, []Upload{pngUpload("a.png"), pngUpload("b.png"), pngUpload("c.png")}, 10)
		assert.ErrorIs(t, err, ingestErr)
		assert.Nil(t, refs)
	})

	t.Run("too many files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := NewMockStorage(ctrl)

		_, err := IngestAll(ctx, storage, []Upload{pngUpload("a.png"), pngUpload("b.png")}, 1)
		assert.ErrorIs(t, err, ErrTooManyFiles)
	})

	t.Run("no uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := NewMockStorage(ctrl)

		refs, err := IngestAll(ctx, storage, nil, 10)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}

func TestReleaseAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := NewMockStorage(ctrl)
	releaseErr := errors.New("permission denied")

	storage.EXPECT().Release(gomock.Any(), "a").Return(releaseErr)
	storage.EXPECT().Release(gomock.Any(), "b").Return(nil)

	err := ReleaseAll(context.Background(), storage, []string{"a", "b"})
	assert.ErrorIs(t, err, releaseErr)
}

func TestSniff(t *testing.T) {
	t.Run("image keeps the full body", func(t *testing.T) {
		contentType, body, err := sniff(bytes.NewReader(pngHeader))
		require.NoError(t, err)
		assert.Equal(t, "image/png", contentType)

		var buf bytes.Buffer
		_, err = buf.ReadFrom(body)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, buf.Bytes())
	})

	t.Run("text is rejected", func(t *testing.T) {
		_, _, err := sniff(strings.NewReader("hello, world"))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("empty is rejected", func(t *testing.T) {
		_, _, err := sniff(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\My Photo.png`, "My-Photo.png"},
		{"été à Paris.jpeg", "t-Paris.jpeg"},
		{"", "file"},
		{"...", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.in))
		})
	}
}

func TestObjectName(t *testing.T) {
	a, err := objectName("photo.jpg")
	require.NoError(t, err)
	b, err := objectName("photo.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "-photo.jpg"))
	assert.Len(t, strings.SplitN(a, "-", 3), 3)
}

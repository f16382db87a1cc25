package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// DestinationCacheRepository caches single destinations in Redis, keyed by id.
type DestinationCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached entries
}

// NewDestinationCacheRepository creates a cache with the given TTL.
func NewDestinationCacheRepository(client *redis.Client, expiration time.Duration) *DestinationCacheRepository {
	return &DestinationCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func destinationKey(id uuid.UUID) string {
	return fmt.Sprintf("destination:%s", id)
}

// Get returns the cached destination, or ErrCacheMiss.
func (r *DestinationCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	key := destinationKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	// The JSON form hides nothing on destinations, so it round-trips every field.
	var destination models.Destination
	if err := json.Unmarshal(val, &destination); err != nil {
		logger.FromContext(ctx).Infow("cache decode", "key", key, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("cache get", "key", key, "result", "hit")
	return &destination, nil
}

// Set stores the destination with the configured expiration.
func (r *DestinationCacheRepository) Set(ctx context.Context, destination *models.Destination) error {
	key := destinationKey(destination.ID)

	data, err := json.Marshal(destination)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.FromContext(ctx).Infow("cache set", "key", key, "error", err)

	return err
}

// Delete evicts the destination. Evicting a missing key is not an error.
func (r *DestinationCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := destinationKey(id)

	err := r.client.Del(ctx, key).Err()
	logger.FromContext(ctx).Infow("cache delete", "key", key, "error", err)

	return err
}

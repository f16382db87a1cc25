package services

import (
	"context"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/google/uuid"
)

// owned is implemented by every record scoped to a single user.
type owned interface {
	OwnerID() uuid.UUID
}

// loadOwned fetches a record and checks that userID owns it.
// A missing record yields ErrNotFound, someone else's record ErrForbidden.
// Every id-scoped operation goes through here, reads included.
func loadOwned[T owned](ctx context.Context, userID, id uuid.UUID, load func(context.Context, uuid.UUID) (T, error)) (T, error) {
	var zero T

	record, err := load(ctx, id)
	if err != nil {
		return zero, storeError(err)
	}

	if record.OwnerID() != userID {
		logger.FromContext(ctx).Warnw("ownership check failed", "user_id", userID, "resource_id", id)
		return zero, ErrForbidden
	}

	return record, nil
}

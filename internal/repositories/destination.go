package repositories

import (
	"context"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const destinationColumns = `id, user_id, name, notes, journal, location, visited, country_code,
	images, reminder_date, budget, itinerary, created_at, updated_at`

// DestinationRepository stores destinations. Nested parts live in JSONB columns.
type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepository(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// ListByUser returns every destination owned by userID, oldest first.
func (r *DestinationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM destinations WHERE user_id = $1 ORDER BY created_at`

	destinations := []models.Destination{}
	err := r.db.SelectContext(ctx, &destinations, query, userID)
	logQuery(ctx, query, []any{userID}, len(destinations), err)

	if err != nil {
		return nil, classify(err)
	}
	return destinations, nil
}

// GetByID returns the destination with the given id, or ErrNotFound.
func (r *DestinationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	var destination models.Destination
	err := r.db.GetContext(ctx, &destination, query, id)
	logQuery(ctx, query, []any{id}, destination.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &destination, nil
}

// Create inserts the destination and fills its timestamps.
func (r *DestinationRepository) Create(ctx context.Context, d *models.Destination) error {
	const query = `
		INSERT INTO destinations (id, user_id, name, notes, journal, location, visited, country_code,
			images, reminder_date, budget, itinerary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{
		d.ID, d.UserID, d.Name, d.Notes, d.Journal, d.Location, d.Visited, d.CountryCode,
		d.Images, d.ReminderDate, d.Budget, d.Itinerary,
	}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&d.CreatedAt, &d.UpdatedAt)
	logQuery(ctx, query, args, d.CreatedAt, err)

	return classify(err)
}

// Update overwrites every mutable column of the row. The owner column is never written.
func (r *DestinationRepository) Update(ctx context.Context, d *models.Destination) error {
	const query = `
		UPDATE destinations
		SET name = $2, notes = $3, journal = $4, location = $5, visited = $6, country_code = $7,
			images = $8, reminder_date = $9, budget = $10, itinerary = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{
		d.ID, d.Name, d.Notes, d.Journal, d.Location, d.Visited, d.CountryCode,
		d.Images, d.ReminderDate, d.Budget, d.Itinerary,
	}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&d.UpdatedAt)
	logQuery(ctx, query, args, d.UpdatedAt, err)

	return classify(err)
}

// Delete removes the destination, or returns ErrNotFound.
func (r *DestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM destinations WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{id}, rowsAffected, err)

	if err != nil {
		return classify(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

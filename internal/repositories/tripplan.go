package repositories

import (
	"context"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const tripPlanColumns = `id, user_id, destination_id, place, budget, itinerary, created_at, updated_at`

// TripPlanRepository stores trip plans.
type TripPlanRepository struct {
	db *sqlx.DB
}

func NewTripPlanRepository(db *sqlx.DB) *TripPlanRepository {
	return &TripPlanRepository{db: db}
}

// ListByUser returns every trip plan owned by userID, oldest first.
func (r *TripPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TripPlan, error) {
	const query = `SELECT ` + tripPlanColumns + ` FROM trip_plans WHERE user_id = $1 ORDER BY created_at`

	plans := []models.TripPlan{}
	err := r.db.SelectContext(ctx, &plans, query, userID)
	logQuery(ctx, query, []any{userID}, len(plans), err)

	if err != nil {
		return nil, classify(err)
	}
	return plans, nil
}

// GetByID returns the trip plan with the given id, or ErrNotFound.
func (r *TripPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TripPlan, error) {
	const query = `SELECT ` + tripPlanColumns + ` FROM trip_plans WHERE id = $1`

	var plan models.TripPlan
	err := r.db.GetContext(ctx, &plan, query, id)
	logQuery(ctx, query, []any{id}, plan.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &plan, nil
}

// Create inserts the plan and fills its timestamps.
func (r *TripPlanRepository) Create(ctx context.Context, p *models.TripPlan) error {
	const query = `
		INSERT INTO trip_plans (id, user_id, destination_id, place, budget, itinerary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{p.ID, p.UserID, p.DestinationID, p.Place, p.Budget, p.Itinerary}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	logQuery(ctx, query, args, p.CreatedAt, err)

	return classify(err)
}

// Update overwrites every mutable column. The owner column is never written.
func (r *TripPlanRepository) Update(ctx context.Context, p *models.TripPlan) error {
	const query = `
		UPDATE trip_plans
		SET destination_id = $2, place = $3, budget = $4, itinerary = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{p.ID, p.DestinationID, p.Place, p.Budget, p.Itinerary}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.UpdatedAt)
	logQuery(ctx, query, args, p.UpdatedAt, err)

	return classify(err)
}

// Delete removes the plan, or returns ErrNotFound.
func (r *TripPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM trip_plans WHERE id = $1`

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

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
)

// TripPlanStore persists trip plans.
//
//go:generate mockgen -source=tripplan.go -destination=mock_tripplan.go -package=services
type TripPlanStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TripPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TripPlan, error)
	Create(ctx context.Context, p *models.TripPlan) error
	Update(ctx context.Context, p *models.TripPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationReader looks up destinations linked from trip plans.
type DestinationReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error)
}

// TripPlanService implements the trip-plans resource.
type TripPlanService struct {
	store        TripPlanStore
	destinations DestinationReader
	validator    Validator
	publisher    Publisher
}

// NewTripPlanService creates a new TripPlanService.
func NewTripPlanService(store TripPlanStore, destinations DestinationReader, validator Validator, publisher Publisher) *TripPlanService {
	return &TripPlanService{
		store:        store,
		destinations: destinations,
		validator:    validator,
		publisher:    publisher,
	}
}

// List returns the caller's trip plans.
func (s *TripPlanService) List(ctx context.Context, userID uuid.UUID) ([]models.TripPlan, error) {
	plans, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list trip plans", "user_id", userID, "error", err)
		return nil, storeError(err)
	}
	return plans, nil
}

// Get returns one of the caller's trip plans.
func (s *TripPlanService) Get(ctx context.Context, userID, id uuid.UUID) (*models.TripPlan, error) {
	return loadOwned(ctx, userID, id, s.store.GetByID)
}

// Create inserts a trip plan owned by userID. Budget and itinerary default to empty.
func (s *TripPlanService) Create(ctx context.Context, userID uuid.UUID, in models.TripPlanInput) (*models.TripPlan, error) {
	in.Place = strings.TrimSpace(in.Place)

	if err := s.validator.Validate(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.checkDestination(ctx, userID, in.DestinationID); err != nil {
		return nil, err
	}

	p := &models.TripPlan{
		ID:            uuid.New(),
		UserID:        userID,
		DestinationID: in.DestinationID,
		Place:         in.Place,
		Itinerary:     in.Itinerary,
	}
	if in.Budget != nil {
		p.Budget = in.Budget.WithTotal()
	}
	if p.Itinerary == nil {
		p.Itinerary = models.Itinerary{}
	}

	if err := s.store.Create(ctx, p); err != nil {
		logger.FromContext(ctx).Errorw("failed to save trip plan", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	s.publisher.Publish(ctx, models.ActivityTripPlanCreated, userID, p.ID)
	return p, nil
}

// Update replaces every supplied field wholesale. A nil-UUID destinationId
// removes the destination link.
func (s *TripPlanService) Update(ctx context.Context, userID, id uuid.UUID, patch models.TripPlanPatch) (*models.TripPlan, error) {
	if patch.Place != nil {
		place := strings.TrimSpace(*patch.Place)
		if place == "" {
			return nil, invalid("place cannot be empty")
		}
		patch.Place = &place
	}

	if err := s.validator.Validate(patch); err != nil {
		return nil, invalid(err)
	}

	p, err := loadOwned(ctx, userID, id, s.store.GetByID)
	if err != nil {
		return nil, err
	}

	if patch.Place != nil {
		p.Place = *patch.Place
	}
	if patch.DestinationID != nil {
		if *patch.DestinationID == uuid.Nil {
			p.DestinationID = nil
		} else {
			if err := s.checkDestination(ctx, userID, patch.DestinationID); err != nil {
				return nil, err
			}
			p.DestinationID = patch.DestinationID
		}
	}
	if patch.Budget != nil {
		p.Budget = patch.Budget.WithTotal()
	}
	if patch.Itinerary != nil {
		p.Itinerary = *patch.Itinerary
	}

	if err := s.store.Update(ctx, p); err != nil {
		logger.FromContext(ctx).Errorw("failed to update trip plan", "trip_plan_id", id, "error", err)
		return nil, storeError(err)
	}

	s.publisher.Publish(ctx, models.ActivityTripPlanUpdated, userID, id)
	return p, nil
}

// Delete removes one of the caller's trip plans.
func (s *TripPlanService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := loadOwned(ctx, userID, id, s.store.GetByID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete trip plan", "trip_plan_id", id, "error", err)
		return storeError(err)
	}

	s.publisher.Publish(ctx, models.ActivityTripPlanDeleted, userID, id)
	return nil
}

// checkDestination accepts a nil link or a link to one of userID's destinations.
func (s *TripPlanService) checkDestination(ctx context.Context, userID uuid.UUID, destinationID *uuid.UUID) error {
	if destinationID == nil {
		return nil
	}

	if _, err := loadOwned(ctx, userID, *destinationID, s.destinations.GetByID); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) {
			return invalid("destinationId does not reference one of your destinations")
		}
		return err
	}
	return nil
}

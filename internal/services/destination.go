package services

import (
	"context"
	"errors"
	"strings"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/media"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/repositories"
	"github.com/google/uuid"
)

// DestinationStore persists destinations.
//
//go:generate mockgen -source=destination.go -destination=mock_destination.go -package=services
type DestinationStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	Create(ctx context.Context, d *models.Destination) error
	Update(ctx context.Context, d *models.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationCache caches single destinations by id.
type DestinationCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	Set(ctx context.Context, d *models.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationService implements the destinations resource.
type DestinationService struct {
	store     DestinationStore
	cache     DestinationCache // optional
	media     media.Storage
	validator Validator
	publisher Publisher
	maxFiles  int
}

// NewDestinationService creates a new DestinationService. cache may be nil.
func NewDestinationService(
	store DestinationStore,
	cache DestinationCache,
	storage media.Storage,
	validator Validator,
	publisher Publisher,
	maxFiles int,
) *DestinationService {
	return &DestinationService{
		store:     store,
		cache:     cache,
		media:     storage,
		validator: validator,
		publisher: publisher,
		maxFiles:  maxFiles,
	}
}

// List returns the caller's destinations.
func (s *DestinationService) List(ctx context.Context, userID uuid.UUID) ([]models.Destination, error) {
	destinations, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list destinations", "user_id", userID, "error", err)
		return nil, storeError(err)
	}
	return destinations, nil
}

// Get returns one of the caller's destinations.
func (s *DestinationService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Destination, error) {
	return loadOwned(ctx, userID, id, s.fetch)
}

// Create stores the uploads and inserts a destination owned by userID.
// When the insert fails the uploads are released again.
func (s *DestinationService) Create(ctx context.Context, userID uuid.UUID, in models.DestinationInput, uploads []media.Upload) (*models.Destination, error) {
	log := logger.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.CountryCode = strings.ToUpper(strings.TrimSpace(in.CountryCode))

	if err := s.validator.Validate(in); err != nil {
		return nil, invalid(err)
	}

	refs, err := media.IngestAll(ctx, s.media, uploads, s.maxFiles)
	if err != nil {
		return nil, mediaError(err)
	}

	d := &models.Destination{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         in.Name,
		Notes:        in.Notes,
		Journal:      in.Journal,
		Location:     *in.Location,
		Visited:      in.Visited,
		CountryCode:  in.CountryCode,
		Images:       refs,
		ReminderDate: in.ReminderDate,
		Itinerary:    models.Itinerary{},
	}

	if err := s.store.Create(ctx, d); err != nil {
		log.Errorw("failed to save destination", "user_id", userID, "error", err)
		_ = media.ReleaseAll(ctx, s.media, refs)
		return nil, storeError(err)
	}

	s.publisher.Publish(ctx, models.ActivityDestinationCreated, userID, d.ID)
	return d, nil
}

// Update applies the supplied fields, drops the images listed in
// ImagesToDelete and appends the new uploads. Only references present on the
// record are released, and only after the update is persisted.
func (s *DestinationService) Update(ctx context.Context, userID, id uuid.UUID, patch models.DestinationPatch, uploads []media.Upload) (*models.Destination, error) {
	log := logger.FromContext(ctx)

	if err := s.validatePatch(&patch); err != nil {
		return nil, err
	}

	d, err := loadOwned(ctx, userID, id, s.store.GetByID)
	if err != nil {
		return nil, err
	}

	applyDestinationPatch(d, patch)

	kept, removed := d.Images.Without(patch.ImagesToDelete)

	added, err := media.IngestAll(ctx, s.media, uploads, s.maxFiles)
	if err != nil {
		return nil, mediaError(err)
	}
	d.Images = append(kept, added...)

	if err := s.store.Update(ctx, d); err != nil {
		log.Errorw("failed to update destination", "destination_id", id, "error", err)
		_ = media.ReleaseAll(ctx, s.media, added)
		return nil, storeError(err)
	}

	s.evict(ctx, id)
	_ = media.ReleaseAll(ctx, s.media, removed)

	s.publisher.Publish(ctx, models.ActivityDestinationUpdated, userID, id)
	return d, nil
}

// Delete removes the destination, then releases its images. Release failures
// are logged and do not fail the call.
func (s *DestinationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	d, err := loadOwned(ctx, userID, id, s.store.GetByID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete destination", "destination_id", id, "error", err)
		return storeError(err)
	}

	s.evict(ctx, id)
	_ = media.ReleaseAll(ctx, s.media, d.Images)

	s.publisher.Publish(ctx, models.ActivityDestinationDeleted, userID, id)
	return nil
}

// GetPlan returns the embedded budget and itinerary. A destination without a
// plan yields a zero budget and an empty itinerary.
func (s *DestinationService) GetPlan(ctx context.Context, userID, id uuid.UUID) (*models.DestinationPlan, error) {
	d, err := loadOwned(ctx, userID, id, s.fetch)
	if err != nil {
		return nil, err
	}

	plan := &models.DestinationPlan{Budget: d.Budget, Itinerary: d.Itinerary}
	if plan.Budget == nil {
		plan.Budget = &models.Budget{}
	}
	if plan.Itinerary == nil {
		plan.Itinerary = models.Itinerary{}
	}
	return plan, nil
}

// UpdatePlan replaces the supplied parts of the embedded plan.
// The budget total is always recomputed.
func (s *DestinationService) UpdatePlan(ctx context.Context, userID, id uuid.UUID, plan models.DestinationPlan) (*models.Destination, error) {
	if err := s.validator.Validate(plan); err != nil {
		return nil, invalid(err)
	}

	d, err := loadOwned(ctx, userID, id, s.store.GetByID)
	if err != nil {
		return nil, err
	}

	if plan.Budget != nil {
		budget := plan.Budget.WithTotal()
		d.Budget = &budget
	}
	if plan.Itinerary != nil {
		d.Itinerary = plan.Itinerary
	}

	if err := s.store.Update(ctx, d); err != nil {
		logger.FromContext(ctx).Errorw("failed to update destination plan", "destination_id", id, "error", err)
		return nil, storeError(err)
	}

	s.evict(ctx, id)
	s.publisher.Publish(ctx, models.ActivityDestinationUpdated, userID, id)
	return d, nil
}

// validatePatch normalizes the patch. Required fields may be changed but not
// cleared.
func (s *DestinationService) validatePatch(patch *models.DestinationPatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return invalid("name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.CountryCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*patch.CountryCode))
		if code == "" {
			return invalid("countryCode cannot be empty")
		}
		patch.CountryCode = &code
	}

	if err := s.validator.Validate(*patch); err != nil {
		return invalid(err)
	}
	return nil
}

func applyDestinationPatch(d *models.Destination, patch models.DestinationPatch) {
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Notes != nil {
		d.Notes = *patch.Notes
	}
	if patch.Journal != nil {
		d.Journal = *patch.Journal
	}
	if patch.Location != nil {
		d.Location = *patch.Location
	}
	if patch.Visited != nil {
		d.Visited = *patch.Visited
	}
	if patch.CountryCode != nil {
		d.CountryCode = *patch.CountryCode
	}
	if patch.ReminderDate != nil {
		d.ReminderDate = patch.ReminderDate
	}
	if patch.ClearReminderDate {
		d.ReminderDate = nil
	}
}

// fetch reads through the cache when one is configured.
// Cache failures are logged and fall back to the store. After a fill the row
// is read again: a write that committed in between has already evicted, so
// the entry just set may be stale and is dropped.
func (s *DestinationService) fetch(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	if s.cache == nil {
		return s.store.GetByID(ctx, id)
	}
	log := logger.FromContext(ctx)

	d, err := s.cache.Get(ctx, id)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		log.Warnw("destination cache read failed", "destination_id", id, "error", err)
	}

	d, err = s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, d); err != nil {
		log.Warnw("destination cache write failed", "destination_id", id, "error", err)
		return d, nil
	}

	current, err := s.store.GetByID(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		s.evict(ctx, id)
		return nil, err
	case err != nil:
		s.evict(ctx, id)
		log.Warnw("destination cache recheck failed", "destination_id", id, "error", err)
		return d, nil
	case !current.UpdatedAt.Equal(d.UpdatedAt):
		s.evict(ctx, id)
		return current, nil
	}
	return d, nil
}

func (s *DestinationService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warnw("destination cache eviction failed", "destination_id", id, "error", err)
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/media"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=destination.go -destination=mock_destination.go -package=handlers

// DestinationLister lists the caller's destinations.
type DestinationLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Destination, error)
}

// DestinationGetter reads one destination.
type DestinationGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Destination, error)
}

// DestinationCreator creates a destination with its images.
type DestinationCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.DestinationInput, uploads []media.Upload) (*models.Destination, error)
}

// DestinationUpdater applies a partial update with image changes.
type DestinationUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, patch models.DestinationPatch, uploads []media.Upload) (*models.Destination, error)
}

// DestinationDeleter deletes a destination and its images.
type DestinationDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NewListDestinationsHandler returns an HTTP handler listing the caller's destinations.
// @Summary List destinations
// @Description Returns every destination owned by the authenticated user
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Destination
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /destinations [get]
func NewListDestinationsHandler(svc DestinationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUser(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		destinations, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, destinations)
	}
}

// NewGetDestinationHandler returns an HTTP handler for a single destination.
// @Summary Get destination
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination id"
// @Success 200 {object} models.Destination
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /destinations/{id} [get]
func NewGetDestinationHandler(svc DestinationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		destination, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, destination)
	}
}

// NewCreateDestinationHandler returns an HTTP handler creating a destination.
// Images are read from the "images" file field.
// @Summary Create destination
// @Description Creates a destination owned by the caller. Accepts multipart/form-data with images, or JSON without.
// @Tags destinations
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param location formData string true "Location as JSON, e.g. {\"lat\":48.85,\"lng\":2.35}"
// @Param countryCode formData string true "ISO 3166-1 alpha-2 country code"
// @Param notes formData string false "Notes"
// @Param journal formData string false "Journal"
// @Param visited formData boolean false "Visited"
// @Param reminderDate formData string false "Reminder date"
// @Param images formData file false "Images"
// @Success 201 {object} models.Destination
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or unsupported file"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /destinations [post]
func NewCreateDestinationHandler(svc DestinationCreator, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUser(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		form, err := decodeDestinationForm(w, r, maxBytes, "images")
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		defer form.close()

		in, err := form.input()
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		destination, err := svc.Create(r.Context(), userID, in, form.uploads)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, destination)
	}
}

// NewUpdateDestinationHandler returns an HTTP handler for partial destination updates.
// New images are read from the "newImages" file field.
// @Summary Update destination
// @Description Changes the supplied fields only. imagesToDelete removes images, newImages appends.
// @Tags destinations
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination id"
// @Param imagesToDelete formData string false "JSON array of image references"
// @Param newImages formData file false "Images to append"
// @Success 200 {object} models.Destination
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or unsupported file"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /destinations/{id} [put]
func NewUpdateDestinationHandler(svc DestinationUpdater, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		form, err := decodeDestinationForm(w, r, maxBytes, "newImages")
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		defer form.close()

		patch, err := form.patch()
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		destination, err := svc.Update(r.Context(), userID, id, patch, form.uploads)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, destination)
	}
}

// NewDeleteDestinationHandler returns an HTTP handler deleting a destination.
// @Summary Delete destination
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /destinations/{id} [delete]
func NewDeleteDestinationHandler(svc DestinationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Destination deleted"})
	}
}

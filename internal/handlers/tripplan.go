package handlers

import (
	"context"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=tripplan.go -destination=mock_tripplan.go -package=handlers

// TripPlanLister lists the caller's trip plans.
type TripPlanLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TripPlan, error)
}

// TripPlanGetter reads one trip plan.
type TripPlanGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.TripPlan, error)
}

// TripPlanCreator creates trip plans.
type TripPlanCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.TripPlanInput) (*models.TripPlan, error)
}

// TripPlanUpdater applies partial trip plan updates.
type TripPlanUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, patch models.TripPlanPatch) (*models.TripPlan, error)
}

// TripPlanDeleter deletes trip plans.
type TripPlanDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NewListTripPlansHandler returns an HTTP handler listing the caller's trip plans.
// @Summary List trip plans
// @Tags tripplans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TripPlan
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /tripplans [get]
func NewListTripPlansHandler(svc TripPlanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUser(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		plans, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, plans)
	}
}

// NewGetTripPlanHandler returns an HTTP handler for a single trip plan.
// @Summary Get trip plan
// @Tags tripplans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip plan id"
// @Success 200 {object} models.TripPlan
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tripplans/{id} [get]
func NewGetTripPlanHandler(svc TripPlanGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		plan, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}

// NewCreateTripPlanHandler returns an HTTP handler creating a trip plan.
// @Summary Create trip plan
// @Description destinationId, when given, must reference one of the caller's destinations
// @Tags tripplans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripPlan body models.TripPlanInput true "Trip plan"
// @Success 201 {object} models.TripPlan
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /tripplans [post]
func NewCreateTripPlanHandler(svc TripPlanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUser(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		var in models.TripPlanInput
		if err := decodeJSON(w, r, maxJSONBytes, &in); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		plan, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, plan)
	}
}

// NewUpdateTripPlanHandler returns an HTTP handler for partial trip plan updates.
// @Summary Update trip plan
// @Description Replaces the supplied fields. A nil-UUID destinationId unlinks the destination.
// @Tags tripplans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip plan id"
// @Param tripPlan body models.TripPlanPatch true "Fields to change"
// @Success 200 {object} models.TripPlan
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tripplans/{id} [put]
func NewUpdateTripPlanHandler(svc TripPlanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		var patch models.TripPlanPatch
		if err := decodeJSON(w, r, maxJSONBytes, &patch); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		plan, err := svc.Update(r.Context(), userID, id, patch)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}

// NewDeleteTripPlanHandler returns an HTTP handler deleting a trip plan.
// @Summary Delete trip plan
// @Tags tripplans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip plan id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /tripplans/{id} [delete]
func NewDeleteTripPlanHandler(svc TripPlanDeleter) http.HandlerFunc {
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

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Trip plan deleted"})
	}
}

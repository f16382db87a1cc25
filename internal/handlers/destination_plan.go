package handlers

import (
	"context"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=destination_plan.go -destination=mock_destination_plan.go -package=handlers

// DestinationPlanGetter reads the plan embedded in a destination.
type DestinationPlanGetter interface {
	GetPlan(ctx context.Context, userID, id uuid.UUID) (*models.DestinationPlan, error)
}

// DestinationPlanUpdater replaces parts of the plan embedded in a destination.
type DestinationPlanUpdater interface {
	UpdatePlan(ctx context.Context, userID, id uuid.UUID, plan models.DestinationPlan) (*models.Destination, error)
}

// NewGetDestinationPlanHandler returns an HTTP handler for a destination's plan.
// @Summary Get destination plan
// @Description Returns the budget and itinerary of a destination
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination id"
// @Success 200 {object} models.DestinationPlan
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /destinations/{id}/plan [get]
func NewGetDestinationPlanHandler(svc DestinationPlanGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		plan, err := svc.GetPlan(r.Context(), userID, id)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}

// NewUpdateDestinationPlanHandler returns an HTTP handler storing a destination's plan.
// @Summary Update destination plan
// @Description Replaces the supplied budget and/or itinerary. The budget total is computed.
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination id"
// @Param plan body models.DestinationPlan true "Plan"
// @Success 200 {object} models.Destination
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /destinations/{id}/plan [put]
// @Router /destinations/{id}/plan [post]
func NewUpdateDestinationPlanHandler(svc DestinationPlanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, err := scopedRequest(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		var plan models.DestinationPlan
		if err := decodeJSON(w, r, maxJSONBytes, &plan); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		destination, err := svc.UpdatePlan(r.Context(), userID, id, plan)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, destination)
	}
}

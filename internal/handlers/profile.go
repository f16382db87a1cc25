package handlers

import (
	"context"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=handlers

// ProfileGetter defines the interface for reading the caller's profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ProfileUpdater defines the interface for changing the caller's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}

// ProfileUpdateRequest represents the JSON body of a profile update.
// Omitted or empty fields are left unchanged.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// New username
	Username *string `json:"username"`

	// New email
	Email *string `json:"email"`

	// Current password, required with newPassword
	CurrentPassword *string `json:"currentPassword"`

	// New password
	NewPassword *string `json:"newPassword"`
}

// NewProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "User no longer exists"
// @Router /auth/me [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUser(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update current user
// @Description Changes username, email or password. A new password requires the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile update"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, taken username/email or wrong current password"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /auth/update [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUser(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		var req ProfileUpdateRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, models.ProfileUpdate{
			Username:        req.Username,
			Email:           req.Email,
			CurrentPassword: req.CurrentPassword,
			NewPassword:     req.NewPassword,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

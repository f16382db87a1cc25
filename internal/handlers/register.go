package handlers

import (
	"context"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// maxJSONBytes bounds JSON request bodies.
const maxJSONBytes = 1 << 20

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Id of the new user
	ID string `json:"id"`

	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		user, err := svc.Register(r.Context(), models.Registration{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			ID:      user.ID.String(),
			Message: "User registered successfully",
		})
	}
}

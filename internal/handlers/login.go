package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, identifier, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// default: john_doe
	Identifier string `json:"identifier"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user by username or email and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials / invalid request body"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Identifier, req.Password)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

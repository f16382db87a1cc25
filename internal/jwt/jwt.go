package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingAuthHeader is returned when the request has no Authorization header.
	ErrMissingAuthHeader = errors.New("authorization header missing")
	// ErrInvalidAuthHeader is returned when the Authorization header is not "Bearer <token>".
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	// ErrInvalidToken is returned when a token fails signature or structure checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID uuid.UUID
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte        // Secret key for signing tokens
	exp       time.Duration // Token lifetime; zero issues tokens without expiry
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the token lifetime. Zero disables the exp claim.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a new JWT instance
func New(opts ...Option) *JWT {
	j := &JWT{}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a JWT token for a given userID
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if j.exp != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.exp))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses the token string and returns its claims if the token is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var parsed tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(parsed.UserID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.New("invalid user_id format"))
	}

	return &Claims{UserID: userID}, nil
}

// Validate reports whether the token is valid.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying the verified claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
//
//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)                   // Returns the user by id
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) // Returns the user matching username or email
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error // Inserts a new user
	Update(ctx context.Context, user *models.User) error // Persists username, email and password hash
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and profile changes.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	jwt       JWTGenerator
	validator Validator
	publisher Publisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, validator Validator, publisher Publisher) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		jwt:       jwt,
		validator: validator,
		publisher: publisher,
	}
}

// Register creates a user with a bcrypt-hashed password.
// A taken username or email yields ErrDuplicateKey.
func (svc *AuthService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	log := logger.FromContext(ctx)

	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = normalizeEmail(reg.Email)

	if err := svc.validator.Validate(reg); err != nil {
		return nil, invalid(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		log.Errorw("failed to save user", "username", user.Username, "err", err)
		return nil, storeError(err)
	}

	svc.publisher.Publish(ctx, models.ActivityUserRegistered, user.ID, user.ID)
	return user, nil
}

// Login authenticates a user by username or email and returns a JWT token.
// Unknown users and wrong passwords are indistinguishable.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	log := logger.FromContext(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", invalid("identifier and password are required")
	}
	user, err := svc.reader.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(storeError(err), ErrNotFound) {
			log.Warnw("login for unknown user", "identifier", identifier)
			return "", ErrInvalidCredentials
		}
		log.Errorw("failed to get user", "err", err)
		return "", storeError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warnw("invalid credentials", "identifier", identifier)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetProfile returns the user behind a token.
func (svc *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, storeError(err)
	}
	return user, nil
}

// UpdateProfile changes username, email or password. Empty strings count as
// not supplied. A new password requires the current one.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	log := logger.FromContext(ctx)

	upd.Username = trimmedOrNil(upd.Username)
	upd.Email = trimmedOrNil(upd.Email)
	upd.NewPassword = nonEmptyOrNil(upd.NewPassword)
	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		upd.Email = &email
	}

	if err := svc.validator.Validate(upd); err != nil {
		return nil, invalid(err)
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, storeError(err)
	}

	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.NewPassword != nil {
		if upd.CurrentPassword == nil ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*upd.CurrentPassword)) != nil {
			log.Warnw("password change with wrong current password", "user_id", userID)
			return nil, ErrInvalidCredentials
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*upd.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, storeError(err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func nonEmptyOrNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

package repositories

import (
	"context"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(ctx, query, []any{id}, user.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// GetByUsernameOrEmail returns the user whose username equals identifier or
// whose email equals it case-insensitively, or ErrNotFound. Usernames never
// contain "@", so at most one row matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = lower($1)
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, identifier)
	logQuery(ctx, query, []any{identifier}, user.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts the user and fills its timestamps.
// A taken username or email yields ErrDuplicateKey.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)

	// password hash stays out of the log
	logQuery(ctx, query, []any{user.ID, user.Username, user.Email}, user.CreatedAt, err)

	return classify(err)
}

// Update persists username, email and password hash.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash)
	err := row.Scan(&user.UpdatedAt)

	logQuery(ctx, query, []any{user.ID, user.Username, user.Email}, user.UpdatedAt, err)

	return classify(err)
}

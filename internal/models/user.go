package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database.
// PasswordHash is never serialized to JSON.
type User struct {
	ID           uuid.UUID `json:"_id" db:"id"`               // Primary key
	Username     string    `json:"username" db:"username"`    // Unique username
	Email        string    `json:"email" db:"email"`          // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// Registration is the validated payload for creating a user.
type Registration struct {
	Username string `json:"username" validate:"required,min=3,max=50,excludes=@"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileUpdate holds the optional fields of a profile update.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username        *string `json:"username" validate:"omitempty,min=3,max=50,excludes=@"`
	Email           *string `json:"email" validate:"omitempty,email"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=6"`
}

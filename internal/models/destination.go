package models

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a place a user visited or wants to visit.
type Destination struct {
	ID           uuid.UUID  `json:"_id" db:"id"`                               // Primary key
	UserID       uuid.UUID  `json:"userId" db:"user_id"`                       // Owner; set at creation and never reassigned
	Name         string     `json:"name" db:"name"`                            // Display name, required
	Notes        string     `json:"notes" db:"notes"`                          // Free-text notes
	Journal      string     `json:"journal" db:"journal"`                      // Free-text travel journal
	Location     Location   `json:"location" db:"location"`                    // Geographic point
	Visited      bool       `json:"visited" db:"visited"`                      // Visited or wished-for
	CountryCode  string     `json:"countryCode" db:"country_code"`             // ISO 3166-1 alpha-2
	Images       ImageList  `json:"images" db:"images"`                        // Media references, in upload order
	ReminderDate *time.Time `json:"reminderDate,omitempty" db:"reminder_date"` // Optional reminder
	Budget       *Budget    `json:"budget,omitempty" db:"budget"`              // Optional embedded plan budget
	Itinerary    Itinerary  `json:"itinerary" db:"itinerary"`                  // Optional embedded plan itinerary
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`                 // Creation timestamp
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`                 // Last update timestamp
}

// OwnerID implements the ownership contract of id-scoped resources.
func (d *Destination) OwnerID() uuid.UUID { return d.UserID }

// DestinationInput is the validated payload for creating a destination.
type DestinationInput struct {
	Name         string    `validate:"required,max=200"`
	Notes        string    `validate:"max=10000"`
	Journal      string    `validate:"max=50000"`
	Location     *Location `validate:"required"`
	Visited      bool
	CountryCode  string `validate:"required,iso3166_1_alpha2"`
	ReminderDate *time.Time
}

// DestinationPatch is a partial update. Nil fields are left untouched.
// ClearReminderDate removes the reminder; it wins over ReminderDate.
type DestinationPatch struct {
	Name              *string `validate:"omitempty,min=1,max=200"`
	Notes             *string `validate:"omitempty,max=10000"`
	Journal           *string `validate:"omitempty,max=50000"`
	Location          *Location
	Visited           *bool
	CountryCode       *string `validate:"omitempty,iso3166_1_alpha2"`
	ReminderDate      *time.Time
	ClearReminderDate bool
	ImagesToDelete    []string
}

// DestinationPlan is the embedded budget and itinerary of a destination.
type DestinationPlan struct {
	Budget    *Budget   `json:"budget"`
	Itinerary Itinerary `json:"itinerary" validate:"dive"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// TripPlan is a multi-day plan with a budget and an itinerary.
type TripPlan struct {
	ID            uuid.UUID  `json:"_id" db:"id"`                       // Primary key
	UserID        uuid.UUID  `json:"userId" db:"user_id"`               // Owner; set at creation and never reassigned
	DestinationID *uuid.UUID `json:"destinationId" db:"destination_id"` // Optional link to one of the owner's destinations
	Place         string     `json:"place" db:"place"`                  // Destination place name, required
	Budget        Budget     `json:"budget" db:"budget"`                // Cost breakdown
	Itinerary     Itinerary  `json:"itinerary" db:"itinerary"`          // Entries in insertion order
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`         // Last update timestamp
}

// OwnerID implements the ownership contract of id-scoped resources.
func (p *TripPlan) OwnerID() uuid.UUID { return p.UserID }

// TripPlanInput is the validated payload for creating a trip plan.
type TripPlanInput struct {
	Place         string     `json:"place" validate:"required,max=200"`
	DestinationID *uuid.UUID `json:"destinationId"`
	Budget        *Budget    `json:"budget"`
	Itinerary     Itinerary  `json:"itinerary" validate:"dive"`
}

// TripPlanPatch replaces every supplied field. Nil fields are left untouched.
type TripPlanPatch struct {
	Place         *string    `json:"place" validate:"omitempty,min=1,max=200"`
	DestinationID *uuid.UUID `json:"destinationId"`
	Budget        *Budget    `json:"budget"`
	Itinerary     *Itinerary `json:"itinerary" validate:"omitempty,dive"`
}

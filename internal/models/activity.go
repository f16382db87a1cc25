package models

// Activity event types published when owner-scoped records change.
const (
	ActivityDestinationCreated = "destination.created"
	ActivityDestinationUpdated = "destination.updated"
	ActivityDestinationDeleted = "destination.deleted"
	ActivityTripPlanCreated    = "tripplan.created"
	ActivityTripPlanUpdated    = "tripplan.updated"
	ActivityTripPlanDeleted    = "tripplan.deleted"
	ActivityUserRegistered     = "user.registered"
)

// Activity represents a change to a user's data, published to the event stream.
type Activity struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the change happened.
	Type       string `json:"type"`        // Type is one of the Activity* constants.
	UserID     string `json:"user_id"`     // UserID is the owner of the changed record.
	ResourceID string `json:"resource_id"` // ResourceID is the id of the changed record.
}

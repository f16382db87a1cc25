package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Nested parts of destinations and trip plans are stored as JSONB columns.

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func scanJSON(src any, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}
}

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`   // Latitude in degrees
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"` // Longitude in degrees
}

func (l Location) Value() (driver.Value, error) { return jsonValue(l) }

func (l *Location) Scan(src any) error { return scanJSON(src, l) }

// ImageList is an ordered list of media references.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]string{})
	}
	return jsonValue([]string(l))
}

func (l *ImageList) Scan(src any) error { return scanJSON(src, (*[]string)(l)) }

func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Contains reports whether ref is in the list.
func (l ImageList) Contains(ref string) bool {
	for _, img := range l {
		if img == ref {
			return true
		}
	}
	return false
}

// Without returns the list minus every reference in refs, keeping order,
// and the references that were actually removed.
func (l ImageList) Without(refs []string) (kept ImageList, removed []string) {
	drop := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		drop[ref] = struct{}{}
	}
	kept = make(ImageList, 0, len(l))
	for _, img := range l {
		if _, ok := drop[img]; ok {
			removed = append(removed, img)
			continue
		}
		kept = append(kept, img)
	}
	return kept, removed
}

// Budget is a cost breakdown by category. Total is derived from the categories.
type Budget struct {
	Transportation float64 `json:"transportation" validate:"gte=0"` // Flights, trains, local transport
	Accommodation  float64 `json:"accommodation" validate:"gte=0"`  // Hotels, rentals
	Food           float64 `json:"food" validate:"gte=0"`           // Meals
	Activities     float64 `json:"activities" validate:"gte=0"`     // Tours, tickets
	Misc           float64 `json:"misc" validate:"gte=0"`           // Everything else
	Total          float64 `json:"total"`                           // Sum of the categories
}

// Sum returns the sum of all categories.
func (b Budget) Sum() float64 {
	return b.Transportation + b.Accommodation + b.Food + b.Activities + b.Misc
}

// WithTotal returns a copy of b with Total recomputed.
func (b Budget) WithTotal() Budget {
	b.Total = b.Sum()
	return b
}

func (b Budget) Value() (driver.Value, error) { return jsonValue(b) }

func (b *Budget) Scan(src any) error { return scanJSON(src, b) }

// ItineraryEntry is one item of a day-by-day plan.
type ItineraryEntry struct {
	Day         int    `json:"day"`                                               // Day number; uniqueness is not enforced
	Title       string `json:"title"`                                             // Short title
	Description string `json:"description"`                                       // Free text
	Hour        string `json:"hour,omitempty"`                                    // Clock hour, e.g. "9" or "09:30"
	Period      string `json:"period,omitempty" validate:"omitempty,oneof=AM PM"` // AM or PM
}

// Itinerary keeps insertion order.
type Itinerary []ItineraryEntry

func (it Itinerary) Value() (driver.Value, error) {
	if it == nil {
		return jsonValue([]ItineraryEntry{})
	}
	return jsonValue([]ItineraryEntry(it))
}

func (it *Itinerary) Scan(src any) error { return scanJSON(src, (*[]ItineraryEntry)(it)) }

func (it Itinerary) MarshalJSON() ([]byte, error) {
	if it == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]ItineraryEntry(it))
}

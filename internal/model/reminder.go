package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is the central entity of the scheduler: something the user wants
// to be notified about at a due time and, optionally, near a place.
//
// Latitude and Longitude are either both set or both nil; a reminder with a
// location label but no resolved coordinate takes part in time-based
// scheduling only.
type Reminder struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at"`
	Location    *string   `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

// HasCoordinate reports whether the reminder carries a resolved coordinate.
func (r Reminder) HasCoordinate() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Package notify defines notification requests and the Center that keeps
// the armed set of requests consistent with what the scheduler submits.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// TriggerKind discriminates the trigger variants of a Request.
type TriggerKind int

const (
	// TriggerImmediate delivers the notification right away.
	TriggerImmediate TriggerKind = iota
	// TriggerAt delivers the notification once the At timestamp passes.
	TriggerAt
	// TriggerOnRegionEntry delivers the notification whenever a reported
	// coordinate falls inside the circular region.
	TriggerOnRegionEntry
)

// Trigger describes when a Request should fire. Only the fields of the
// active Kind are meaningful.
type Trigger struct {
	Kind         TriggerKind
	At           time.Time
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Immediate returns a trigger that fires on submission.
func Immediate() Trigger {
	return Trigger{Kind: TriggerImmediate}
}

// At returns a trigger that fires once t passes.
func At(t time.Time) Trigger {
	return Trigger{Kind: TriggerAt, At: t}
}

// OnRegionEntry returns a trigger that fires when a reported coordinate is
// within radiusMeters of the center.
func OnRegionEntry(lat, lon, radiusMeters float64) Trigger {
	return Trigger{
		Kind:         TriggerOnRegionEntry,
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radiusMeters,
	}
}

// Request is an instruction to arm one notification. Requests are never
// persisted; they are re-derived from reminder state on every scheduling
// pass, so resubmitting under the same identifier replaces rather than
// duplicates.
type Request struct {
	Identifier string
	Title      string
	Body       string
	Trigger    Trigger
}

// Identifiers derive deterministically from the reminder's immutable id so
// re-scheduling replaces the armed request instead of adding a second one.

// TimedID is the identifier of a reminder's due-time notification.
func TimedID(id uuid.UUID) string {
	return "timed:" + id.String()
}

// RegionID is the identifier of a reminder's region-entry notification.
func RegionID(id uuid.UUID) string {
	return "region:" + id.String()
}

// ProximityID is the identifier of an ad-hoc nearby-reminder notification.
func ProximityID(id uuid.UUID) string {
	return "proximity:" + id.String()
}

// HolidayID is the identifier of the holiday notification for a given
// YYYY-MM-DD date.
func HolidayID(date string) string {
	return "holiday:" + date
}

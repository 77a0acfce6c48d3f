// FilePath: internal/models/models.event.go
package models

import "time"

// EventKind is the closed set of activity kinds the vision system reports.
type EventKind string

const (
	EventKindWorking      EventKind = "working"
	EventKindIdle         EventKind = "idle"
	EventKindAbsent       EventKind = "absent"
	EventKindProductCount EventKind = "product_count"
)

// Kinds returns every recognized event kind.
func Kinds() []EventKind {
	return []EventKind{EventKindWorking, EventKindIdle, EventKindAbsent, EventKindProductCount}
}

// Valid reports whether k is one of the recognized kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventKindWorking, EventKindIdle, EventKindAbsent, EventKindProductCount:
		return true
	}
	return false
}

// IsState reports whether events of this kind occupy a slice of the timeline.
// product_count events are instantaneous and carry a unit count instead.
func (k EventKind) IsState() bool {
	switch k {
	case EventKindWorking, EventKindIdle, EventKindAbsent:
		return true
	}
	return false
}

// Event is a single timestamped observation from a CCTV vision sensor.
// The tuple (timestamp, worker_id, workstation_id, event_type) is unique:
// a second event carrying the same tuple is a duplicate and never creates
// a second record. Events are append-only and never mutated.
type Event struct {
	ID            string    `json:"id" db:"id"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	WorkerID      string    `json:"worker_id" db:"worker_id"`
	WorkstationID string    `json:"workstation_id" db:"workstation_id"`
	EventType     EventKind `json:"event_type" db:"event_type"`
	Confidence    float64   `json:"confidence" db:"confidence"`
	Count         int       `json:"count" db:"count"`
	ReceivedAt    time.Time `json:"received_at" db:"received_at"`
}

// DedupKey returns the identity tuple enforced by the store's uniqueness
// constraint, in a stable string form.
func (e *Event) DedupKey() string {
	return e.Timestamp.UTC().Format(time.RFC3339Nano) +
		"|" + e.WorkerID +
		"|" + e.WorkstationID +
		"|" + string(e.EventType)
}

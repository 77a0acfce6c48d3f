// FilePath: internal/models/api.models.filters.go
package models

import "time"

// EventFilter narrows an event-store query. The window is half-open:
// Start is inclusive, End is exclusive, so an event timestamped exactly at
// End belongs to the next adjacent window, never to both.
type EventFilter struct {
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	WorkerID      string     `json:"worker_id,omitempty"`
	WorkstationID string     `json:"workstation_id,omitempty"`
	EventType     EventKind  `json:"event_type,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// Matches reports whether an event passes every set filter field.
func (f EventFilter) Matches(e *Event) bool {
	if f.Start != nil && e.Timestamp.Before(*f.Start) {
		return false
	}
	if f.End != nil && !e.Timestamp.Before(*f.End) {
		return false
	}
	if f.WorkerID != "" && e.WorkerID != f.WorkerID {
		return false
	}
	if f.WorkstationID != "" && e.WorkstationID != f.WorkstationID {
		return false
	}
	if f.EventType != "" && e.EventType != f.EventType {
		return false
	}
	return true
}

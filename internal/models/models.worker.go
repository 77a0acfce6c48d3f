// FilePath: internal/models/models.worker.go
package models

import "time"

// Worker is a factory worker known to the hub. Workers are immutable once
// created and are referenced, never owned, by events.
type Worker struct {
	ID        string    `json:"worker_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FilePath: internal/models/models.workstation.go
package models

import "time"

// Workstation is a physical station on the factory floor. The station type
// is a free-form classification like "Assembly" or "Quality Check".
type Workstation struct {
	ID          string    `json:"station_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	StationType string    `json:"station_type,omitempty" db:"station_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

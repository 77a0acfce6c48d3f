// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/prodvision/floorhub/internal/models"
)

// WorkerRepository defines the interface for worker registry operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	Get(ctx context.Context, id string) (*models.Worker, error)
	List(ctx context.Context) ([]*models.Worker, error)
	Delete(ctx context.Context, id string) error
}

// WorkstationRepository defines the interface for workstation registry operations
type WorkstationRepository interface {
	Create(ctx context.Context, station *models.Workstation) error
	Get(ctx context.Context, id string) (*models.Workstation, error)
	List(ctx context.Context) ([]*models.Workstation, error)
	Delete(ctx context.Context, id string) error
}

// EventRepository is the append-only event store. Append enforces the
// four-field uniqueness tuple: appending a duplicate is not an error, it
// reports stored=false and leaves the store unchanged, so delivery retries
// are idempotent. The store imposes no ordering on stored events; Query
// windows are half-open [start, end) over the event timestamp only.
type EventRepository interface {
	Append(ctx context.Context, event *models.Event) (stored bool, err error)
	Query(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	Count(ctx context.Context, filter models.EventFilter) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

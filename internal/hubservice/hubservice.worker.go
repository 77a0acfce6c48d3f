// FilePath: internal/hubservice/hubservice.worker.go
package hubservice

import (
	"context"
	"strings"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
)

// CreateWorker registers a worker. IDs are client-supplied so that camera
// detections and registry entries agree on the identifier.
func (s *HubService) CreateWorker(ctx context.Context, worker *models.Worker) error {
	if strings.TrimSpace(worker.ID) == "" {
		return errors.NewValidationError("worker_id is required", nil)
	}
	if strings.TrimSpace(worker.Name) == "" {
		return errors.NewValidationError("worker name is required", nil)
	}
	worker.CreatedAt = time.Now().UTC()

	nuts.L.Infof("[WorkerService] Creating worker: %s (%s)", worker.Name, worker.ID)
	return s.Workers.Create(ctx, worker)
}

// GetWorker retrieves a worker by ID.
func (s *HubService) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	return s.Workers.Get(ctx, id)
}

// ListWorkers retrieves all registered workers ordered by ID.
func (s *HubService) ListWorkers(ctx context.Context) ([]*models.Worker, error) {
	return s.Workers.List(ctx)
}

// DeleteWorker removes a worker from the registry. Events referencing the
// worker remain in the store; subsequent metrics for the ID fall back to
// the unknown-entity snapshot.
func (s *HubService) DeleteWorker(ctx context.Context, id string) error {
	nuts.L.Infof("[WorkerService] Deleting worker: %s", id)
	return s.Workers.Delete(ctx, id)
}

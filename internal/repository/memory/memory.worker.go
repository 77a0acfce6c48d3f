// FilePath: internal/repository/memory/memory.worker.go
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
)

type WorkerRepo struct {
	mu      sync.RWMutex
	workers map[string]models.Worker
}

func NewWorkerRepository() *WorkerRepo {
	return &WorkerRepo{
		workers: make(map[string]models.Worker),
	}
}

func (r *WorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workers[worker.ID]; ok {
		return errors.NewDuplicateError("worker already exists", nil)
	}
	r.workers[worker.ID] = *worker
	return nil
}

func (r *WorkerRepo) Get(ctx context.Context, id string) (*models.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	worker, ok := r.workers[id]
	if !ok {
		return nil, errors.NewNotFoundError("worker not found", nil)
	}
	return &worker, nil
}

func (r *WorkerRepo) List(ctx context.Context) ([]*models.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workers := make([]*models.Worker, 0, len(r.workers))
	for id := range r.workers {
		worker := r.workers[id]
		workers = append(workers, &worker)
	}
	sort.Slice(workers, func(i, j int) bool { return workers[i].ID < workers[j].ID })
	return workers, nil
}

func (r *WorkerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workers[id]; !ok {
		return errors.NewNotFoundError("worker not found", nil)
	}
	delete(r.workers, id)
	return nil
}

// FilePath: internal/repository/memory/memory.workstation.go
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
)

type WorkstationRepo struct {
	mu       sync.RWMutex
	stations map[string]models.Workstation
}

func NewWorkstationRepository() *WorkstationRepo {
	return &WorkstationRepo{
		stations: make(map[string]models.Workstation),
	}
}

func (r *WorkstationRepo) Create(ctx context.Context, station *models.Workstation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stations[station.ID]; ok {
		return errors.NewDuplicateError("workstation already exists", nil)
	}
	r.stations[station.ID] = *station
	return nil
}

func (r *WorkstationRepo) Get(ctx context.Context, id string) (*models.Workstation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	station, ok := r.stations[id]
	if !ok {
		return nil, errors.NewNotFoundError("workstation not found", nil)
	}
	return &station, nil
}

func (r *WorkstationRepo) List(ctx context.Context) ([]*models.Workstation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]*models.Workstation, 0, len(r.stations))
	for id := range r.stations {
		station := r.stations[id]
		stations = append(stations, &station)
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].ID < stations[j].ID })
	return stations, nil
}

func (r *WorkstationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stations[id]; !ok {
		return errors.NewNotFoundError("workstation not found", nil)
	}
	delete(r.stations, id)
	return nil
}

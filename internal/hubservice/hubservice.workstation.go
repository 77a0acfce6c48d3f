// FilePath: internal/hubservice/hubservice.workstation.go
package hubservice

import (
	"context"
	"strings"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
)

// CreateWorkstation registers a workstation.
func (s *HubService) CreateWorkstation(ctx context.Context, station *models.Workstation) error {
	if strings.TrimSpace(station.ID) == "" {
		return errors.NewValidationError("station_id is required", nil)
	}
	if strings.TrimSpace(station.Name) == "" {
		return errors.NewValidationError("workstation name is required", nil)
	}
	station.CreatedAt = time.Now().UTC()

	nuts.L.Infof("[WorkstationService] Creating workstation: %s (%s)", station.Name, station.ID)
	return s.Stations.Create(ctx, station)
}

// GetWorkstation retrieves a workstation by ID.
func (s *HubService) GetWorkstation(ctx context.Context, id string) (*models.Workstation, error) {
	return s.Stations.Get(ctx, id)
}

// ListWorkstations retrieves all registered workstations ordered by ID.
func (s *HubService) ListWorkstations(ctx context.Context) ([]*models.Workstation, error) {
	return s.Stations.List(ctx)
}

// DeleteWorkstation removes a workstation from the registry.
func (s *HubService) DeleteWorkstation(ctx context.Context, id string) error {
	nuts.L.Infof("[WorkstationService] Deleting workstation: %s", id)
	return s.Stations.Delete(ctx, id)
}

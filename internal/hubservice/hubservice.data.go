// FilePath: internal/hubservice/hubservice.data.go
package hubservice

import (
	"context"
	"fmt"

	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/models"
)

// Default shape of generated demo data, matching one week of shifts.
const (
	DefaultGenerateDays         = 7
	DefaultGenerateEventsPerDay = 100
)

// SeedSampleData creates the sample workers and workstations without
// touching events. Safe to repeat.
func (s *HubService) SeedSampleData(ctx context.Context) (*models.SeedResult, error) {
	workers, stations, err := s.Data.SeedSampleData(ctx)
	if err != nil {
		return nil, err
	}
	return &models.SeedResult{
		WorkersCreated:      workers,
		WorkstationsCreated: stations,
		Message:             fmt.Sprintf("Seeded %d workers and %d workstations", workers, stations),
	}, nil
}

// GenerateEvents produces demo events for the seeded entities.
func (s *HubService) GenerateEvents(ctx context.Context, numDays, eventsPerDay int, clearExisting bool) (*models.SeedResult, error) {
	if numDays <= 0 {
		numDays = DefaultGenerateDays
	}
	if eventsPerDay <= 0 {
		eventsPerDay = DefaultGenerateEventsPerDay
	}
	generated, err := s.Data.GenerateEvents(ctx, numDays, eventsPerDay, clearExisting)
	if err != nil {
		return nil, err
	}
	return &models.SeedResult{
		EventsGenerated: generated,
		Message:         fmt.Sprintf("Generated %d events over %d days", generated, numDays),
	}, nil
}

// InitializeData seeds sample entities and generates a default batch of
// events, keeping anything already stored. First-run convenience.
func (s *HubService) InitializeData(ctx context.Context) (*models.SeedResult, error) {
	seeded, err := s.SeedSampleData(ctx)
	if err != nil {
		return nil, err
	}
	generated, err := s.GenerateEvents(ctx, DefaultGenerateDays, DefaultGenerateEventsPerDay, false)
	if err != nil {
		return nil, err
	}
	result := &models.SeedResult{
		WorkersCreated:      seeded.WorkersCreated,
		WorkstationsCreated: seeded.WorkstationsCreated,
		EventsGenerated:     generated.EventsGenerated,
		Message:             "Initialized sample data",
	}
	nuts.L.Infof("[DataService] Initialized: %d workers, %d workstations, %d events",
		result.WorkersCreated, result.WorkstationsCreated, result.EventsGenerated)
	return result, nil
}

// RefreshData regenerates the demo dataset, replacing stored events.
func (s *HubService) RefreshData(ctx context.Context, numDays, eventsPerDay int) (*models.SeedResult, error) {
	seeded, err := s.SeedSampleData(ctx)
	if err != nil {
		return nil, err
	}
	generated, err := s.GenerateEvents(ctx, numDays, eventsPerDay, true)
	if err != nil {
		return nil, err
	}
	return &models.SeedResult{
		WorkersCreated:      seeded.WorkersCreated,
		WorkstationsCreated: seeded.WorkstationsCreated,
		EventsGenerated:     generated.EventsGenerated,
		Message:             "Refreshed sample data",
	}, nil
}

// ClearEvents deletes all stored events. The registries are untouched.
func (s *HubService) ClearEvents(ctx context.Context) (int64, error) {
	return s.Data.ClearEvents(ctx)
}

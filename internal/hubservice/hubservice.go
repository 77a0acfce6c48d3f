// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prodvision/floorhub/internal/datagen"
	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/ingest"
	"github.com/prodvision/floorhub/internal/metrics"
	"github.com/prodvision/floorhub/internal/repository"
)

// HubService contains all repositories and service-wide dependencies
type HubService struct {
	Workers  repository.WorkerRepository
	Stations repository.WorkstationRepository
	Events   repository.EventRepository
	Pipeline *ingest.Pipeline
	Engine   *metrics.Engine
	Data     *datagen.Generator

	cache    *redis.Client
	cacheTTL time.Duration
}

// New creates a new HubService instance
func New(
	workers repository.WorkerRepository,
	stations repository.WorkstationRepository,
	events repository.EventRepository,
	pipeline *ingest.Pipeline,
	engine *metrics.Engine,
	data *datagen.Generator,
) *HubService {
	return &HubService{
		Workers:  workers,
		Stations: stations,
		Events:   events,
		Pipeline: pipeline,
		Engine:   engine,
		Data:     data,
	}
}

// WithDashboardCache attaches an optional redis client used to cache the
// unbounded dashboard summary. A nil client disables caching.
func (s *HubService) WithDashboardCache(client *redis.Client, ttl time.Duration) *HubService {
	s.cache = client
	s.cacheTTL = ttl
	return s
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Workers == nil {
		return ErrMissingDependency("workers")
	}
	if s.Stations == nil {
		return ErrMissingDependency("stations")
	}
	if s.Events == nil {
		return ErrMissingDependency("events")
	}
	if s.Pipeline == nil {
		return ErrMissingDependency("pipeline")
	}
	if s.Engine == nil {
		return ErrMissingDependency("engine")
	}
	if s.Data == nil {
		return ErrMissingDependency("data")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

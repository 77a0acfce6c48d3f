// FilePath: internal/metrics/engine.go

// Package metrics computes productivity statistics from the event store.
// Metric snapshots are derived, never stored: every call recomputes from
// durable events, so reads are pure per-request functions that run safely
// in parallel with ingestion and with each other.
package metrics

import (
	"context"
	"time"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/repository"
)

// DefaultSliceDuration is the occupancy slice attributed to each
// state-type event when no duration policy is configured.
const DefaultSliceDuration = 5 * time.Minute

// Window scopes metric computation to a half-open interval [Start, End).
// A nil bound leaves that side unbounded. An event timestamped exactly at
// Start is included; one exactly at End is excluded, so adjacent windows
// never double-count.
type Window struct {
	Start *time.Time
	End   *time.Time
}

func (w Window) filter() models.EventFilter {
	return models.EventFilter{Start: w.Start, End: w.End}
}

// Bounded reports whether either side of the window is constrained.
func (w Window) Bounded() bool {
	return w.Start != nil || w.End != nil
}

// Engine derives worker, workstation, and factory metrics from the event
// store. The slice duration is injected, not hard-coded, so alternative
// duration-inference policies can be substituted without touching the
// aggregation formulas.
type Engine struct {
	events   repository.EventRepository
	workers  repository.WorkerRepository
	stations repository.WorkstationRepository
	slice    time.Duration
}

func NewEngine(
	events repository.EventRepository,
	workers repository.WorkerRepository,
	stations repository.WorkstationRepository,
	slice time.Duration,
) *Engine {
	if slice <= 0 {
		slice = DefaultSliceDuration
	}
	return &Engine{
		events:   events,
		workers:  workers,
		stations: stations,
		slice:    slice,
	}
}

// SliceDuration returns the configured per-event occupancy slice.
func (e *Engine) SliceDuration() time.Duration {
	return e.slice
}

// WorkerMetrics computes one worker's snapshot for the window. An unknown
// worker id yields a zeroed snapshot rather than an error: events that
// reference unregistered ids are valid input but never surface in an
// aggregate keyed by a known entity.
func (e *Engine) WorkerMetrics(ctx context.Context, workerID string, w Window) (*models.WorkerMetrics, error) {
	worker, err := e.workers.Get(ctx, workerID)
	if err != nil {
		if errors.IsNotFound(err) {
			m := workerSnapshot(workerID, "Unknown", tally{}, e.slice)
			return &m, nil
		}
		return nil, err
	}

	f := w.filter()
	f.WorkerID = workerID
	events, err := e.events.Query(ctx, f)
	if err != nil {
		return nil, err
	}

	m := workerSnapshot(worker.ID, worker.Name, tallyOf(events), e.slice)
	return &m, nil
}

// AllWorkerMetrics computes a snapshot for every registered worker,
// including zero-event workers, from one pass over the window's events.
func (e *Engine) AllWorkerMetrics(ctx context.Context, w Window) ([]models.WorkerMetrics, error) {
	workers, err := e.workers.List(ctx)
	if err != nil {
		return nil, err
	}

	events, err := e.events.Query(ctx, w.filter())
	if err != nil {
		return nil, err
	}
	byWorker := tallyByWorker(events)

	results := make([]models.WorkerMetrics, 0, len(workers))
	for _, worker := range workers {
		results = append(results, workerSnapshot(worker.ID, worker.Name, byWorker[worker.ID], e.slice))
	}
	return results, nil
}

// WorkstationMetrics computes one workstation's snapshot for the window.
func (e *Engine) WorkstationMetrics(ctx context.Context, stationID string, w Window) (*models.WorkstationMetrics, error) {
	station, err := e.stations.Get(ctx, stationID)
	if err != nil {
		if errors.IsNotFound(err) {
			m := workstationSnapshot(stationID, "Unknown", "", tally{}, e.slice)
			return &m, nil
		}
		return nil, err
	}

	f := w.filter()
	f.WorkstationID = stationID
	events, err := e.events.Query(ctx, f)
	if err != nil {
		return nil, err
	}

	m := workstationSnapshot(station.ID, station.Name, station.StationType, tallyOf(events), e.slice)
	return &m, nil
}

// AllWorkstationMetrics computes a snapshot for every registered
// workstation, including zero-event stations.
func (e *Engine) AllWorkstationMetrics(ctx context.Context, w Window) ([]models.WorkstationMetrics, error) {
	stations, err := e.stations.List(ctx)
	if err != nil {
		return nil, err
	}

	events, err := e.events.Query(ctx, w.filter())
	if err != nil {
		return nil, err
	}
	byStation := tallyByWorkstation(events)

	results := make([]models.WorkstationMetrics, 0, len(stations))
	for _, station := range stations {
		results = append(results, workstationSnapshot(
			station.ID, station.Name, station.StationType, byStation[station.ID], e.slice))
	}
	return results, nil
}

// FactoryMetrics aggregates across all known workers and workstations.
// TotalEvents counts every stored event in the window, including events
// referencing unregistered ids; the utilization means and active-entity
// counts cover registered entities with at least one event.
func (e *Engine) FactoryMetrics(ctx context.Context, w Window) (*models.FactoryMetrics, error) {
	workerMetrics, err := e.AllWorkerMetrics(ctx, w)
	if err != nil {
		return nil, err
	}

	stationMetrics, err := e.AllWorkstationMetrics(ctx, w)
	if err != nil {
		return nil, err
	}

	total, err := e.events.Count(ctx, w.filter())
	if err != nil {
		return nil, err
	}

	fm := factorySnapshot(workerMetrics, stationMetrics, int(total))
	return &fm, nil
}

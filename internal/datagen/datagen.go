// FilePath: internal/datagen/datagen.go

// Package datagen seeds sample entities and generates shift-shaped demo
// events so evaluators can exercise the dashboard without wiring real
// cameras. Lifecycle changes are announced on an event emitter so the
// server can invalidate caches and record monitoring events.
package datagen

import (
	"context"
	"math/rand"
	"time"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Lifecycle event names emitted by the generator.
const (
	EventSeeded    = "data.seeded"
	EventGenerated = "events.generated"
	EventCleared   = "events.cleared"
)

var sampleWorkers = []models.Worker{
	{ID: "W1", Name: "John Martinez"},
	{ID: "W2", Name: "Sarah Chen"},
	{ID: "W3", Name: "Michael Johnson"},
	{ID: "W4", Name: "Emily Davis"},
	{ID: "W5", Name: "Robert Kim"},
	{ID: "W6", Name: "Lisa Thompson"},
}

var sampleWorkstations = []models.Workstation{
	{ID: "S1", Name: "Assembly Line A", StationType: "Assembly"},
	{ID: "S2", Name: "Assembly Line B", StationType: "Assembly"},
	{ID: "S3", Name: "Quality Control 1", StationType: "Quality Check"},
	{ID: "S4", Name: "Quality Control 2", StationType: "Quality Check"},
	{ID: "S5", Name: "Packaging Station", StationType: "Packaging"},
	{ID: "S6", Name: "Final Inspection", StationType: "Inspection"},
}

// Generator creates sample entities and demo events.
type Generator struct {
	workers  repository.WorkerRepository
	stations repository.WorkstationRepository
	events   repository.EventRepository
	emitter  *nuts.EventEmitter
	rng      *rand.Rand
	now      func() time.Time
}

func New(
	workers repository.WorkerRepository,
	stations repository.WorkstationRepository,
	events repository.EventRepository,
) *Generator {
	return &Generator{
		workers:  workers,
		stations: stations,
		events:   events,
		emitter:  nuts.NewEventEmitter(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// OnLifecycle registers a callback for data lifecycle events.
func (g *Generator) OnLifecycle(event string, handler func(detail string)) {
	g.emitter.On(event, "datagen_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if detail, ok := args[0].(string); ok {
				handler(detail)
			}
		}
	})
}

// SeedSampleData creates the sample workers and workstations, skipping
// entries that already exist. Safe to call repeatedly.
func (g *Generator) SeedSampleData(ctx context.Context) (workersCreated, stationsCreated int, err error) {
	now := g.now().UTC()

	for _, w := range sampleWorkers {
		worker := w
		worker.CreatedAt = now
		createErr := g.workers.Create(ctx, &worker)
		if createErr != nil {
			if errors.IsDuplicate(createErr) {
				continue
			}
			return workersCreated, stationsCreated, createErr
		}
		workersCreated++
	}

	for _, s := range sampleWorkstations {
		station := s
		station.CreatedAt = now
		createErr := g.stations.Create(ctx, &station)
		if createErr != nil {
			if errors.IsDuplicate(createErr) {
				continue
			}
			return workersCreated, stationsCreated, createErr
		}
		stationsCreated++
	}

	if workersCreated > 0 || stationsCreated > 0 {
		g.emitter.Emit(EventSeeded, "sample entities")
		nuts.L.Infof("[DataGen] Seeded %d workers and %d workstations", workersCreated, stationsCreated)
	}
	return workersCreated, stationsCreated, nil
}

// GenerateEvents produces demo events over the last numDays days. Events
// follow an 8-hour shift from 08:00 with a working bias during core hours
// and production counts correlated with working detections. Existing
// events are cleared first when clearExisting is set.
func (g *Generator) GenerateEvents(ctx context.Context, numDays, eventsPerDay int, clearExisting bool) (int, error) {
	if clearExisting {
		if _, err := g.ClearEvents(ctx); err != nil {
			return 0, err
		}
	}

	workers, err := g.workers.List(ctx)
	if err != nil {
		return 0, err
	}
	stations, err := g.stations.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(workers) == 0 || len(stations) == 0 {
		return 0, errors.NewValidationError("no workers or workstations found; seed sample data first", nil)
	}

	created := 0
	endDate := g.now().UTC()
	day := endDate.AddDate(0, 0, -numDays)

	// Spread eventsPerDay across the shift, one round per worker.
	shiftMinutes := 8 * 60
	interval := time.Duration(float64(shiftMinutes)/(float64(eventsPerDay)/float64(len(workers)))) * time.Minute
	if interval <= 0 {
		interval = time.Minute
	}

	for ; day.Before(endDate); day = day.AddDate(0, 0, 1) {
		shiftStart := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.UTC)
		shiftEnd := time.Date(day.Year(), day.Month(), day.Day(), 16, 0, 0, 0, time.UTC)

		for slot := shiftStart; slot.Before(shiftEnd); slot = slot.Add(interval) {
			for i, worker := range workers {
				// Workers tend to stay at their primary station.
				station := stations[i%len(stations)]
				if g.rng.Float64() >= 0.8 {
					station = stations[g.rng.Intn(len(stations))]
				}

				kind, confidence := g.pickActivity(slot)
				jitter := time.Duration(g.rng.Intn(61)-30) * time.Second
				timestamp := slot.Add(jitter)

				stored, err := g.events.Append(ctx, &models.Event{
					ID:            nuts.NID("ev", 12),
					Timestamp:     timestamp,
					WorkerID:      worker.ID,
					WorkstationID: station.ID,
					EventType:     kind,
					Confidence:    confidence,
					Count:         0,
					ReceivedAt:    g.now().UTC(),
				})
				if err != nil {
					return created, err
				}
				if stored {
					created++
				}

				// Production counts follow roughly a third of working detections.
				if kind == models.EventKindWorking && g.rng.Float64() < 0.3 {
					prodTime := timestamp.Add(time.Duration(60+g.rng.Intn(121)) * time.Second)
					stored, err := g.events.Append(ctx, &models.Event{
						ID:            nuts.NID("ev", 12),
						Timestamp:     prodTime,
						WorkerID:      worker.ID,
						WorkstationID: station.ID,
						EventType:     models.EventKindProductCount,
						Confidence:    0.90 + g.rng.Float64()*0.09,
						Count:         1 + g.rng.Intn(5),
						ReceivedAt:    g.now().UTC(),
					})
					if err != nil {
						return created, err
					}
					if stored {
						created++
					}
				}
			}
		}
	}

	g.emitter.Emit(EventGenerated, "demo events")
	nuts.L.Infof("[DataGen] Generated %d events over %d days", created, numDays)
	return created, nil
}

// ClearEvents deletes every stored event, preserving workers and
// workstations.
func (g *Generator) ClearEvents(ctx context.Context) (int64, error) {
	deleted, err := g.events.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	g.emitter.Emit(EventCleared, "all events")
	nuts.L.Infof("[DataGen] Cleared %d events", deleted)
	return deleted, nil
}

// pickActivity chooses a state kind with a working bias during core hours
// (09:00-15:00) and a confidence score typical for that detection.
func (g *Generator) pickActivity(slot time.Time) (models.EventKind, float64) {
	workingProb := 0.60
	if hour := slot.Hour(); hour >= 9 && hour <= 15 {
		workingProb = 0.75
	}

	roll := g.rng.Float64()
	switch {
	case roll < workingProb:
		return models.EventKindWorking, 0.85 + g.rng.Float64()*0.14
	case roll < workingProb+0.15:
		return models.EventKindIdle, 0.75 + g.rng.Float64()*0.20
	default:
		return models.EventKindAbsent, 0.80 + g.rng.Float64()*0.18
	}
}

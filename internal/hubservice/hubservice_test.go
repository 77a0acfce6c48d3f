// FilePath: internal/hubservice/hubservice_test.go
package hubservice_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/prodvision/floorhub/internal/datagen"
	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/hubservice"
	"github.com/prodvision/floorhub/internal/ingest"
	"github.com/prodvision/floorhub/internal/metrics"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/repository/memory"
)

func newService() *hubservice.HubService {
	workers := memory.NewWorkerRepository()
	stations := memory.NewWorkstationRepository()
	events := memory.NewEventRepository()
	return hubservice.New(
		workers, stations, events,
		ingest.NewPipeline(events, 100),
		metrics.NewEngine(events, workers, stations, 5*time.Minute),
		datagen.New(workers, stations, events),
	)
}

func TestValidate(t *testing.T) {
	Convey("Given a fully wired service", t, func() {
		svc := newService()

		Convey("Then validation passes", func() {
			So(svc.Validate(), ShouldBeNil)
		})

		Convey("When a dependency is missing", func() {
			svc.Engine = nil

			Convey("Then validation fails", func() {
				So(svc.Validate(), ShouldNotBeNil)
			})
		})
	})
}

func TestCreateWorker(t *testing.T) {
	Convey("Given the service", t, func() {
		svc := newService()
		ctx := context.Background()

		Convey("When creating a worker without an ID", func() {
			err := svc.CreateWorker(ctx, &models.Worker{Name: "John Martinez"})

			Convey("Then it is rejected", func() {
				So(errors.IsValidation(err), ShouldBeTrue)
			})
		})

		Convey("When creating a worker with a blank name", func() {
			err := svc.CreateWorker(ctx, &models.Worker{ID: "W1", Name: "   "})

			Convey("Then it is rejected", func() {
				So(errors.IsValidation(err), ShouldBeTrue)
			})
		})

		Convey("When creating a valid worker", func() {
			err := svc.CreateWorker(ctx, &models.Worker{ID: "W1", Name: "John Martinez"})

			Convey("Then it is stamped and stored", func() {
				So(err, ShouldBeNil)
				worker, err := svc.GetWorker(ctx, "W1")
				So(err, ShouldBeNil)
				So(worker.CreatedAt.IsZero(), ShouldBeFalse)
			})
		})
	})
}

func TestGetDashboard(t *testing.T) {
	Convey("Given a service with seeded entities and some events", t, func() {
		svc := newService()
		ctx := context.Background()

		_, err := svc.SeedSampleData(ctx)
		So(err, ShouldBeNil)

		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
		for i, kind := range []string{"working", "working", "idle"} {
			_, stored, err := svc.Pipeline.IngestOne(ctx, ingest.Submission{
				Timestamp:     base.Add(time.Duration(i) * 5 * time.Minute).Format(time.RFC3339),
				WorkerID:      "W1",
				WorkstationID: "S1",
				EventType:     kind,
				Confidence:    0.9,
			})
			So(err, ShouldBeNil)
			So(stored, ShouldBeTrue)
		}

		Convey("When assembling the dashboard", func() {
			dash, err := svc.GetDashboard(ctx, metrics.Window{})

			Convey("Then all sections derive from the same window", func() {
				So(err, ShouldBeNil)
				So(len(dash.WorkerMetrics), ShouldEqual, 6)
				So(len(dash.WorkstationMetrics), ShouldEqual, 6)
				So(dash.FactoryMetrics.TotalEvents, ShouldEqual, 3)
				So(dash.FactoryMetrics.ActiveWorkers, ShouldEqual, 1)
				So(dash.LastUpdated.IsZero(), ShouldBeFalse)
			})

			Convey("Then the factory aggregate matches the worker section", func() {
				So(err, ShouldBeNil)
				var active float64
				for _, w := range dash.WorkerMetrics {
					active += w.TotalActiveTimeMinutes
				}
				So(dash.FactoryMetrics.TotalProductiveTimeMinutes, ShouldEqual, active)
			})
		})

		Convey("When a window excludes every event", func() {
			start := base.Add(24 * time.Hour)
			end := start.Add(time.Hour)
			dash, err := svc.GetDashboard(ctx, metrics.Window{Start: &start, End: &end})

			Convey("Then the sections are zeroed but complete", func() {
				So(err, ShouldBeNil)
				So(dash.FactoryMetrics.TotalEvents, ShouldEqual, 0)
				So(len(dash.WorkerMetrics), ShouldEqual, 6)
			})
		})
	})
}

func TestDataOperations(t *testing.T) {
	Convey("Given the service", t, func() {
		svc := newService()
		ctx := context.Background()

		Convey("When initializing demo data", func() {
			result, err := svc.InitializeData(ctx)

			Convey("Then entities and events exist", func() {
				So(err, ShouldBeNil)
				So(result.WorkersCreated, ShouldEqual, 6)
				So(result.WorkstationsCreated, ShouldEqual, 6)
				So(result.EventsGenerated, ShouldBeGreaterThan, 0)
			})

			Convey("And when refreshing", func() {
				refreshed, err := svc.RefreshData(ctx, 1, 20)

				Convey("Then the events are regenerated from scratch", func() {
					So(err, ShouldBeNil)
					So(refreshed.EventsGenerated, ShouldBeGreaterThan, 0)

					count, err := svc.Events.Count(ctx, models.EventFilter{})
					So(err, ShouldBeNil)
					So(count, ShouldEqual, int64(refreshed.EventsGenerated))
				})
			})
		})

		Convey("When generating with out-of-range arguments", func() {
			_, err := svc.SeedSampleData(ctx)
			So(err, ShouldBeNil)

			result, err := svc.GenerateEvents(ctx, 0, 0, false)

			Convey("Then the defaults apply", func() {
				So(err, ShouldBeNil)
				So(result.EventsGenerated, ShouldBeGreaterThan, 0)
			})
		})
	})
}

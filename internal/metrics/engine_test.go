// FilePath: internal/metrics/engine_test.go
package metrics_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/prodvision/floorhub/internal/metrics"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/repository/memory"
)

type fixture struct {
	events   *memory.EventRepo
	workers  *memory.WorkerRepo
	stations *memory.WorkstationRepo
	engine   *metrics.Engine
}

func newFixture(slice time.Duration) *fixture {
	f := &fixture{
		events:   memory.NewEventRepository(),
		workers:  memory.NewWorkerRepository(),
		stations: memory.NewWorkstationRepository(),
	}
	f.engine = metrics.NewEngine(f.events, f.workers, f.stations, slice)
	return f
}

func (f *fixture) addWorker(id, name string) {
	f.workers.Create(context.Background(), &models.Worker{ID: id, Name: name})
}

func (f *fixture) addStation(id, name, stationType string) {
	f.stations.Create(context.Background(), &models.Workstation{ID: id, Name: name, StationType: stationType})
}

func (f *fixture) addEvent(ts time.Time, workerID, stationID string, kind models.EventKind, count int) {
	f.events.Append(context.Background(), &models.Event{
		ID:            "ev_" + ts.Format("150405") + "_" + workerID + "_" + string(kind),
		Timestamp:     ts,
		WorkerID:      workerID,
		WorkstationID: stationID,
		EventType:     kind,
		Confidence:    0.9,
		Count:         count,
		ReceivedAt:    time.Now().UTC(),
	})
}

func TestWorkerMetrics(t *testing.T) {
	Convey("Given a worker with a short shift of events and a 5-minute slice", t, func() {
		f := newFixture(5 * time.Minute)
		f.addWorker("W1", "John Martinez")
		ctx := context.Background()
		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		f.addEvent(base, "W1", "S1", models.EventKindWorking, 0)
		f.addEvent(base.Add(2*time.Minute), "W1", "S1", models.EventKindProductCount, 3)
		f.addEvent(base.Add(5*time.Minute), "W1", "S1", models.EventKindWorking, 0)
		f.addEvent(base.Add(8*time.Minute), "W1", "S1", models.EventKindProductCount, 2)
		f.addEvent(base.Add(10*time.Minute), "W1", "S1", models.EventKindIdle, 0)

		Convey("When computing the worker's snapshot", func() {
			m, err := f.engine.WorkerMetrics(ctx, "W1", metrics.Window{})

			Convey("Then each state event contributes one slice", func() {
				So(err, ShouldBeNil)
				So(m.WorkerName, ShouldEqual, "John Martinez")
				So(m.TotalActiveTimeMinutes, ShouldEqual, 10.0)
				So(m.TotalIdleTimeMinutes, ShouldEqual, 5.0)
				So(m.TotalAbsentTimeMinutes, ShouldEqual, 0.0)
				So(m.EventCount, ShouldEqual, 5)
			})

			Convey("Then utilization is active over present time", func() {
				So(err, ShouldBeNil)
				So(m.UtilizationPercentage, ShouldEqual, 66.67)
			})

			Convey("Then production rates derive from active time", func() {
				So(err, ShouldBeNil)
				So(m.TotalUnitsProduced, ShouldEqual, 5)
				So(m.UnitsPerHour, ShouldEqual, 30.0)
			})
		})

		Convey("When the worker was only ever absent", func() {
			f.addWorker("W2", "Sarah Chen")
			f.addEvent(base, "W2", "S2", models.EventKindAbsent, 0)

			m, err := f.engine.WorkerMetrics(ctx, "W2", metrics.Window{})

			Convey("Then every ratio is zero, never NaN", func() {
				So(err, ShouldBeNil)
				So(m.TotalAbsentTimeMinutes, ShouldEqual, 5.0)
				So(m.UtilizationPercentage, ShouldEqual, 0.0)
				So(m.UnitsPerHour, ShouldEqual, 0.0)
			})
		})

		Convey("When the worker id is not registered", func() {
			m, err := f.engine.WorkerMetrics(ctx, "W99", metrics.Window{})

			Convey("Then a zeroed snapshot comes back instead of an error", func() {
				So(err, ShouldBeNil)
				So(m.WorkerID, ShouldEqual, "W99")
				So(m.WorkerName, ShouldEqual, "Unknown")
				So(m.EventCount, ShouldEqual, 0)
			})
		})

		Convey("When the window ends exactly on an event timestamp", func() {
			end := base.Add(10 * time.Minute)
			m, err := f.engine.WorkerMetrics(ctx, "W1", metrics.Window{Start: &base, End: &end})

			Convey("Then the boundary event falls outside the window", func() {
				So(err, ShouldBeNil)
				So(m.TotalIdleTimeMinutes, ShouldEqual, 0.0)
				So(m.TotalActiveTimeMinutes, ShouldEqual, 10.0)
				So(m.EventCount, ShouldEqual, 4)
			})
		})
	})
}

func TestWorkstationMetrics(t *testing.T) {
	Convey("Given a workstation with working, idle and absent events", t, func() {
		f := newFixture(5 * time.Minute)
		f.addStation("S1", "Assembly Line A", "Assembly")
		ctx := context.Background()
		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		f.addEvent(base, "W1", "S1", models.EventKindWorking, 0)
		f.addEvent(base.Add(5*time.Minute), "W1", "S1", models.EventKindWorking, 0)
		f.addEvent(base.Add(10*time.Minute), "W1", "S1", models.EventKindIdle, 0)
		f.addEvent(base.Add(15*time.Minute), "W1", "S1", models.EventKindAbsent, 0)
		f.addEvent(base.Add(7*time.Minute), "W1", "S1", models.EventKindProductCount, 6)

		Convey("When computing the station's snapshot", func() {
			m, err := f.engine.WorkstationMetrics(ctx, "S1", metrics.Window{})

			Convey("Then occupancy covers working plus idle but never absent", func() {
				So(err, ShouldBeNil)
				So(m.WorkingTimeMinutes, ShouldEqual, 10.0)
				So(m.IdleTimeMinutes, ShouldEqual, 5.0)
				So(m.OccupancyTimeMinutes, ShouldEqual, 15.0)
			})

			Convey("Then utilization and throughput derive from occupancy", func() {
				So(err, ShouldBeNil)
				So(m.UtilizationPercentage, ShouldEqual, 66.67)
				So(m.ThroughputRate, ShouldEqual, 24.0)
				So(m.TotalUnitsProduced, ShouldEqual, 6)
			})

			Convey("Then the registry fields carry through", func() {
				So(err, ShouldBeNil)
				So(m.StationName, ShouldEqual, "Assembly Line A")
				So(m.StationType, ShouldEqual, "Assembly")
			})
		})

		Convey("When the station id is not registered", func() {
			m, err := f.engine.WorkstationMetrics(ctx, "S99", metrics.Window{})

			Convey("Then a zeroed snapshot comes back", func() {
				So(err, ShouldBeNil)
				So(m.StationID, ShouldEqual, "S99")
				So(m.StationName, ShouldEqual, "Unknown")
				So(m.OccupancyTimeMinutes, ShouldEqual, 0.0)
			})
		})
	})
}

func TestFactoryMetrics(t *testing.T) {
	Convey("Given two active workers and one silent worker", t, func() {
		f := newFixture(5 * time.Minute)
		f.addWorker("W1", "John Martinez")
		f.addWorker("W2", "Sarah Chen")
		f.addWorker("W3", "Michael Johnson")
		f.addStation("S1", "Assembly Line A", "Assembly")
		f.addStation("S2", "Assembly Line B", "Assembly")
		ctx := context.Background()
		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		// W1: 100% utilization, W2: 60%, W3: no events at all.
		f.addEvent(base, "W1", "S1", models.EventKindWorking, 0)
		f.addEvent(base.Add(5*time.Minute), "W1", "S1", models.EventKindWorking, 0)
		f.addEvent(base, "W2", "S2", models.EventKindWorking, 0)
		f.addEvent(base.Add(5*time.Minute), "W2", "S2", models.EventKindWorking, 0)
		f.addEvent(base.Add(10*time.Minute), "W2", "S2", models.EventKindWorking, 0)
		f.addEvent(base.Add(15*time.Minute), "W2", "S2", models.EventKindIdle, 0)
		f.addEvent(base.Add(20*time.Minute), "W2", "S2", models.EventKindIdle, 0)
		f.addEvent(base.Add(2*time.Minute), "W1", "S1", models.EventKindProductCount, 10)

		Convey("When computing factory metrics", func() {
			m, err := f.engine.FactoryMetrics(ctx, metrics.Window{})

			Convey("Then the utilization mean covers only workers with events", func() {
				So(err, ShouldBeNil)
				// (100 + 60) / 2, not divided by three.
				So(m.AverageWorkerUtilization, ShouldEqual, 80.0)
				So(m.ActiveWorkers, ShouldEqual, 2)
			})

			Convey("Then times and production sum across workers and stations", func() {
				So(err, ShouldBeNil)
				So(m.TotalProductiveTimeMinutes, ShouldEqual, 25.0)
				So(m.TotalIdleTimeMinutes, ShouldEqual, 10.0)
				So(m.TotalProductionCount, ShouldEqual, 10)
				So(m.TotalEvents, ShouldEqual, 8)
				So(m.ActiveWorkstations, ShouldEqual, 2)
			})

			Convey("Then the production rate derives from productive time", func() {
				So(err, ShouldBeNil)
				// 10 units over 25 productive minutes.
				So(m.AverageProductionRate, ShouldEqual, 24.0)
			})
		})

		Convey("When the store is empty", func() {
			empty := newFixture(5 * time.Minute)
			empty.addWorker("W1", "John Martinez")

			m, err := empty.engine.FactoryMetrics(ctx, metrics.Window{})

			Convey("Then every aggregate is zero", func() {
				So(err, ShouldBeNil)
				So(m.TotalEvents, ShouldEqual, 0)
				So(m.ActiveWorkers, ShouldEqual, 0)
				So(m.AverageWorkerUtilization, ShouldEqual, 0.0)
				So(m.AverageProductionRate, ShouldEqual, 0.0)
			})
		})
	})
}

func TestAllWorkerMetrics(t *testing.T) {
	Convey("Given registered workers with and without events", t, func() {
		f := newFixture(0) // falls back to the default slice
		f.addWorker("W1", "John Martinez")
		f.addWorker("W2", "Sarah Chen")
		ctx := context.Background()
		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		f.addEvent(base, "W1", "S1", models.EventKindWorking, 0)
		// An event for an id nobody registered.
		f.addEvent(base, "W7", "S1", models.EventKindWorking, 0)

		Convey("When listing all worker metrics", func() {
			all, err := f.engine.AllWorkerMetrics(ctx, metrics.Window{})

			Convey("Then every registered worker appears, zero-event ones included", func() {
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 2)
				So(all[0].WorkerID, ShouldEqual, "W1")
				So(all[0].EventCount, ShouldEqual, 1)
				So(all[1].WorkerID, ShouldEqual, "W2")
				So(all[1].EventCount, ShouldEqual, 0)
			})

			Convey("Then unregistered ids never surface", func() {
				So(err, ShouldBeNil)
				for _, m := range all {
					So(m.WorkerID, ShouldNotEqual, "W7")
				}
			})
		})

		Convey("Then the default slice applies when none was configured", func() {
			So(f.engine.SliceDuration(), ShouldEqual, metrics.DefaultSliceDuration)
		})
	})
}

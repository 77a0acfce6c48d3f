// FilePath: internal/metrics/compute.go
package metrics

import (
	"math"
	"time"

	"github.com/prodvision/floorhub/internal/models"
)

// tally counts one entity's events by kind over a window.
type tally struct {
	working int
	idle    int
	absent  int
	units   int
	events  int
}

func (t *tally) add(e *models.Event) {
	t.events++
	switch e.EventType {
	case models.EventKindWorking:
		t.working++
	case models.EventKindIdle:
		t.idle++
	case models.EventKindAbsent:
		t.absent++
	case models.EventKindProductCount:
		t.units += e.Count
	}
}

func tallyOf(events []models.Event) tally {
	var t tally
	for i := range events {
		t.add(&events[i])
	}
	return t
}

func tallyByWorker(events []models.Event) map[string]tally {
	byWorker := make(map[string]tally)
	for i := range events {
		t := byWorker[events[i].WorkerID]
		t.add(&events[i])
		byWorker[events[i].WorkerID] = t
	}
	return byWorker
}

func tallyByWorkstation(events []models.Event) map[string]tally {
	byStation := make(map[string]tally)
	for i := range events {
		t := byStation[events[i].WorkstationID]
		t.add(&events[i])
		byStation[events[i].WorkstationID] = t
	}
	return byStation
}

// workerSnapshot turns a tally into a worker metrics snapshot. Each state
// event is attributed a fixed slice of the timeline; absent time is
// tracked but excluded from utilization, which only measures efficiency
// while present. All ratios carry explicit zero-guards.
func workerSnapshot(id, name string, t tally, slice time.Duration) models.WorkerMetrics {
	minutes := slice.Minutes()
	active := float64(t.working) * minutes
	idle := float64(t.idle) * minutes
	absent := float64(t.absent) * minutes

	utilization := 0.0
	if present := active + idle; present > 0 {
		utilization = active / present * 100
	}

	unitsPerHour := 0.0
	if active > 0 {
		unitsPerHour = float64(t.units) / (active / 60)
	}

	return models.WorkerMetrics{
		WorkerID:               id,
		WorkerName:             name,
		TotalActiveTimeMinutes: round2(active),
		TotalIdleTimeMinutes:   round2(idle),
		TotalAbsentTimeMinutes: round2(absent),
		UtilizationPercentage:  round2(utilization),
		TotalUnitsProduced:     t.units,
		UnitsPerHour:           round2(unitsPerHour),
		EventCount:             t.events,
	}
}

// workstationSnapshot turns a tally into a workstation snapshot. Absent
// events are not attributable to a station, so occupancy covers working
// plus idle time only.
func workstationSnapshot(id, name, stationType string, t tally, slice time.Duration) models.WorkstationMetrics {
	minutes := slice.Minutes()
	working := float64(t.working) * minutes
	idle := float64(t.idle) * minutes
	occupancy := working + idle

	utilization := 0.0
	if occupancy > 0 {
		utilization = working / occupancy * 100
	}

	throughput := 0.0
	if occupancy > 0 {
		throughput = float64(t.units) / (occupancy / 60)
	}

	return models.WorkstationMetrics{
		StationID:             id,
		StationName:           name,
		StationType:           stationType,
		OccupancyTimeMinutes:  round2(occupancy),
		WorkingTimeMinutes:    round2(working),
		IdleTimeMinutes:       round2(idle),
		UtilizationPercentage: round2(utilization),
		TotalUnitsProduced:    t.units,
		ThroughputRate:        round2(throughput),
		EventCount:            t.events,
	}
}

// factorySnapshot aggregates entity snapshots into the factory summary.
// Utilization means cover only entities with at least one event in the
// window; a silent worker is excluded from the mean, never averaged in as
// zero percent.
func factorySnapshot(workers []models.WorkerMetrics, stations []models.WorkstationMetrics, totalEvents int) models.FactoryMetrics {
	var productiveMinutes, idleMinutes float64
	var workerUtilSum float64
	activeWorkers := 0
	for _, w := range workers {
		productiveMinutes += w.TotalActiveTimeMinutes
		idleMinutes += w.TotalIdleTimeMinutes
		if w.EventCount > 0 {
			activeWorkers++
			workerUtilSum += w.UtilizationPercentage
		}
	}

	var production int
	var stationUtilSum float64
	activeStations := 0
	for _, s := range stations {
		production += s.TotalUnitsProduced
		if s.EventCount > 0 {
			activeStations++
			stationUtilSum += s.UtilizationPercentage
		}
	}

	productionRate := 0.0
	if productiveMinutes > 0 {
		productionRate = float64(production) / (productiveMinutes / 60)
	}

	avgWorkerUtil := 0.0
	if activeWorkers > 0 {
		avgWorkerUtil = workerUtilSum / float64(activeWorkers)
	}

	avgStationUtil := 0.0
	if activeStations > 0 {
		avgStationUtil = stationUtilSum / float64(activeStations)
	}

	return models.FactoryMetrics{
		TotalProductiveTimeMinutes:    round2(productiveMinutes),
		TotalIdleTimeMinutes:          round2(idleMinutes),
		TotalProductionCount:          production,
		AverageProductionRate:         round2(productionRate),
		AverageWorkerUtilization:      round2(avgWorkerUtil),
		AverageWorkstationUtilization: round2(avgStationUtil),
		TotalEvents:                   totalEvents,
		ActiveWorkers:                 activeWorkers,
		ActiveWorkstations:            activeStations,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

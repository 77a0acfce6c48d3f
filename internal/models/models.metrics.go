// FilePath: internal/models/models.metrics.go
package models

import "time"

// WorkerMetrics is a derived productivity snapshot for one worker over a
// time window. Absent time is tracked but excluded from utilization, which
// measures efficiency while present at a station.
type WorkerMetrics struct {
	WorkerID               string  `json:"worker_id"`
	WorkerName             string  `json:"worker_name"`
	TotalActiveTimeMinutes float64 `json:"total_active_time_minutes"`
	TotalIdleTimeMinutes   float64 `json:"total_idle_time_minutes"`
	TotalAbsentTimeMinutes float64 `json:"total_absent_time_minutes"`
	UtilizationPercentage  float64 `json:"utilization_percentage"`
	TotalUnitsProduced     int     `json:"total_units_produced"`
	UnitsPerHour           float64 `json:"units_per_hour"`
	EventCount             int     `json:"event_count"`
}

// WorkstationMetrics is a derived snapshot for one workstation. Occupancy
// covers working plus idle time; absent events are not attributable to a
// station and never count towards occupancy.
type WorkstationMetrics struct {
	StationID             string  `json:"station_id"`
	StationName           string  `json:"station_name"`
	StationType           string  `json:"station_type,omitempty"`
	OccupancyTimeMinutes  float64 `json:"occupancy_time_minutes"`
	WorkingTimeMinutes    float64 `json:"working_time_minutes"`
	IdleTimeMinutes       float64 `json:"idle_time_minutes"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
	TotalUnitsProduced    int     `json:"total_units_produced"`
	ThroughputRate        float64 `json:"throughput_rate"`
	EventCount            int     `json:"event_count"`
}

// FactoryMetrics aggregates across all known workers and workstations for
// one window. Utilization averages cover only entities with at least one
// event in the window; zero-event entities are excluded, not counted as 0%.
type FactoryMetrics struct {
	TotalProductiveTimeMinutes    float64 `json:"total_productive_time_minutes"`
	TotalIdleTimeMinutes          float64 `json:"total_idle_time_minutes"`
	TotalProductionCount          int     `json:"total_production_count"`
	AverageProductionRate         float64 `json:"average_production_rate"`
	AverageWorkerUtilization      float64 `json:"average_worker_utilization"`
	AverageWorkstationUtilization float64 `json:"average_workstation_utilization"`
	TotalEvents                   int     `json:"total_events"`
	ActiveWorkers                 int     `json:"active_workers"`
	ActiveWorkstations            int     `json:"active_workstations"`
}

// DashboardSummary is the full dashboard payload: factory aggregate plus
// every worker and workstation snapshot, stamped with assembly time.
type DashboardSummary struct {
	FactoryMetrics     FactoryMetrics       `json:"factory_metrics"`
	WorkerMetrics      []WorkerMetrics      `json:"worker_metrics"`
	WorkstationMetrics []WorkstationMetrics `json:"workstation_metrics"`
	LastUpdated        time.Time            `json:"last_updated"`
}

// SeedResult reports the outcome of data-management operations.
type SeedResult struct {
	WorkersCreated      int    `json:"workers_created"`
	WorkstationsCreated int    `json:"workstations_created"`
	EventsGenerated     int    `json:"events_generated"`
	Message             string `json:"message"`
}

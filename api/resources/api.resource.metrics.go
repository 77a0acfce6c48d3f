// FilePath: api/resources/api.resource.metrics.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/hubservice"
)

// MetricsHandlers serves the derived metrics and dashboard endpoints. All
// endpoints accept an optional start_time/end_time window; with neither
// set, aggregation covers every stored event.
type MetricsHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Get the dashboard summary
// @Description Factory aggregate plus all per-worker and per-workstation snapshots for one window
// @Tags metrics
// @Produce json
// @Param start_time query string false "Window start (RFC3339, inclusive)"
// @Param end_time query string false "Window end (RFC3339, exclusive)"
// @Success 200 {object} models.DashboardSummary
// @Failure 400 {object} errors.APIError
// @Router /metrics/dashboard [get]
func (h *MetricsHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	summary, err := h.hubservice.GetDashboard(r.Context(), window)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to assemble dashboard", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// @Summary Get factory-level metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} models.FactoryMetrics
// @Router /metrics/factory [get]
func (h *MetricsHandlers) GetFactoryMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	factory, err := h.hubservice.Engine.FactoryMetrics(r.Context(), window)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute factory metrics", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, factory)
}

// @Summary Get metrics for all workers
// @Tags metrics
// @Produce json
// @Success 200 {array} models.WorkerMetrics
// @Router /metrics/workers [get]
func (h *MetricsHandlers) ListWorkerMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	workers, err := h.hubservice.Engine.AllWorkerMetrics(r.Context(), window)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute worker metrics", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, workers)
}

// @Summary Get metrics for one worker
// @Description Unregistered worker IDs yield a zeroed snapshot, not a 404
// @Tags metrics
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} models.WorkerMetrics
// @Router /metrics/workers/{id} [get]
func (h *MetricsHandlers) GetWorkerMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id := mux.Vars(r)["id"]

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	worker, err := h.hubservice.Engine.WorkerMetrics(r.Context(), id, window)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute worker metrics", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, worker)
}

// @Summary Get metrics for all workstations
// @Tags metrics
// @Produce json
// @Success 200 {array} models.WorkstationMetrics
// @Router /metrics/workstations [get]
func (h *MetricsHandlers) ListWorkstationMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	stations, err := h.hubservice.Engine.AllWorkstationMetrics(r.Context(), window)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute workstation metrics", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, stations)
}

// @Summary Get metrics for one workstation
// @Tags metrics
// @Produce json
// @Param id path string true "Workstation ID"
// @Success 200 {object} models.WorkstationMetrics
// @Router /metrics/workstations/{id} [get]
func (h *MetricsHandlers) GetWorkstationMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id := mux.Vars(r)["id"]

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	station, err := h.hubservice.Engine.WorkstationMetrics(r.Context(), id, window)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute workstation metrics", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, station)
}

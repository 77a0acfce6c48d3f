// FilePath: api/resources/api.resource.data.go
package resources

import (
	"encoding/json"
	"io"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/hubservice"
)

// DataHandlers serves the demo-data management endpoints
type DataHandlers struct {
	hubservice *hubservice.HubService
}

// RefreshRequest shapes the generated demo dataset. Zero values fall back
// to the one-week defaults.
type RefreshRequest struct {
	NumDays       int  `json:"num_days"`
	EventsPerDay  int  `json:"events_per_day"`
	ClearExisting bool `json:"clear_existing"`
}

func decodeRefreshRequest(r *http.Request) (RefreshRequest, *errors.APIError) {
	req := RefreshRequest{
		NumDays:      hubservice.DefaultGenerateDays,
		EventsPerDay: hubservice.DefaultGenerateEventsPerDay,
	}
	// An empty body keeps the defaults.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return req, errors.NewValidationError("invalid request body", err)
	}
	if req.NumDays < 0 || req.EventsPerDay < 0 {
		return req, errors.NewValidationError("num_days and events_per_day must not be negative", nil)
	}
	return req, nil
}

// @Summary Seed sample workers and workstations
// @Description Idempotent; existing entities are skipped
// @Tags data
// @Produce json
// @Success 200 {object} models.SeedResult
// @Router /data/seed [post]
func (h *DataHandlers) SeedSampleData(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	result, err := h.hubservice.SeedSampleData(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to seed sample data", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// @Summary Generate demo events
// @Description Produce shift-shaped demo events for the seeded entities
// @Tags data
// @Accept json
// @Produce json
// @Param options body RefreshRequest false "Generation options"
// @Success 200 {object} models.SeedResult
// @Failure 400 {object} errors.APIError
// @Router /data/generate-events [post]
func (h *DataHandlers) GenerateEvents(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	req, apiErr := decodeRefreshRequest(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.GenerateEvents(r.Context(), req.NumDays, req.EventsPerDay, req.ClearExisting)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to generate events", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// @Summary Initialize demo data
// @Description Seed sample entities and generate a default week of events, keeping existing data
// @Tags data
// @Produce json
// @Success 200 {object} models.SeedResult
// @Router /data/initialize [post]
func (h *DataHandlers) InitializeData(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	result, err := h.hubservice.InitializeData(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to initialize data", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// @Summary Refresh demo data
// @Description Regenerate the demo dataset, replacing stored events
// @Tags data
// @Accept json
// @Produce json
// @Param options body RefreshRequest false "Generation options"
// @Success 200 {object} models.SeedResult
// @Failure 400 {object} errors.APIError
// @Router /data/refresh [post]
func (h *DataHandlers) RefreshData(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	req, apiErr := decodeRefreshRequest(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.RefreshData(r.Context(), req.NumDays, req.EventsPerDay)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to refresh data", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// @Summary Delete all events
// @Description Remove every stored event; the worker and workstation registries are untouched
// @Tags data
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /data/events [delete]
func (h *DataHandlers) ClearEvents(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	deleted, err := h.hubservice.ClearEvents(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to clear events", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// FilePath: api/resources/api.resource.events.go
package resources

import (
	"encoding/json"
	"net/http"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/hubservice"
	"github.com/prodvision/floorhub/internal/ingest"
	"github.com/prodvision/floorhub/internal/models"
)

// EventHandlers encapsulates the event ingestion and query HTTP handlers
type EventHandlers struct {
	hubservice *hubservice.HubService
}

type batchRequest struct {
	Events []ingest.Submission `json:"events"`
}

type eventQuery struct {
	StartTime     *time.Time `schema:"start_time"`
	EndTime       *time.Time `schema:"end_time"`
	WorkerID      string     `schema:"worker_id"`
	WorkstationID string     `schema:"workstation_id"`
	EventType     string     `schema:"event_type"`
	Limit         int        `schema:"limit"`
	Offset        int        `schema:"offset"`
}

func (q eventQuery) filter() models.EventFilter {
	return models.EventFilter{
		Start:         q.StartTime,
		End:           q.EndTime,
		WorkerID:      q.WorkerID,
		WorkstationID: q.WorkstationID,
		EventType:     models.EventKind(q.EventType),
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
}

// @Summary Ingest a single activity event
// @Description Validate and store one CV activity event; duplicate deliveries conflict
// @Tags events
// @Accept json
// @Produce json
// @Param event body ingest.Submission true "Activity event"
// @Success 201 {object} models.Event
// @Failure 400 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /events [post]
func (h *EventHandlers) IngestEvent(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var sub ingest.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	event, stored, err := h.hubservice.Pipeline.IngestOne(r.Context(), sub)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to ingest event", requestID))
		return
	}
	if !stored {
		respondWithError(w, errors.NewDuplicateError("event already recorded", nil).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, event)
}

// @Summary Ingest a batch of activity events
// @Description Validate and store up to the configured batch cap; elements succeed or fail independently
// @Tags events
// @Accept json
// @Produce json
// @Param batch body batchRequest true "Event batch"
// @Success 200 {object} ingest.BatchResult
// @Failure 400 {object} errors.APIError
// @Router /events/batch [post]
func (h *EventHandlers) IngestBatch(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.Pipeline.IngestBatch(r.Context(), req.Events)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to ingest batch", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// @Summary List activity events
// @Description Query stored events, newest first, filtered by a half-open time window and identity fields
// @Tags events
// @Produce json
// @Param start_time query string false "Window start (RFC3339, inclusive)"
// @Param end_time query string false "Window end (RFC3339, exclusive)"
// @Param worker_id query string false "Worker ID"
// @Param workstation_id query string false "Workstation ID"
// @Param event_type query string false "Event type"
// @Param limit query int false "Maximum events returned"
// @Param offset query int false "Events skipped"
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *EventHandlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	query, apiErr := parseEventQuery(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	events, err := h.hubservice.Events.Query(r.Context(), query.filter())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to list events", requestID))
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	respondWithJSON(w, http.StatusOK, events)
}

// @Summary Count activity events
// @Description Count stored events matching the given filters
// @Tags events
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /events/count [get]
func (h *EventHandlers) CountEvents(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	query, apiErr := parseEventQuery(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	count, err := h.hubservice.Events.Count(r.Context(), query.filter())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to count events", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func parseEventQuery(r *http.Request) (eventQuery, *errors.APIError) {
	var q eventQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		return q, errors.NewValidationError("invalid query parameters", err)
	}
	if q.EventType != "" && !models.EventKind(q.EventType).Valid() {
		return q, errors.NewValidationError("unknown event_type: "+q.EventType, nil)
	}
	if q.Limit < 0 || q.Offset < 0 {
		return q, errors.NewValidationError("limit and offset must not be negative", nil)
	}
	return q, nil
}

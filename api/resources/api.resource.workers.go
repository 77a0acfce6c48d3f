// FilePath: api/resources/api.resource.workers.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/hubservice"
	"github.com/prodvision/floorhub/internal/models"
)

// WorkerHandlers encapsulates the worker registry HTTP handlers
type WorkerHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Register a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body models.Worker true "Worker details"
// @Success 201 {object} models.Worker
// @Failure 400 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /workers [post]
func (h *WorkerHandlers) CreateWorker(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var worker models.Worker
	if err := json.NewDecoder(r.Body).Decode(&worker); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.CreateWorker(r.Context(), &worker); err != nil {
		respondWithError(w, asAPIError(err, "failed to create worker", requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, worker)
}

// @Summary Get a worker by ID
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} models.Worker
// @Failure 404 {object} errors.APIError
// @Router /workers/{id} [get]
func (h *WorkerHandlers) GetWorker(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id := mux.Vars(r)["id"]

	worker, err := h.hubservice.GetWorker(r.Context(), id)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to get worker", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, worker)
}

// @Summary List workers
// @Tags workers
// @Produce json
// @Success 200 {array} models.Worker
// @Router /workers [get]
func (h *WorkerHandlers) ListWorkers(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	workers, err := h.hubservice.ListWorkers(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to list workers", requestID))
		return
	}
	if workers == nil {
		workers = []*models.Worker{}
	}

	respondWithJSON(w, http.StatusOK, workers)
}

// @Summary Delete a worker
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /workers/{id} [delete]
func (h *WorkerHandlers) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id := mux.Vars(r)["id"]

	if err := h.hubservice.DeleteWorker(r.Context(), id); err != nil {
		respondWithError(w, asAPIError(err, "failed to delete worker", requestID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

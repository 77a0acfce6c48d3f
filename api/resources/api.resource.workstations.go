// FilePath: api/resources/api.resource.workstations.go
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

// WorkstationHandlers encapsulates the workstation registry HTTP handlers
type WorkstationHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Register a workstation
// @Tags workstations
// @Accept json
// @Produce json
// @Param workstation body models.Workstation true "Workstation details"
// @Success 201 {object} models.Workstation
// @Failure 400 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /workstations [post]
func (h *WorkstationHandlers) CreateWorkstation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var station models.Workstation
	if err := json.NewDecoder(r.Body).Decode(&station); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.CreateWorkstation(r.Context(), &station); err != nil {
		respondWithError(w, asAPIError(err, "failed to create workstation", requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, station)
}

// @Summary Get a workstation by ID
// @Tags workstations
// @Produce json
// @Param id path string true "Workstation ID"
// @Success 200 {object} models.Workstation
// @Failure 404 {object} errors.APIError
// @Router /workstations/{id} [get]
func (h *WorkstationHandlers) GetWorkstation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id := mux.Vars(r)["id"]

	station, err := h.hubservice.GetWorkstation(r.Context(), id)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to get workstation", requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, station)
}

// @Summary List workstations
// @Tags workstations
// @Produce json
// @Success 200 {array} models.Workstation
// @Router /workstations [get]
func (h *WorkstationHandlers) ListWorkstations(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	stations, err := h.hubservice.ListWorkstations(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to list workstations", requestID))
		return
	}
	if stations == nil {
		stations = []*models.Workstation{}
	}

	respondWithJSON(w, http.StatusOK, stations)
}

// @Summary Delete a workstation
// @Tags workstations
// @Produce json
// @Param id path string true "Workstation ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /workstations/{id} [delete]
func (h *WorkstationHandlers) DeleteWorkstation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	id := mux.Vars(r)["id"]

	if err := h.hubservice.DeleteWorkstation(r.Context(), id); err != nil {
		respondWithError(w, asAPIError(err, "failed to delete workstation", requestID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/hubservice"
	"github.com/prodvision/floorhub/internal/metrics"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Events       *EventHandlers
	Metrics      *MetricsHandlers
	Workers      *WorkerHandlers
	Workstations *WorkstationHandlers
	Data         *DataHandlers
	HealthCheck  func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService) *Resources {
	return &Resources{
		Events:       &EventHandlers{hubservice: svc},
		Metrics:      &MetricsHandlers{hubservice: svc},
		Workers:      &WorkerHandlers{hubservice: svc},
		Workstations: &WorkstationHandlers{hubservice: svc},
		Data:         &DataHandlers{hubservice: svc},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// queryDecoder maps URL query parameters onto filter structs. Timestamps
// in query strings are RFC3339.
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

// windowQuery carries the optional half-open aggregation window shared by
// all metrics endpoints. start_time is inclusive, end_time exclusive.
type windowQuery struct {
	StartTime *time.Time `schema:"start_time"`
	EndTime   *time.Time `schema:"end_time"`
}

func parseWindow(r *http.Request) (metrics.Window, *errors.APIError) {
	var q windowQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		return metrics.Window{}, errors.NewValidationError("invalid query parameters", err)
	}
	if q.StartTime != nil && q.EndTime != nil && !q.StartTime.Before(*q.EndTime) {
		return metrics.Window{}, errors.NewValidationError("start_time must be before end_time", nil)
	}
	return metrics.Window{Start: q.StartTime, End: q.EndTime}, nil
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// asAPIError passes service-layer errors through with their own status
// codes and wraps anything else as an internal error.
func asAPIError(err error, fallback string, requestID string) *errors.APIError {
	if apiErr, ok := err.(*errors.APIError); ok {
		return apiErr.WithRequestID(requestID)
	}
	return errors.NewInternalError(fallback, err).WithRequestID(requestID)
}

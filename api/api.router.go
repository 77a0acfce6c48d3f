// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prodvision/floorhub/api/resources"
	"github.com/prodvision/floorhub/internal/hubservice"
	"github.com/prodvision/floorhub/internal/monitoring"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

// Resources exposes the handler set so the server can attach the health
// check after wiring its dependencies.
func (r *Router) Resources() *resources.Resources {
	return r.resources
}

func (r *Router) setupRoutes() {
	// Prometheus scrape endpoint at the conventional root path
	r.router.Handle("/metrics", monitoring.Handler()).Methods(http.MethodGet)

	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if r.resources.HealthCheck != nil {
			r.resources.HealthCheck(w, req)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Events
	events := api.PathPrefix("/events").Subrouter()
	events.HandleFunc("", r.resources.Events.IngestEvent).Methods(http.MethodPost)
	events.HandleFunc("", r.resources.Events.ListEvents).Methods(http.MethodGet)
	events.HandleFunc("/batch", r.resources.Events.IngestBatch).Methods(http.MethodPost)
	events.HandleFunc("/count", r.resources.Events.CountEvents).Methods(http.MethodGet)

	// Derived metrics
	metrics := api.PathPrefix("/metrics").Subrouter()
	metrics.HandleFunc("/dashboard", r.resources.Metrics.GetDashboard).Methods(http.MethodGet)
	metrics.HandleFunc("/factory", r.resources.Metrics.GetFactoryMetrics).Methods(http.MethodGet)
	metrics.HandleFunc("/workers", r.resources.Metrics.ListWorkerMetrics).Methods(http.MethodGet)
	metrics.HandleFunc("/workers/{id}", r.resources.Metrics.GetWorkerMetrics).Methods(http.MethodGet)
	metrics.HandleFunc("/workstations", r.resources.Metrics.ListWorkstationMetrics).Methods(http.MethodGet)
	metrics.HandleFunc("/workstations/{id}", r.resources.Metrics.GetWorkstationMetrics).Methods(http.MethodGet)

	// Workers
	workers := api.PathPrefix("/workers").Subrouter()
	workers.HandleFunc("", r.resources.Workers.ListWorkers).Methods(http.MethodGet)
	workers.HandleFunc("", r.resources.Workers.CreateWorker).Methods(http.MethodPost)
	workers.HandleFunc("/{id}", r.resources.Workers.GetWorker).Methods(http.MethodGet)
	workers.HandleFunc("/{id}", r.resources.Workers.DeleteWorker).Methods(http.MethodDelete)

	// Workstations
	stations := api.PathPrefix("/workstations").Subrouter()
	stations.HandleFunc("", r.resources.Workstations.ListWorkstations).Methods(http.MethodGet)
	stations.HandleFunc("", r.resources.Workstations.CreateWorkstation).Methods(http.MethodPost)
	stations.HandleFunc("/{id}", r.resources.Workstations.GetWorkstation).Methods(http.MethodGet)
	stations.HandleFunc("/{id}", r.resources.Workstations.DeleteWorkstation).Methods(http.MethodDelete)

	// Demo data management
	data := api.PathPrefix("/data").Subrouter()
	data.HandleFunc("/seed", r.resources.Data.SeedSampleData).Methods(http.MethodPost)
	data.HandleFunc("/generate-events", r.resources.Data.GenerateEvents).Methods(http.MethodPost)
	data.HandleFunc("/initialize", r.resources.Data.InitializeData).Methods(http.MethodPost)
	data.HandleFunc("/refresh", r.resources.Data.RefreshData).Methods(http.MethodPost)
	data.HandleFunc("/events", r.resources.Data.ClearEvents).Methods(http.MethodDelete)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

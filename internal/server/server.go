// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/api"
	"github.com/prodvision/floorhub/internal/config"
	"github.com/prodvision/floorhub/internal/database"
	"github.com/prodvision/floorhub/internal/datagen"
	"github.com/prodvision/floorhub/internal/hubservice"
	"github.com/prodvision/floorhub/internal/ingest"
	"github.com/prodvision/floorhub/internal/metrics"
	"github.com/prodvision/floorhub/internal/monitoring"
	"github.com/prodvision/floorhub/internal/repository"
	"github.com/prodvision/floorhub/internal/repository/memory"
	"github.com/prodvision/floorhub/internal/repository/postgres"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	hubservice *hubservice.HubService
	db         database.DB
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start wires the service graph, begins listening and blocks until an
// interrupt triggers graceful shutdown.
func (s *Server) Start() error {
	svc, err := s.initializeHubService()
	if err != nil {
		return err
	}
	s.hubservice = svc

	s.setupLifecycleHandlers()

	router := api.NewRouter(s.hubservice)
	router.Resources().SetHealthCheck(s.handleHealth())

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.srv.Handler = corsHandler(router)

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing database: %v", err)
		}
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// handleHealth returns a health check handler that also reports store
// reachability for the postgres driver.
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if s.db != nil {
			if err := s.db.Ping(r.Context()); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write([]byte(`{"status":"` + status + `","version":"` + nuts.GetVersion() + `"}`))
	}
}

// setupLifecycleHandlers records data lifecycle events and drops the
// cached dashboard whenever bulk operations change the stored events.
func (s *Server) setupLifecycleHandlers() {
	s.hubservice.Data.OnLifecycle(datagen.EventSeeded, func(detail string) {
		nuts.L.Infof("[Lifecycle] Sample data seeded: %s", detail)
		monitoring.RecordDataEvent("seeded", map[string]string{"detail": detail})
	})

	s.hubservice.Data.OnLifecycle(datagen.EventGenerated, func(detail string) {
		nuts.L.Infof("[Lifecycle] Demo events generated: %s", detail)
		monitoring.RecordDataEvent("generated", map[string]string{"detail": detail})
		s.hubservice.InvalidateDashboard(context.Background())
	})

	s.hubservice.Data.OnLifecycle(datagen.EventCleared, func(detail string) {
		nuts.L.Infof("[Lifecycle] Events cleared: %s", detail)
		monitoring.RecordDataEvent("cleared", map[string]string{"detail": detail})
		s.hubservice.InvalidateDashboard(context.Background())
	})
}

// initializeHubService builds the repositories for the configured driver
// and assembles the service graph on top of them.
func (s *Server) initializeHubService() (*hubservice.HubService, error) {
	var (
		workers  repository.WorkerRepository
		stations repository.WorkstationRepository
		events   repository.EventRepository
	)

	switch s.config.Database.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(s.config.Database.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		s.db = db

		workers, err = postgres.NewWorkerRepository(db)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize worker repository: %w", err)
		}
		stations, err = postgres.NewWorkstationRepository(db)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize workstation repository: %w", err)
		}
		events, err = postgres.NewEventRepository(db)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize event repository: %w", err)
		}
	case "memory":
		nuts.L.Infof("[Server] Using in-memory store")
		workers = memory.NewWorkerRepository()
		stations = memory.NewWorkstationRepository()
		events = memory.NewEventRepository()
	default:
		return nil, fmt.Errorf("unknown database driver %q", s.config.Database.Driver)
	}

	pipeline := ingest.NewPipeline(events, s.config.Engine.MaxBatchSize)
	engine := metrics.NewEngine(events, workers, stations, s.config.Engine.SliceDuration())
	generator := datagen.New(workers, stations, events)

	svc := hubservice.New(workers, stations, events, pipeline, engine, generator)

	if s.config.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", s.config.Cache.Host, s.config.Cache.Port),
			Password: s.config.Cache.Password,
			DB:       s.config.Cache.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			nuts.L.Warnf("[Server] Redis unavailable, dashboard cache disabled: %v", err)
		} else {
			nuts.L.Infof("[Server] Dashboard cache enabled (ttl %s)", s.config.Cache.DashboardTTL)
			svc = svc.WithDashboardCache(client, s.config.Cache.DashboardTTL)
		}
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}

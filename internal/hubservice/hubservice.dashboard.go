// FilePath: internal/hubservice/hubservice.dashboard.go
package hubservice

import (
	"context"
	"encoding/json"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/prodvision/floorhub/internal/metrics"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/monitoring"
)

const dashboardCacheKey = "floorhub:dashboard:all"

// GetDashboard assembles the full dashboard summary for a window: the
// factory aggregate plus per-worker and per-workstation snapshots, all
// derived from the same window so the sections agree with each other.
// The unbounded (all-time) summary is served from the redis cache when
// one is configured; bounded windows are always computed fresh.
func (s *HubService) GetDashboard(ctx context.Context, w metrics.Window) (*models.DashboardSummary, error) {
	start := time.Now()

	if s.cacheable(w) {
		if cached := s.cachedDashboard(ctx); cached != nil {
			monitoring.ObserveDashboardDuration(time.Since(start))
			return cached, nil
		}
	}

	factory, err := s.Engine.FactoryMetrics(ctx, w)
	if err != nil {
		return nil, err
	}
	workers, err := s.Engine.AllWorkerMetrics(ctx, w)
	if err != nil {
		return nil, err
	}
	stations, err := s.Engine.AllWorkstationMetrics(ctx, w)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		FactoryMetrics:     *factory,
		WorkerMetrics:      workers,
		WorkstationMetrics: stations,
		LastUpdated:        time.Now().UTC(),
	}

	if s.cacheable(w) {
		s.storeDashboard(ctx, summary)
	}

	monitoring.ObserveDashboardDuration(time.Since(start))
	return summary, nil
}

// InvalidateDashboard drops the cached all-time summary. Called from the
// data lifecycle handlers after bulk generation or clearing.
func (s *HubService) InvalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		nuts.L.Warnf("[Dashboard] Failed to invalidate cache: %v", err)
	}
}

func (s *HubService) cacheable(w metrics.Window) bool {
	return s.cache != nil && s.cacheTTL > 0 && !w.Bounded()
}

func (s *HubService) cachedDashboard(ctx context.Context) *models.DashboardSummary {
	payload, err := s.cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var summary models.DashboardSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		nuts.L.Warnf("[Dashboard] Discarding unreadable cache entry: %v", err)
		return nil
	}
	return &summary
}

func (s *HubService) storeDashboard(ctx context.Context, summary *models.DashboardSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
		nuts.L.Warnf("[Dashboard] Failed to cache summary: %v", err)
	}
}

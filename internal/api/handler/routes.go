package handler

import (
	"net/http"

	"github.com/vfg2006/traffic-sync-engine/internal/api/handler/router"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/scheduler"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(cfg *config.Config, syncService *scheduler.MetricsAggregationService, reportService reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunSync(cfg, syncService),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncService),
		},
		{
			Path:    "/v1/sync/history",
			Method:  http.MethodGet,
			Handler: GetSyncHistory(reportService),
		},
		{
			Path:    "/v1/sync/breaker/reset",
			Method:  http.MethodPost,
			Handler: ResetBreaker(syncService),
		},
	}
}

func Metrics(reportService reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/:user_id",
			Method:  http.MethodGet,
			Handler: GetUserMetrics(reportService),
		},
	}
}

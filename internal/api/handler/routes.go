package handler

import (
	"net/http"

	"github.com/dashvendas/sales-dashboard-api/internal/api/handler/router"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/connecting"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/syncing"
	"github.com/dashvendas/sales-dashboard-api/pkg/middleware"
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

func Connections(service connecting.ConnectionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connections",
			Method:      http.MethodGet,
			Handler:     ListConnections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/connections",
			Method:      http.MethodPost,
			Handler:     CreateConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/connections/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateConnectionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/connections/:id/aggregates",
			Method:      http.MethodGet,
			Handler:     GetConnectionAggregates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connections/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

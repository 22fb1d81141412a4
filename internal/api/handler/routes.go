package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/trending"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Filters(catalogRepo repository.CatalogRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/filters",
			Method:      http.MethodGet,
			Handler:     GetFilters(catalogRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func KPIs(service aggregating.KPIService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpis",
			Method:      http.MethodGet,
			Handler:     GetCategoryKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpis/cities",
			Method:      http.MethodGet,
			Handler:     GetCitySegments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service aggregating.KPIService, exporter reporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/top",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/top/export",
			Method:      http.MethodGet,
			Handler:     ExportTopProducts(exporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Trends(service trending.TrendService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/trends/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/categories",
			Method:      http.MethodGet,
			Handler:     GetCategoryTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecast(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecast/year",
			Method:      http.MethodGet,
			Handler:     GetYearForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Cache(refreshers ...CacheRefresher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cache/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCache(refreshers...),
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

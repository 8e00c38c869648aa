package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/marketing-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
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

// Report expõe as seções do relatório de análise. Todas as rotas usam
// o runner memoizado: o pipeline só roda de novo quando as entradas
// mudaram.
func Report(runner analyzing.Runner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(runner),
		},
		{
			Path:    "/v1/report/combined",
			Method:  http.MethodGet,
			Handler: GetCombinedDaily(runner),
		},
		{
			Path:    "/v1/report/platforms",
			Method:  http.MethodGet,
			Handler: GetPlatformSummaries(runner),
		},
		{
			Path:    "/v1/report/tactics",
			Method:  http.MethodGet,
			Handler: GetTacticSummaries(runner),
		},
		{
			Path:    "/v1/report/marketing",
			Method:  http.MethodGet,
			Handler: GetMarketingRecords(runner),
		},
		{
			Path:    "/v1/report/business",
			Method:  http.MethodGet,
			Handler: GetBusinessRecords(runner),
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunJob(services),
		},
		{
			Path:    "/v1/jobs/status",
			Method:  http.MethodGet,
			Handler: GetJobStatus(services),
		},
	}
}

func Metrics(registry *prometheus.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		},
	}
}

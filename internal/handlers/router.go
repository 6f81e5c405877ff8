package handlers

import (
	"net/http"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	RouteSlackCommands = "/slack/commands"
	RouteHealth        = "/health"
	RouteMetrics       = "/metrics"
	RouteDuty          = "/api/duty"
	RouteSchedule      = "/api/schedule"
	RouteHistory       = "/api/history"
	RouteWeek          = "/api/weeks/{key}"
	RouteICS           = "/schedule.ics"
	RouteXLSX          = "/schedule.xlsx"
)

type RouterConfig struct {
	Slack          *SlackHandler
	API            *APIHandler
	Metrics        contract.MetricsCollector
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter wires every HTTP surface. CORS applies to the whole router so
// browser dashboards can read the API and the exports.
func NewRouter(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(metricsMiddleware(cfg.Metrics))

	router.HandleFunc(RouteHealth, cfg.API.Health).Methods(http.MethodGet)
	router.HandleFunc(RouteSlackCommands, cfg.Slack.HandleSlashCommand).Methods(http.MethodPost)

	if cfg.Gatherer != nil {
		router.Handle(RouteMetrics, promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	router.HandleFunc(RouteDuty, cfg.API.GetDuty).Methods(http.MethodGet)
	router.HandleFunc(RouteSchedule, cfg.API.GetSchedule).Methods(http.MethodGet)
	router.HandleFunc(RouteHistory, cfg.API.GetHistory).Methods(http.MethodGet)
	router.HandleFunc(RouteWeek, cfg.API.GetWeek).Methods(http.MethodGet)
	router.HandleFunc(RouteICS, cfg.API.ExportICS).Methods(http.MethodGet)
	router.HandleFunc(RouteXLSX, cfg.API.ExportXLSX).Methods(http.MethodGet)

	co := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return co.Handler(router)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func metricsMiddleware(metrics contract.MetricsCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			metrics.RecordHTTPRequest(route, rec.status, time.Since(start))
		})
	}
}

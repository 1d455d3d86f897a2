package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"stringanalyzer/application/commands/bus"
	"stringanalyzer/application/ports"
	querybus "stringanalyzer/application/queries/bus"
	"stringanalyzer/infrastructure/config"
	"stringanalyzer/interfaces/http/rest/handlers"
	"stringanalyzer/interfaces/http/rest/middleware"
	apperrors "stringanalyzer/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	repository ports.RecordRepository
	metrics    MetricsBackend
	logger     *zap.Logger
}

// MetricsBackend is what the router needs from the metrics layer: a scrape
// endpoint and per-request recording.
type MetricsBackend interface {
	middleware.RequestRecorder
	Handler() http.Handler
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	repository ports.RecordRepository,
	metrics MetricsBackend,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		repository: repository,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	errorHandler := apperrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())
	stringHandler := handlers.NewStringHandler(
		rt.commandBus,
		rt.queryBus,
		errorHandler,
		rt.logger,
		rt.cfg.MaxBodyBytes,
	)

	router.Route("/strings", func(r chi.Router) {
		r.Post("/", stringHandler.AnalyzeString)
		r.Get("/", stringHandler.ListStrings)
		r.Get("/filter-by-natural-language", stringHandler.FilterByNaturalLanguage)
		r.Get("/{value}", stringHandler.GetString)
		r.Delete("/{value}", stringHandler.DeleteString)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready only when the backing store is reachable
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := rt.repository.Ping(req.Context()); err != nil {
		rt.logger.Warn("Readiness check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

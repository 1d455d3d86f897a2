package di

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"stringanalyzer/application/commands"
	"stringanalyzer/application/commands/bus"
	commands_handlers "stringanalyzer/application/commands/handlers"
	"stringanalyzer/application/ports"
	"stringanalyzer/application/queries"
	querybus "stringanalyzer/application/queries/bus"
	queries_handlers "stringanalyzer/application/queries/handlers"
	"stringanalyzer/infrastructure/config"
	"stringanalyzer/infrastructure/persistence/jsonfile"
	"stringanalyzer/infrastructure/persistence/redisstore"
	"stringanalyzer/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Repository ports.RecordRepository
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Metrics    *observability.Metrics
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the metrics instance
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics()
}

// ProvideRecordRepository creates the repository for the configured backend
func ProvideRecordRepository(cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) (ports.RecordRepository, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return redisstore.NewRepository(client, cfg.RedisKeyPrefix, metrics), nil
	default:
		return jsonfile.NewRepository(cfg.DataFile, metrics, logger)
	}
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	repo ports.RecordRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	pipeline := bus.NewPipeline(bus.LoggingMiddleware(&zapLoggerAdapter{logger}))

	analyzeHandler := commands_handlers.NewAnalyzeStringHandler(repo, metrics, logger)
	if err := commandBus.Register(commands.AnalyzeStringCommand{}, pipeline.Execute(analyzeHandler)); err != nil {
		return nil, err
	}

	deleteHandler := commands_handlers.NewDeleteStringHandler(repo, metrics, logger)
	if err := commandBus.Register(commands.DeleteStringCommand{}, pipeline.Execute(deleteHandler)); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	repo ports.RecordRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()
	mw := querybus.NewMetricsMiddleware(&queryMetricsAdapter{metrics})

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetStringQuery{}, queries_handlers.NewGetStringHandler(repo, logger)},
		{queries.ListStringsQuery{}, queries_handlers.NewListStringsHandler(repo, logger)},
		{queries.NaturalLanguageQuery{}, queries_handlers.NewNaturalLanguageHandler(repo, metrics, logger)},
	}

	for _, reg := range registrations {
		if err := queryBus.Register(reg.query, mw.Wrap(reg.handler)); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}

// zapLoggerAdapter adapts zap.Logger to the command bus Logger interface
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, fieldsToZap(keysAndValues)...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, fieldsToZap(keysAndValues)...)
}

func fieldsToZap(fields []interface{}) []zap.Field {
	var zapFields []zap.Field
	for i := 0; i+1 < len(fields); i += 2 {
		key, _ := fields[i].(string)
		zapFields = append(zapFields, zap.Any(key, fields[i+1]))
	}
	return zapFields
}

// queryMetricsAdapter adapts observability.Metrics to the query bus
// metrics interface
type queryMetricsAdapter struct {
	metrics *observability.Metrics
}

func (a *queryMetricsAdapter) StartTimer(metric, label string) querybus.Timer {
	return a.metrics.StartTimer(metric, label)
}

func (a *queryMetricsAdapter) Increment(metric, label string) {
	a.metrics.Increment(metric, label)
}

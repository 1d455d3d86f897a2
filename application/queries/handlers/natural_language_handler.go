package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stringanalyzer/application/ports"
	"stringanalyzer/application/queries"
	"stringanalyzer/application/queries/bus"
	"stringanalyzer/domain/filtering"
	apperrors "stringanalyzer/pkg/errors"
)

// InterpreterMetrics counts query interpretations and recognizer hits.
type InterpreterMetrics interface {
	ObserveNLQuery(recognized bool)
	ObserveRecognizerHit(recognizer string)
}

// NaturalLanguageHandler interprets free-form query text and returns the
// records matching the resulting filter. Text the interpreter does not
// understand yields an empty filter, which matches everything.
type NaturalLanguageHandler struct {
	repo    ports.RecordRepository
	metrics InterpreterMetrics
	logger  *zap.Logger
}

// NewNaturalLanguageHandler creates a new natural language handler
func NewNaturalLanguageHandler(repo ports.RecordRepository, metrics InterpreterMetrics, logger *zap.Logger) *NaturalLanguageHandler {
	return &NaturalLanguageHandler{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle executes the natural language query
func (h *NaturalLanguageHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	nlQuery, ok := query.(queries.NaturalLanguageQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	spec, matches := filtering.Interpret(nlQuery.Query)
	h.observe(spec, matches)

	h.logger.Info("Interpreted query",
		zap.String("query", nlQuery.Query),
		zap.Int("recognizers_matched", len(matches)),
		zap.Any("matches", matches),
	)

	records, err := h.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}

	matched := spec.Apply(records)

	return &queries.NaturalLanguageResult{
		Data:  matched,
		Count: len(matched),
		InterpretedQuery: queries.InterpretedQuery{
			Original:      nlQuery.Query,
			ParsedFilters: spec,
		},
	}, nil
}

func (h *NaturalLanguageHandler) observe(spec filtering.FilterSpec, matches []filtering.Match) {
	if h.metrics == nil {
		return
	}
	h.metrics.ObserveNLQuery(!spec.IsEmpty())
	for _, m := range matches {
		h.metrics.ObserveRecognizerHit(m.Recognizer)
	}
}

package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stringanalyzer/application/ports"
	"stringanalyzer/application/queries"
	"stringanalyzer/application/queries/bus"
	apperrors "stringanalyzer/pkg/errors"
)

// ListStringsHandler lists stored records, applying structured filters.
type ListStringsHandler struct {
	repo   ports.RecordRepository
	logger *zap.Logger
}

// NewListStringsHandler creates a new list strings handler
func NewListStringsHandler(repo ports.RecordRepository, logger *zap.Logger) *ListStringsHandler {
	return &ListStringsHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle executes the list strings query
func (h *ListStringsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	listQuery, ok := query.(queries.ListStringsQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	records, err := h.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}

	matched := listQuery.Filter.Apply(records)

	return &queries.ListStringsResult{
		Data:           matched,
		Count:          len(matched),
		FiltersApplied: listQuery.Filter,
	}, nil
}

package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stringanalyzer/application/ports"
	"stringanalyzer/application/queries"
	"stringanalyzer/application/queries/bus"
)

// GetStringHandler fetches a single record by value.
type GetStringHandler struct {
	repo   ports.RecordRepository
	logger *zap.Logger
}

// NewGetStringHandler creates a new get string handler
func NewGetStringHandler(repo ports.RecordRepository, logger *zap.Logger) *GetStringHandler {
	return &GetStringHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle executes the get string query
func (h *GetStringHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	getQuery, ok := query.(queries.GetStringQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	record, err := h.repo.FindByValue(ctx, getQuery.Value)
	if err != nil {
		return nil, err
	}

	return record, nil
}

package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stringanalyzer/application/commands"
	"stringanalyzer/application/commands/bus"
	"stringanalyzer/application/ports"
	"stringanalyzer/domain/core/valueobjects"
)

// DeleteStringHandler removes a stored string by value.
type DeleteStringHandler struct {
	repo   ports.RecordRepository
	gauge  RecordGauge
	logger *zap.Logger
}

// NewDeleteStringHandler creates a new delete string handler
func NewDeleteStringHandler(repo ports.RecordRepository, gauge RecordGauge, logger *zap.Logger) *DeleteStringHandler {
	return &DeleteStringHandler{
		repo:   repo,
		gauge:  gauge,
		logger: logger,
	}
}

// Handle executes the delete string command. Not-found errors from the
// repository pass through unchanged so the HTTP layer can map them to 404.
func (h *DeleteStringHandler) Handle(ctx context.Context, cmd bus.Command) error {
	deleteCmd, ok := cmd.(commands.DeleteStringCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	if err := h.repo.Delete(ctx, deleteCmd.Value); err != nil {
		return err
	}

	if h.gauge != nil {
		if n, err := h.repo.Count(ctx); err == nil {
			h.gauge.SetRecordsTotal(float64(n))
		}
	}

	h.logger.Info("String deleted",
		zap.String("id", valueobjects.HashValue(deleteCmd.Value)),
	)

	return nil
}

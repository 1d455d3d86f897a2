package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stringanalyzer/application/commands"
	"stringanalyzer/application/commands/bus"
	"stringanalyzer/application/ports"
	"stringanalyzer/domain/core/entities"
	apperrors "stringanalyzer/pkg/errors"
)

// RecordGauge receives the current record count after mutations.
type RecordGauge interface {
	SetRecordsTotal(n float64)
}

// AnalyzeStringHandler analyzes a string and stores the result. Resubmitting
// a value that is already stored is a no-op, preserving the original
// created_at timestamp.
type AnalyzeStringHandler struct {
	repo   ports.RecordRepository
	gauge  RecordGauge
	logger *zap.Logger
}

// NewAnalyzeStringHandler creates a new analyze string handler
func NewAnalyzeStringHandler(repo ports.RecordRepository, gauge RecordGauge, logger *zap.Logger) *AnalyzeStringHandler {
	return &AnalyzeStringHandler{
		repo:   repo,
		gauge:  gauge,
		logger: logger,
	}
}

// Handle executes the analyze string command
func (h *AnalyzeStringHandler) Handle(ctx context.Context, cmd bus.Command) error {
	analyzeCmd, ok := cmd.(commands.AnalyzeStringCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	existing, err := h.repo.FindByValue(ctx, analyzeCmd.Value)
	if err != nil && !apperrors.IsNotFound(err) {
		return apperrors.Wrap(err, "failed to look up existing record")
	}

	if existing != nil {
		h.logger.Debug("String already analyzed",
			zap.String("id", existing.ID),
		)
		return nil
	}

	record := entities.NewStringRecord(analyzeCmd.Value)
	if err := h.repo.Save(ctx, record); err != nil {
		return apperrors.Wrap(err, "failed to save record")
	}

	h.updateGauge(ctx)

	h.logger.Info("String analyzed",
		zap.String("id", record.ID),
		zap.Int("length", record.Properties.Length),
		zap.Int("word_count", record.Properties.WordCount),
	)

	return nil
}

func (h *AnalyzeStringHandler) updateGauge(ctx context.Context) {
	if h.gauge == nil {
		return
	}
	n, err := h.repo.Count(ctx)
	if err != nil {
		h.logger.Warn("Failed to count records for gauge", zap.Error(err))
		return
	}
	h.gauge.SetRecordsTotal(float64(n))
}

package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/meezan-erp/meezan-erp/internal/zakat"
)

// ZakatRecalculateJob periodically asks the content API for a fresh
// Zakat/Sadaqat snapshot so the books stay current without anyone
// pressing the button.
type ZakatRecalculateJob struct {
	Store  *zakat.Store
	Logger *slog.Logger
}

// NewZakatRecalculateJob wires dependencies for the recalculation handler.
func NewZakatRecalculateJob(store *zakat.Store, logger *slog.Logger) *ZakatRecalculateJob {
	return &ZakatRecalculateJob{Store: store, Logger: logger}
}

// Handle processes Zakat recalculation tasks.
func (j *ZakatRecalculateJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Store == nil {
		return errors.New("zakat recalculate: handler not configured")
	}
	var payload ZakatRecalculatePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.logger()
	if payload.Reason != "" {
		logger = logger.With(slog.String("reason", payload.Reason))
	}
	logger.Info("starting zakat recalculation")

	calcCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	record, err := j.Store.Calculate(calcCtx)
	if err != nil {
		logger.Error("calculate zakat", slog.Any("error", err))
		return err
	}

	logger.Info("completed zakat recalculation",
		slog.Float64("calculated_amount", record.CalculatedAmount),
		slog.String("status", record.Status))
	return nil
}

func (j *ZakatRecalculateJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskZakatRecalculate))
	}
	return slog.Default().With(slog.String("job", TaskZakatRecalculate))
}

package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup pre-populates the dashboard snapshot cache.
	TaskDashboardWarmup = "dashboard:warmup"
	// TaskZakatRecalculate triggers a fresh server-side Zakat snapshot.
	TaskZakatRecalculate = "zakat:recalculate"
)

// DashboardWarmupPayload selects which snapshots to warm.
type DashboardWarmupPayload struct {
	Scope string `json:"scope"`
}

// NewDashboardWarmupTask constructs a warmup task.
func NewDashboardWarmupTask(scope string) (*asynq.Task, error) {
	data, err := json.Marshal(DashboardWarmupPayload{Scope: scope})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}

// ZakatRecalculatePayload carries recalculation options.
type ZakatRecalculatePayload struct {
	Reason string `json:"reason"`
}

// NewZakatRecalculateTask constructs a recalculation task.
func NewZakatRecalculateTask(reason string) (*asynq.Task, error) {
	data, err := json.Marshal(ZakatRecalculatePayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskZakatRecalculate, data), nil
}

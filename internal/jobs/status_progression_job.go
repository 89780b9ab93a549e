package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultProgressionSchedule advances orders every five seconds.
const DefaultProgressionSchedule = "*/5 * * * * *"

// StatusProgressionJob moves every live order one lifecycle step per tick.
type StatusProgressionJob struct {
	handler  commands.AdvanceOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusProgressionJob creates the job. schedule is a cron expression with a
// seconds field; empty means DefaultProgressionSchedule.
func NewStatusProgressionJob(
	handler commands.AdvanceOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatusProgressionJob {
	if schedule == "" {
		schedule = DefaultProgressionSchedule
	}
	return &StatusProgressionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_progression_job"),
	}
}

// Start registers the tick and starts the scheduler.
func (j *StatusProgressionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status progression job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single tick and returns how many orders moved.
func (j *StatusProgressionJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewAdvanceOrdersCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Status progression job failed", "error", err)
		return 0
	}

	advanced, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Status progression job failed", "error", err, "advanced", advanced)
		return advanced
	}
	if advanced > 0 {
		j.logger.DebugContext(ctx, "Orders advanced", "count", advanced)
	}
	return advanced
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *StatusProgressionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status progression job stopped")
}

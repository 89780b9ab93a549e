package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule purges archived orders once a minute.
const DefaultPurgeSchedule = "0 * * * * *"

// ArchivedOrderPurgeJob drops archived orders from the registry.
type ArchivedOrderPurgeJob struct {
	handler  commands.PurgeArchivedOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewArchivedOrderPurgeJob(
	handler commands.PurgeArchivedOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ArchivedOrderPurgeJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}
	return &ArchivedOrderPurgeJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "archived_order_purge_job"),
	}
}

func (j *ArchivedOrderPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archived order purge job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single purge and returns how many orders were removed.
func (j *ArchivedOrderPurgeJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewPurgeArchivedOrdersCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Archived order purge job failed", "error", err)
		return 0
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archived order purge job failed", "error", err)
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Archived orders purged", "count", removed)
	}
	return removed
}

func (j *ArchivedOrderPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Archived order purge job stopped")
}

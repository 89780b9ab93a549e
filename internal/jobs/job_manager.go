package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
)

// Schedules holds the cron expressions of every job; empty fields use the defaults.
type Schedules struct {
	Progression string
	Purge       string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusProgressionJob  *StatusProgressionJob
	archivedOrderPurgeJob *ArchivedOrderPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	advanceOrdersHandler commands.AdvanceOrdersCommandHandler,
	purgeArchivedOrdersHandler commands.PurgeArchivedOrdersCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusProgressionJob:  NewStatusProgressionJob(advanceOrdersHandler, schedules.Progression, logger),
		archivedOrderPurgeJob: NewArchivedOrderPurgeJob(purgeArchivedOrdersHandler, schedules.Purge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusProgressionJob.Start(); err != nil {
		return fmt.Errorf("failed to start status progression job: %w", err)
	}

	if err := jm.archivedOrderPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.statusProgressionJob.Stop()
		return fmt.Errorf("failed to start archived order purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusProgressionJob.Stop()
	jm.archivedOrderPurgeJob.Stop()
}

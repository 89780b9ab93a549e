// Package jobs provides scheduled background tasks for the order flow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// 1. StatusProgressionJob - advances every live order one step along its lifecycle
// (CREATED -> ACCEPTED -> IN_PREPARATION -> OUT_FOR_DELIVERY -> DELIVERED -> ARCHIVED,
// or the Spanish equivalent). Every step is a regular status change, so observers are
// notified.
// 2. ArchivedOrderPurgeJob - removes archived orders from the registry.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(advanceHandler, purgeHandler, jobs.Schedules{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and keep running; a failing order does not stop the others.
package jobs

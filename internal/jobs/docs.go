// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OpenOrdersWatchJob - Runs every minute to report how many orders are still open
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOrdersByStatusHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The watch job uses the cron expression "0 * * * * *" which means it runs at
// the start of every minute. Closing orders is driven by external systems, so
// a minute of staleness in the reported count is acceptable.
//
// # Error Handling
//
// The watch job logs every error; a failing read here indicates a storage
// problem rather than an expected business scenario.
package jobs

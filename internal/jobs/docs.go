// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path does not cover.
//
// # Available Jobs
//
// 1. StatusReconciliationJob - Runs every five minutes to re-derive each
// shipment's status from its full tracking event history.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(shipmentsQueryHandler, recalculateHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reconciliation treats each shipment independently: a failure on one
// shipment is logged and the loop moves on, so a single bad row cannot stall
// the whole sweep.
package jobs

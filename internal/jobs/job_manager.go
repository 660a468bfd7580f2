package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusReconciliationJob *StatusReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	shipments queries.GetShipmentsQueryHandler,
	recalculate *commands.RecalculateShipmentStatusCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusReconciliationJob: NewStatusReconciliationJob(shipments, recalculate, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start status reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusReconciliationJob.Stop()
}

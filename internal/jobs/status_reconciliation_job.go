package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusReconciliationJob periodically re-derives every shipment's status
// from its tracking history. It repairs drift left behind by direct edits or
// removed events.
type StatusReconciliationJob struct {
	shipments   queries.GetShipmentsQueryHandler
	recalculate *commands.RecalculateShipmentStatusCommandHandler
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStatusReconciliationJob creates the reconciliation job. The shipments
// query handler enumerates shipments; the recalculate handler re-derives each
// status inside its own transaction.
func NewStatusReconciliationJob(
	shipments queries.GetShipmentsQueryHandler,
	recalculate *commands.RecalculateShipmentStatusCommandHandler,
	logger *slog.Logger,
) *StatusReconciliationJob {
	return &StatusReconciliationJob{
		shipments:   shipments,
		recalculate: recalculate,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "status_reconciliation_job"),
	}
}

// Start schedules the job to run every five minutes.
func (j *StatusReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status reconciliation job started (running every five minutes)")
	return nil
}

// Stop stops the job.
func (j *StatusReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status reconciliation job stopped")
}

func (j *StatusReconciliationJob) run(ctx context.Context) {
	shipments, err := j.shipments.Handle(ctx, queries.NewGetShipmentsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status reconciliation job failed to list shipments", "error", err)
		return
	}

	for _, s := range shipments {
		cmd, err := commands.NewRecalculateShipmentStatusCommand(s.ID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status reconciliation job built an invalid command",
				"shipment_id", s.ID.Int64(), "error", err)
			continue
		}

		if err := j.recalculate.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Status reconciliation failed for shipment",
				"shipment_id", s.ID.Int64(), "error", err)
		}
	}
}

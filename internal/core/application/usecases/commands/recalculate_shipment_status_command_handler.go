package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// RecalculateShipmentStatusCommandHandler re-derives a shipment's status
// from the most recent event in its tracking log: the derivation rule
// applied to that event, or pending when the log is empty. Used after event
// removal and by the periodic reconciliation job.
type RecalculateShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	calculator services.StatusCalculator
}

// NewRecalculateShipmentStatusCommandHandler creates a handler for status
// recalculation.
func NewRecalculateShipmentStatusCommandHandler(
	uowFactory UoWFactory,
	calculator services.StatusCalculator,
) RecalculateShipmentStatusCommandHandler {
	return RecalculateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the recalculation command.
func (h *RecalculateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd RecalculateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := recalculateShipmentStatus(ctx, uow, h.calculator, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recalculateShipmentStatus loads the most recent event of the shipment's
// log, derives the implied status and persists it when it differs from the
// stored one. Shared between event removal and explicit recalculation.
func recalculateShipmentStatus(
	ctx context.Context,
	repos RepoFactory,
	calculator services.StatusCalculator,
	shipmentID kernel.ID,
) error {
	aggregate, err := repos.ShipmentRepository().Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	latest, err := repos.TrackingEventRepository().GetLatestByShipment(ctx, shipmentID)
	if err != nil {
		return err
	}

	newStatus, err := calculator.DeriveFromLatest(latest)
	if err != nil {
		return err
	}

	if aggregate.Status() == newStatus {
		return nil
	}

	if err = aggregate.ChangeStatus(newStatus); err != nil {
		return err
	}
	return repos.ShipmentRepository().Update(ctx, aggregate)
}

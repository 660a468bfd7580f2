package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// RemoveTrackingEventCommandHandler deletes a tracking event and re-derives
// the owning shipment's status from the event that is now the most recent
// one. A shipment whose last event was removed reverts to pending. Deletion
// and recalculation run in one transaction.
type RemoveTrackingEventCommandHandler struct {
	uowFactory UoWFactory
	calculator services.StatusCalculator
}

// NewRemoveTrackingEventCommandHandler creates a handler for tracking event
// removal.
func NewRemoveTrackingEventCommandHandler(
	uowFactory UoWFactory,
	calculator services.StatusCalculator,
) RemoveTrackingEventCommandHandler {
	return RemoveTrackingEventCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the event removal command.
func (h *RemoveTrackingEventCommandHandler) Handle(ctx context.Context, cmd RemoveTrackingEventCommand) error {
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

	eventRepo := uow.TrackingEventRepository()

	event, err := eventRepo.Get(ctx, cmd.EventID())
	if err != nil {
		return err
	}

	if err = eventRepo.Delete(ctx, cmd.EventID()); err != nil {
		return err
	}

	if err = recalculateShipmentStatus(ctx, uow, h.calculator, event.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// DeleteShipmentItemCommandHandler removes a line item and recomputes the
// owning shipment's totals in the same transaction. A shipment left without
// items ends up with zero totals.
type DeleteShipmentItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteShipmentItemCommandHandler creates a handler for item deletion.
func NewDeleteShipmentItemCommandHandler(uowFactory UoWFactory) DeleteShipmentItemCommandHandler {
	return DeleteShipmentItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item deletion command.
func (h *DeleteShipmentItemCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentItemCommand) error {
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

	itemRepo := uow.ShipmentItemRepository()

	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = itemRepo.Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err = refreshShipmentTotals(ctx, uow, item.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

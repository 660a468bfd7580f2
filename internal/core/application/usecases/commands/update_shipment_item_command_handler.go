package commands

import (
	"context"
)

// UpdateShipmentItemCommandHandler overwrites a line item and recomputes the
// affected shipment totals. When the update moves the item to a different
// shipment, both the previous and the new owner are refreshed, leaving the
// totals invariant intact on both sides.
type UpdateShipmentItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateShipmentItemCommandHandler creates a handler for item updates.
func NewUpdateShipmentItemCommandHandler(uowFactory UoWFactory) UpdateShipmentItemCommandHandler {
	return UpdateShipmentItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
func (h *UpdateShipmentItemCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentItemCommand) error {
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

	previousShipmentID := item.ShipmentID()

	if err = item.Update(
		cmd.ShipmentID(),
		cmd.Description(),
		cmd.Quantity(),
		cmd.Weight(),
		cmd.Volume(),
		cmd.ItemValue(),
		cmd.IsHazardous(),
		cmd.IsFragile(),
	); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = refreshShipmentTotals(ctx, uow, cmd.ShipmentID()); err != nil {
		return err
	}
	if !previousShipmentID.IsEqual(cmd.ShipmentID()) {
		if err = refreshShipmentTotals(ctx, uow, previousShipmentID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

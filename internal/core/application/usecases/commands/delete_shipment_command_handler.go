package commands

import (
	"context"
)

// DeleteShipmentCommandHandler removes a shipment unconditionally.
//
// The assigned vehicle and driver keep their in_use/assigned status; nothing
// releases them automatically. Whether deletion should return resources to
// the pool is an open product question, so the current behavior deliberately
// leaves them untouched.
type DeleteShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory UoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment deletion command.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	// Existence check keeps the endpoint's 404 semantics.
	if _, err := shipmentRepo.Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := shipmentRepo.Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

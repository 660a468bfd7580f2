package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// CreateShipmentItemCommandHandler attaches a line item to a shipment and
// recomputes the owning shipment's totals, all in one transaction.
type CreateShipmentItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateShipmentItemCommandHandler creates a handler for item creation.
func NewCreateShipmentItemCommandHandler(uowFactory UoWFactory) CreateShipmentItemCommandHandler {
	return CreateShipmentItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command and returns the generated item
// identifier.
func (h *CreateShipmentItemCommandHandler) Handle(ctx context.Context, cmd CreateShipmentItemCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The owning shipment must exist before the insert.
	if _, err := uow.ShipmentRepository().Get(ctx, cmd.Item().ShipmentID()); err != nil {
		return kernel.ID{}, err
	}

	itemID, err := uow.ShipmentItemRepository().Add(ctx, cmd.Item())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = refreshShipmentTotals(ctx, uow, cmd.Item().ShipmentID()); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return itemID, nil
}

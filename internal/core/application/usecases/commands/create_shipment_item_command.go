package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentItemCommandIsNotConstructed = errors.New(
	"CreateShipmentItemCommand must be created via NewCreateShipmentItemCommand constructor",
)

// CreateShipmentItemCommand represents a request to attach a line item to a
// shipment.
type CreateShipmentItemCommand struct { //nolint:recvcheck //using for validation
	item *shipment.Item

	guard guard.ConstructorGuard
}

// NewCreateShipmentItemCommand creates a command to attach a line item.
// Field validation is delegated to the Item factory, so the command carries
// an already-valid domain object.
func NewCreateShipmentItemCommand(
	shipmentID kernel.ID,
	description string,
	quantity int,
	weight float64,
	volume float64,
	itemValue float64,
	isHazardous bool,
	isFragile bool,
) (CreateShipmentItemCommand, error) {
	item, err := shipment.NewItem(shipmentID, description, quantity, weight, volume, itemValue, isHazardous, isFragile)
	if err != nil {
		return CreateShipmentItemCommand{}, err
	}

	return CreateShipmentItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentItemCommandIsNotConstructed)
}

// Item returns the validated line item to persist.
func (c CreateShipmentItemCommand) Item() *shipment.Item {
	return c.item
}

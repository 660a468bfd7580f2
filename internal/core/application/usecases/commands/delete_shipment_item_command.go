package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentItemCommandIsNotConstructed = errors.New(
	"DeleteShipmentItemCommand must be created via NewDeleteShipmentItemCommand constructor",
)

// DeleteShipmentItemCommand represents a request to detach a line item.
type DeleteShipmentItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentItemCommand creates a command to remove a line item by
// its identifier.
func NewDeleteShipmentItemCommand(itemID kernel.ID) (DeleteShipmentItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteShipmentItemCommand{}, err
	}

	return DeleteShipmentItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to remove.
func (c DeleteShipmentItemCommand) ItemID() kernel.ID {
	return c.itemID
}

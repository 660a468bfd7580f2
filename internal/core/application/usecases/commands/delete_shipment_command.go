package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to remove a shipment.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to remove a shipment by its
// identifier.
func NewDeleteShipmentCommand(shipmentID kernel.ID) (DeleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to remove.
func (c DeleteShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

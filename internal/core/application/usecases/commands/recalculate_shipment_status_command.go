package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRecalculateShipmentStatusCommandIsNotConstructed = errors.New(
	"RecalculateShipmentStatusCommand must be created via NewRecalculateShipmentStatusCommand constructor",
)

// RecalculateShipmentStatusCommand represents a request to re-derive a
// shipment's status from its tracking log instead of trusting the stored
// value.
type RecalculateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewRecalculateShipmentStatusCommand creates a command to re-derive a
// shipment's status.
func NewRecalculateShipmentStatusCommand(shipmentID kernel.ID) (RecalculateShipmentStatusCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return RecalculateShipmentStatusCommand{}, err
	}

	return RecalculateShipmentStatusCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to recalculate.
func (c RecalculateShipmentStatusCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a full replacement of a shipment's
// mutable fields. The client sends the complete new state; there are no
// partial-update semantics on this path.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.ID
	customerID    kernel.ID
	originID      kernel.ID
	destinationID kernel.ID
	status        shipment.Status
	totals        shipment.Totals
	details       shipment.Details

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to overwrite a shipment's
// mutable fields.
func NewUpdateShipmentCommand(
	shipmentID kernel.ID,
	customerID kernel.ID,
	originID kernel.ID,
	destinationID kernel.ID,
	status shipment.Status,
	totals shipment.Totals,
	details shipment.Details,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		customerID.Validate(),
		originID.Validate(),
		destinationID.Validate(),
		status.Validate(),
		totals.Validate(),
		details.Validate(),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	cmd.shipmentID = shipmentID
	cmd.customerID = customerID
	cmd.originID = originID
	cmd.destinationID = destinationID
	cmd.status = status
	cmd.totals = totals
	cmd.details = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

// CustomerID returns the new owning customer's identifier.
func (c UpdateShipmentCommand) CustomerID() kernel.ID {
	return c.customerID
}

// OriginID returns the new pickup location's identifier.
func (c UpdateShipmentCommand) OriginID() kernel.ID {
	return c.originID
}

// DestinationID returns the new delivery location's identifier.
func (c UpdateShipmentCommand) DestinationID() kernel.ID {
	return c.destinationID
}

// Status returns the new lifecycle state.
func (c UpdateShipmentCommand) Status() shipment.Status {
	return c.status
}

// Totals returns the new sums.
func (c UpdateShipmentCommand) Totals() shipment.Totals {
	return c.totals
}

// Details returns the new optional attributes.
func (c UpdateShipmentCommand) Details() shipment.Details {
	return c.details
}

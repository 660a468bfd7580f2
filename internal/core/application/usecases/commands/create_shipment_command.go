package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Carries the unique tracking number, the required party and location
// references, the initial status and totals, and the optional details
// (route, vehicle, driver, insurance, instructions, dates).
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(
//	    "TRK-2025-0001", customerID, originID, destinationID,
//	    shipment.StatusPending, shipment.Totals{}, shipment.Details{},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, calculator, adminUserID)
//	shipmentID, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	customerID     kernel.ID
	originID       kernel.ID
	destinationID  kernel.ID
	status         shipment.Status
	totals         shipment.Totals
	details        shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates the tracking number, all references, the status, the totals and
// the optional details. Returns an error joining every violation.
func NewCreateShipmentCommand(
	trackingNumber string,
	customerID kernel.ID,
	originID kernel.ID,
	destinationID kernel.ID,
	status shipment.Status,
	totals shipment.Totals,
	details shipment.Details,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setReferences(customerID, originID, destinationID),
		cmd.setStatus(status),
		cmd.setTotals(totals),
		cmd.setDetails(details),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// TrackingNumber returns the unique business key of the new shipment.
func (c CreateShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

// CustomerID returns the owning customer's identifier.
func (c CreateShipmentCommand) CustomerID() kernel.ID {
	return c.customerID
}

// OriginID returns the identifier of the pickup location.
func (c CreateShipmentCommand) OriginID() kernel.ID {
	return c.originID
}

// DestinationID returns the identifier of the delivery location.
func (c CreateShipmentCommand) DestinationID() kernel.ID {
	return c.destinationID
}

// Status returns the initial lifecycle state.
func (c CreateShipmentCommand) Status() shipment.Status {
	return c.status
}

// Totals returns the initial sums.
func (c CreateShipmentCommand) Totals() shipment.Totals {
	return c.totals
}

// Details returns the optional attributes.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateShipmentCommand) setReferences(customerID, originID, destinationID kernel.ID) error {
	if err := errors.Join(
		customerID.Validate(),
		originID.Validate(),
		destinationID.Validate(),
	); err != nil {
		return err
	}
	c.customerID = customerID
	c.originID = originID
	c.destinationID = destinationID
	return nil
}

func (c *CreateShipmentCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateShipmentCommand) setTotals(totals shipment.Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	c.totals = totals
	return nil
}

func (c *CreateShipmentCommand) setDetails(details shipment.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}

package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// RecordTrackingEventCommand represents a request to append a tracking event
// to a shipment's log. recordedBy is optional: when nil, the handler records
// the event under the admin sentinel user.
//
// Example:
//
//	cmd, err := NewRecordTrackingEventCommand(
//	    shipmentID, tracking.EventArrival, locationID, nil, "reached hub",
//	)
//	if err != nil {
//	    return err
//	}
//	eventID, err := handler.Handle(ctx, cmd)
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	eventType  tracking.EventType
	locationID kernel.ID
	recordedBy *kernel.ID
	notes      string

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command to append a tracking
// event.
func NewRecordTrackingEventCommand(
	shipmentID kernel.ID,
	eventType tracking.EventType,
	locationID kernel.ID,
	recordedBy *kernel.ID,
	notes string,
) (RecordTrackingEventCommand, error) {
	var violations []error

	if err := shipmentID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := eventType.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := locationID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if recordedBy != nil {
		if err := recordedBy.Validate(); err != nil {
			violations = append(violations, err)
		}
	}
	if err := errors.Join(violations...); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	return RecordTrackingEventCommand{
		shipmentID: shipmentID,
		eventType:  eventType,
		locationID: locationID,
		recordedBy: recordedBy,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being tracked.
func (c RecordTrackingEventCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

// EventType returns the kind of state change to record.
func (c RecordTrackingEventCommand) EventType() tracking.EventType {
	return c.eventType
}

// LocationID returns the identifier of the location where the change
// occurred.
func (c RecordTrackingEventCommand) LocationID() kernel.ID {
	return c.locationID
}

// RecordedBy returns the recording user's identifier, or nil when the admin
// sentinel should be used.
func (c RecordTrackingEventCommand) RecordedBy() *kernel.ID {
	return c.recordedBy
}

// Notes returns the optional free-form remark.
func (c RecordTrackingEventCommand) Notes() string {
	return c.notes
}

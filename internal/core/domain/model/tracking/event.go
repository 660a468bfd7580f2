package tracking

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not created
	// through the NewEvent or RestoreEvent factory methods.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")
)

// Event is an immutable, timestamped record of a shipment's physical-world
// state change. Events form an append-only log per shipment: there is no
// update operation, and deleting one obliges the caller to re-derive the
// shipment's status from the remaining most-recent event.
//
// The timestamp is server-assigned at creation and is the sole ordering
// criterion of the log. The recording user defaults to the admin sentinel
// when the client does not identify an actor; that defaulting happens in the
// application layer, so the aggregate always requires a valid recorder.
type Event struct {
	// id is the database-assigned identifier (zero until persisted)
	id kernel.ID

	// shipmentID references the shipment this event belongs to
	shipmentID kernel.ID

	eventType  EventType
	locationID kernel.ID

	// timestamp orders the event within the shipment's log
	timestamp time.Time

	// recordedBy identifies the user who recorded the event
	recordedBy kernel.ID

	notes string

	isConstructed bool
}

// NewEvent creates a new Event that has not been persisted yet.
// The timestamp is assigned by the server at the moment of creation.
func NewEvent(
	shipmentID kernel.ID,
	eventType EventType,
	locationID kernel.ID,
	recordedBy kernel.ID,
	notes string,
) (*Event, error) {
	event := &Event{
		timestamp:     time.Now().UTC(),
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		event.setShipmentID(shipmentID),
		event.setEventType(eventType),
		event.setLocationID(locationID),
		event.setRecordedBy(recordedBy),
	); err != nil {
		return nil, err
	}

	return event, nil
}

// RestoreEvent reconstructs an Event from persistence, including its
// database-assigned identifier and original timestamp.
func RestoreEvent(
	id kernel.ID,
	shipmentID kernel.ID,
	eventType EventType,
	locationID kernel.ID,
	recordedBy kernel.ID,
	notes string,
	timestamp time.Time,
) (*Event, error) {
	event, err := NewEvent(shipmentID, eventType, locationID, recordedBy, notes)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	event.id = id
	event.timestamp = timestamp
	return event, nil
}

// Validate ensures the Event instance was properly constructed through a
// factory method.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the database-assigned identifier.
// The zero value indicates the event has not been persisted yet.
func (e *Event) ID() kernel.ID {
	return e.id
}

// ShipmentID returns the identifier of the shipment the event belongs to.
func (e *Event) ShipmentID() kernel.ID {
	return e.shipmentID
}

// Type returns the kind of state change the event records.
func (e *Event) Type() EventType {
	return e.eventType
}

// LocationID returns the identifier of the location where the event occurred.
func (e *Event) LocationID() kernel.ID {
	return e.locationID
}

// Timestamp returns the server-assigned occurrence time.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

// RecordedBy returns the identifier of the user who recorded the event.
func (e *Event) RecordedBy() kernel.ID {
	return e.recordedBy
}

// Notes returns the optional free-form remark attached to the event.
func (e *Event) Notes() string {
	return e.notes
}

func (e *Event) setShipmentID(shipmentID kernel.ID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *Event) setLocationID(locationID kernel.ID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	e.locationID = locationID
	return nil
}

func (e *Event) setRecordedBy(recordedBy kernel.ID) error {
	if err := recordedBy.Validate(); err != nil {
		return err
	}
	e.recordedBy = recordedBy
	return nil
}

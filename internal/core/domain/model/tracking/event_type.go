package tracking

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// EventType classifies a tracking event: the kind of physical-world state
// change it records. The type drives the shipment status derivation, which
// lives in the services package.
//
// EventType is a value object stored as its lowercase string representation.
type EventType string

const (
	// EventPickup records collection of the shipment at its origin.
	EventPickup EventType = "pickup"

	// EventDeparture records the shipment leaving a location.
	EventDeparture EventType = "departure"

	// EventArrival records the shipment reaching an intermediate location.
	EventArrival EventType = "arrival"

	// EventDelivery records handover at the destination.
	EventDelivery EventType = "delivery"

	// EventIssue records a problem encountered in transit.
	EventIssue EventType = "issue"

	// EventDelay records a schedule slip.
	EventDelay EventType = "delay"
)

func getValidEventTypes() map[EventType]struct{} {
	return map[EventType]struct{}{
		EventPickup:    {},
		EventDeparture: {},
		EventArrival:   {},
		EventDelivery:  {},
		EventIssue:     {},
		EventDelay:     {},
	}
}

// NewEventTypeFromString parses an event type from its string representation.
// Returns an error if the string does not name a known event type.
func NewEventTypeFromString(s string) (EventType, error) {
	eventType := EventType(s)
	if err := eventType.Validate(); err != nil {
		return "", err
	}
	return eventType, nil
}

// Validate checks if the EventType is one of the known kinds.
func (e EventType) Validate() error {
	if _, ok := getValidEventTypes()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event_type",
			fmt.Errorf("%q is not a valid tracking event type", string(e)))
	}
	return nil
}

// String returns the lowercase string representation of the event type.
// This method implements the fmt.Stringer interface.
func (e EventType) String() string {
	return string(e)
}

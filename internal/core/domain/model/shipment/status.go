package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// Unlike a strict state machine, shipment status is derived from the most
// recent tracking event and is overwritten unconditionally: recording a
// departure event for a delivered shipment moves it back to in_transit.
// This permissiveness is deliberate — the tracking log is the source of
// truth and the status field is a projection of it.
//
// Status is a value object stored as its lowercase string representation.
type Status string

const (
	// StatusPending is the initial status of a shipment with no tracking
	// events recorded yet.
	StatusPending Status = "pending"

	// StatusPickedUp indicates the shipment has been collected at its origin.
	StatusPickedUp Status = "picked_up"

	// StatusInTransit indicates the shipment is moving between locations.
	StatusInTransit Status = "in_transit"

	// StatusDelivered indicates the shipment has reached its destination.
	StatusDelivered Status = "delivered"

	// StatusReturned indicates the shipment was sent back to its origin.
	StatusReturned Status = "returned"
)

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusPickedUp:  {},
		StatusInTransit: {},
		StatusDelivered: {},
		StatusReturned:  {},
	}
}

// NewStatusFromString parses a status from its string representation.
// Returns an error if the string does not name a known status.
//
// This function is used when reconstructing shipments from persistence and
// when accepting status values from clients.
func NewStatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid shipment status", string(s)))
	}
	return nil
}

// String returns the lowercase string representation of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

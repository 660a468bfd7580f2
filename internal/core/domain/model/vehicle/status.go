package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status reflects a vehicle's availability. It is not self-managed: the
// shipment core writes it as a side effect of assigning or unassigning the
// vehicle, except for maintenance which is set through plain vehicle updates.
type Status string

const (
	// StatusAvailable means the vehicle can be assigned to a shipment.
	StatusAvailable Status = "available"

	// StatusInUse means a shipment currently references the vehicle.
	StatusInUse Status = "in_use"

	// StatusMaintenance means the vehicle is out of service.
	StatusMaintenance Status = "maintenance"
)

// NewStatusFromString parses a vehicle status from its string representation.
func NewStatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid vehicle status", string(s)))
	}
}

// String returns the lowercase string representation of the status.
func (s Status) String() string {
	return string(s)
}

package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not created
	// through the NewDriver or RestoreDriver factory methods.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// Status reflects a driver's availability. Like vehicle status it is written
// by the shipment core as a side effect of assignment.
type Status string

const (
	// StatusAvailable means the driver can be assigned to a shipment.
	StatusAvailable Status = "available"

	// StatusAssigned means a shipment currently references the driver.
	StatusAssigned Status = "assigned"
)

// NewStatusFromString parses a driver status from its string representation.
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
	case StatusAvailable, StatusAssigned:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid driver status", string(s)))
	}
}

// String returns the lowercase string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Driver is the professional specialization of a user account: a 1:1
// extension row keyed on the user identifier, carrying licensing data and an
// availability status the shipment core controls.
//
// Creating a driver creates the user and driver rows as a unit, and deleting
// one removes both; that pairing is orchestrated in the application layer.
// Deleting a driver referenced by a shipment must fail with a
// resource-in-use error.
type Driver struct {
	// id is the database-assigned identifier (zero until persisted)
	id kernel.ID

	// userID references the wrapped user account
	userID kernel.ID

	licenseNumber         string
	licenseExpiry         *time.Time
	medicalCheckDate      *time.Time
	trainingCertification string

	status Status

	isConstructed bool
}

// NewDriver creates a new Driver that has not been persisted yet.
func NewDriver(
	userID kernel.ID,
	licenseNumber string,
	licenseExpiry *time.Time,
	medicalCheckDate *time.Time,
	trainingCertification string,
	status Status,
) (*Driver, error) {
	d := &Driver{
		licenseExpiry:         licenseExpiry,
		medicalCheckDate:      medicalCheckDate,
		trainingCertification: trainingCertification,
		isConstructed:         true,
	}

	if err := errors.Join(
		d.setUserID(userID),
		d.setLicenseNumber(licenseNumber),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(
	id kernel.ID,
	userID kernel.ID,
	licenseNumber string,
	licenseExpiry *time.Time,
	medicalCheckDate *time.Time,
	trainingCertification string,
	status Status,
) (*Driver, error) {
	d, err := NewDriver(userID, licenseNumber, licenseExpiry, medicalCheckDate, trainingCertification, status)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the Driver was properly constructed through a factory
// method.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the database-assigned identifier.
func (d *Driver) ID() kernel.ID {
	return d.id
}

// UserID returns the identifier of the wrapped user account.
func (d *Driver) UserID() kernel.ID {
	return d.userID
}

// LicenseNumber returns the driving license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// LicenseExpiry returns the license expiry date, or nil when unknown.
func (d *Driver) LicenseExpiry() *time.Time {
	return d.licenseExpiry
}

// MedicalCheckDate returns the date of the last medical check, or nil.
func (d *Driver) MedicalCheckDate() *time.Time {
	return d.medicalCheckDate
}

// TrainingCertification returns the certification label, possibly empty.
func (d *Driver) TrainingCertification() string {
	return d.trainingCertification
}

// Status returns the current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// MarkAssigned sets the availability status to assigned. Called by the
// shipment core when a shipment is assigned to this driver.
func (d *Driver) MarkAssigned() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.status = StatusAssigned
	return nil
}

// Release sets the availability status back to available.
func (d *Driver) Release() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.status = StatusAvailable
	return nil
}

func (d *Driver) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	d.userID = userID
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if strings.TrimSpace(licenseNumber) == "" {
		return errs.NewValueIsRequiredError("license_number")
	}
	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

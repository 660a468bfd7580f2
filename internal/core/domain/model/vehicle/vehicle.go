package vehicle

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
	// through the NewVehicle or RestoreVehicle factory methods.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")
)

// Vehicle is a shared transport resource from the resource pool. Its status
// field is written by the shipment core when shipments are assigned or
// reassigned; standalone CRUD exists but carries no invariant beyond the
// uniqueness of the license plate.
//
// Deleting a vehicle that is still referenced by a shipment must fail with a
// resource-in-use error; that check lives in the application layer because it
// spans aggregates.
type Vehicle struct {
	// id is the database-assigned identifier (zero until persisted)
	id kernel.ID

	// licensePlate is the unique business key
	licensePlate string

	make        string
	model       string
	year        int
	capacityKg  float64
	vehicleType string

	status Status

	// currentLocationID is the last known position (nil when unknown)
	currentLocationID *kernel.ID

	lastInspectionDate *time.Time

	isConstructed bool
}

// NewVehicle creates a new Vehicle that has not been persisted yet.
// Status defaults are a concern of the caller; pass StatusAvailable for
// freshly registered vehicles.
func NewVehicle(
	licensePlate string,
	make string,
	model string,
	year int,
	capacityKg float64,
	vehicleType string,
	status Status,
	currentLocationID *kernel.ID,
	lastInspectionDate *time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		make:               make,
		model:              model,
		vehicleType:        vehicleType,
		lastInspectionDate: lastInspectionDate,
		isConstructed:      true,
	}

	if err := errors.Join(
		v.setLicensePlate(licensePlate),
		v.setYear(year),
		v.setCapacity(capacityKg),
		v.setStatus(status),
		v.setCurrentLocation(currentLocationID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(
	id kernel.ID,
	licensePlate string,
	make string,
	model string,
	year int,
	capacityKg float64,
	vehicleType string,
	status Status,
	currentLocationID *kernel.ID,
	lastInspectionDate *time.Time,
) (*Vehicle, error) {
	v, err := NewVehicle(licensePlate, make, model, year, capacityKg, vehicleType, status, currentLocationID, lastInspectionDate)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	v.id = id
	return v, nil
}

// Validate ensures the Vehicle was properly constructed through a factory
// method.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the database-assigned identifier.
func (v *Vehicle) ID() kernel.ID {
	return v.id
}

// LicensePlate returns the unique business key.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// Make returns the manufacturer name.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() float64 {
	return v.capacityKg
}

// VehicleType returns the free-form type classification (e.g. "truck").
func (v *Vehicle) VehicleType() string {
	return v.vehicleType
}

// Status returns the current availability status.
func (v *Vehicle) Status() Status {
	return v.status
}

// CurrentLocationID returns the last known position, or nil when unknown.
func (v *Vehicle) CurrentLocationID() *kernel.ID {
	return v.currentLocationID
}

// LastInspectionDate returns the date of the most recent inspection, or nil.
func (v *Vehicle) LastInspectionDate() *time.Time {
	return v.lastInspectionDate
}

// MarkInUse sets the availability status to in_use. Called by the shipment
// core when a shipment is assigned to this vehicle.
func (v *Vehicle) MarkInUse() error {
	if err := v.Validate(); err != nil {
		return err
	}
	v.status = StatusInUse
	return nil
}

// Release sets the availability status back to available. Called by the
// shipment core when a shipment update moves to a different vehicle.
func (v *Vehicle) Release() error {
	if err := v.Validate(); err != nil {
		return err
	}
	v.status = StatusAvailable
	return nil
}

func (v *Vehicle) setLicensePlate(licensePlate string) error {
	if strings.TrimSpace(licensePlate) == "" {
		return errs.NewValueIsRequiredError("license_plate")
	}
	v.licensePlate = licensePlate
	return nil
}

func (v *Vehicle) setYear(year int) error {
	if year < 0 {
		return errs.NewValueIsOutOfRangeError("year", year, 0, "+inf")
	}
	v.year = year
	return nil
}

func (v *Vehicle) setCapacity(capacityKg float64) error {
	if capacityKg < 0 {
		return errs.NewValueIsOutOfRangeError("capacity_kg", capacityKg, 0, "+inf")
	}
	v.capacityKg = capacityKg
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Vehicle) setCurrentLocation(locationID *kernel.ID) error {
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}
	v.currentLocationID = locationID
	return nil
}

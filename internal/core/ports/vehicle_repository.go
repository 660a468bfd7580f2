package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the vehicle side of
// the resource pool.
type VehicleRepository interface {
	// Add persists a new vehicle and returns its generated identifier.
	// Fails with a duplicate-key error when the license plate is taken.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) (kernel.ID, error)

	// Get retrieves a vehicle by its identifier.
	Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)

	// ExistsByLicensePlate reports whether any vehicle carries the given
	// license plate.
	ExistsByLicensePlate(ctx context.Context, licensePlate string) (bool, error)

	// SetStatus overwrites the availability status. Called by the shipment
	// core when assignments change; not part of plain vehicle updates.
	SetStatus(ctx context.Context, id kernel.ID, status vehicle.Status) error

	// UpdateFields applies a partial update: only the listed columns are
	// overwritten, everything else stays untouched. The implementation
	// validates the field names against a fixed allow-list.
	UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error

	// Delete removes a vehicle by its identifier.
	Delete(ctx context.Context, id kernel.ID) error

	// CountByLocation returns the number of vehicles positioned at the
	// location. Used by the referential guard on location deletion.
	CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error)
}

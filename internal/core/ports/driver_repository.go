package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for the driver side of
// the resource pool. The wrapped user row is managed by the UserRepository;
// commands delete both inside one transaction.
type DriverRepository interface {
	// Add persists a new driver and returns its generated identifier.
	Add(ctx context.Context, aggregate *driver.Driver) (kernel.ID, error)

	// Get retrieves a driver by its identifier.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// SetStatus overwrites the availability status. Called by the shipment
	// core when assignments change.
	SetStatus(ctx context.Context, id kernel.ID, status driver.Status) error

	// UpdateFields applies a partial update against an allow-list of columns.
	UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error

	// Delete removes a driver by its identifier.
	Delete(ctx context.Context, id kernel.ID) error
}

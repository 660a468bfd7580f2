package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	// Add persists a new warehouse and returns its generated identifier.
	Add(ctx context.Context, wh *warehouse.Warehouse) (kernel.ID, error)

	// Get retrieves a warehouse by its identifier.
	Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error)

	// ExistsByLocation reports whether the location already hosts a
	// warehouse. At most one warehouse may exist per location.
	ExistsByLocation(ctx context.Context, locationID kernel.ID) (bool, error)

	// UpdateFields applies a partial update against an allow-list of columns.
	UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error

	// Delete removes a warehouse by its identifier.
	Delete(ctx context.Context, id kernel.ID) error

	// CountByLocation returns the number of warehouses at the location.
	// Used by the referential guard on location deletion.
	CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error)
}

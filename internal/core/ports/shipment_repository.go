package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Identifiers are assigned by the store, so Add reports the
// generated key back to the caller.
type ShipmentRepository interface {
	// Add persists a new shipment and returns its generated identifier.
	// Fails with a duplicate-key error when the tracking number is taken.
	Add(ctx context.Context, aggregate *shipment.Shipment) (kernel.ID, error)

	// Get retrieves a shipment by its identifier.
	// Returns an object-not-found error when no such shipment exists.
	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// ExistsByTrackingNumber reports whether any shipment carries the given
	// tracking number. Used by the strict creation flow to fail before
	// inserting.
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Delete removes a shipment by its identifier.
	Delete(ctx context.Context, id kernel.ID) error

	// CountByVehicle returns the number of shipments referencing the vehicle.
	// Used by the resource-in-use guard on vehicle deletion.
	CountByVehicle(ctx context.Context, vehicleID kernel.ID) (int64, error)

	// CountByDriver returns the number of shipments referencing the driver.
	CountByDriver(ctx context.Context, driverID kernel.ID) (int64, error)

	// CountByCustomer returns the number of shipments owned by the customer.
	CountByCustomer(ctx context.Context, customerID kernel.ID) (int64, error)

	// CountByRoute returns the number of shipments planned over the route.
	CountByRoute(ctx context.Context, routeID kernel.ID) (int64, error)

	// CountByLocation returns the number of shipments whose origin or
	// destination is the given location.
	CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error)
}

// ShipmentItemRepository defines the persistence contract for shipment line
// items.
type ShipmentItemRepository interface {
	// Add persists a new item and returns its generated identifier.
	Add(ctx context.Context, item *shipment.Item) (kernel.ID, error)

	// Get retrieves an item by its identifier.
	Get(ctx context.Context, id kernel.ID) (*shipment.Item, error)

	// GetByShipment retrieves all items owned by the given shipment.
	// Feeds the totals recomputation.
	GetByShipment(ctx context.Context, shipmentID kernel.ID) ([]*shipment.Item, error)

	// Update persists changes to an existing item, including a change of the
	// owning shipment.
	Update(ctx context.Context, item *shipment.Item) error

	// Delete removes an item by its identifier.
	Delete(ctx context.Context, id kernel.ID) error
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle: every multi-table mutation commits on success and rolls back on
// any error, leaving no partial state.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// ShipmentItemRepository returns a ShipmentItemRepository bound to the
	// current transaction.
	ShipmentItemRepository() ShipmentItemRepository

	// TrackingEventRepository returns a TrackingEventRepository bound to the
	// current transaction.
	TrackingEventRepository() TrackingEventRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction.
	CustomerRepository() CustomerRepository

	// LocationRepository returns a LocationRepository bound to the current
	// transaction.
	LocationRepository() LocationRepository

	// WarehouseRepository returns a WarehouseRepository bound to the current
	// transaction.
	WarehouseRepository() WarehouseRepository

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository
}

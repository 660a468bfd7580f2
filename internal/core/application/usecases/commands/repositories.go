// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RepoFactory provides access to every repository within a transaction.
	// The shipment core routinely spans aggregates (shipment plus resource
	// pool plus tracking log), so a single wide factory serves all handlers
	// instead of one narrow factory per pairing.
	RepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
		ShipmentItemRepository() ports.ShipmentItemRepository
		TrackingEventRepository() ports.TrackingEventRepository
		VehicleRepository() ports.VehicleRepository
		DriverRepository() ports.DriverRepository
		UserRepository() ports.UserRepository
		CustomerRepository() ports.CustomerRepository
		LocationRepository() ports.LocationRepository
		WarehouseRepository() ports.WarehouseRepository
		RouteRepository() ports.RouteRepository
	}

	// UoW manages one transaction across all aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RepoFactory
	}

	// UoWFactory creates new unit of work instances, one per command.
	UoWFactory interface {
		Create() UoW
	}
)

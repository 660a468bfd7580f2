package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// UpdateShipmentCommandHandler overwrites a shipment's mutable fields and
// reconciles the resource pool: when the vehicle reference changes, the
// previous vehicle (if any) reverts to available and the new one (if any)
// becomes in_use, with symmetric handling for the driver. Everything runs in
// one transaction.
type UpdateShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(uowFactory UoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment update command.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	previousVehicleID := aggregate.VehicleID()
	previousDriverID := aggregate.DriverID()

	if err = aggregate.Replace(
		cmd.CustomerID(),
		cmd.OriginID(),
		cmd.DestinationID(),
		cmd.Status(),
		cmd.Totals(),
		cmd.Details(),
	); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.reconcileVehicle(ctx, uow, previousVehicleID, cmd.Details().VehicleID); err != nil {
		return err
	}
	if err = h.reconcileDriver(ctx, uow, previousDriverID, cmd.Details().DriverID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateShipmentCommandHandler) reconcileVehicle(ctx context.Context, uow UoW, previous, next *kernel.ID) error {
	if !referenceChanged(previous, next) {
		return nil
	}

	vehicleRepo := uow.VehicleRepository()
	if previous != nil {
		if err := vehicleRepo.SetStatus(ctx, *previous, vehicle.StatusAvailable); err != nil {
			return err
		}
	}
	if next != nil {
		if err := vehicleRepo.SetStatus(ctx, *next, vehicle.StatusInUse); err != nil {
			return err
		}
	}
	return nil
}

func (h *UpdateShipmentCommandHandler) reconcileDriver(ctx context.Context, uow UoW, previous, next *kernel.ID) error {
	if !referenceChanged(previous, next) {
		return nil
	}

	driverRepo := uow.DriverRepository()
	if previous != nil {
		if err := driverRepo.SetStatus(ctx, *previous, driver.StatusAvailable); err != nil {
			return err
		}
	}
	if next != nil {
		if err := driverRepo.SetStatus(ctx, *next, driver.StatusAssigned); err != nil {
			return err
		}
	}
	return nil
}

// referenceChanged reports whether an optional resource reference differs
// between the previous and the requested state.
func referenceChanged(previous, next *kernel.ID) bool {
	switch {
	case previous == nil && next == nil:
		return false
	case previous == nil || next == nil:
		return true
	default:
		return !previous.IsEqual(*next)
	}
}

package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration:
//
//   - Rejects tracking numbers that are already taken, before inserting.
//   - Marks an assigned vehicle in_use and an assigned driver assigned.
//   - Synthesizes the first tracking event at the origin when the shipment
//     starts in a non-pending status (pickup for picked_up, departure for
//     everything else), recorded by the admin sentinel user.
//
// All of it runs inside one transaction: any failure rolls back the
// shipment row, the resource status writes and the synthesized event.
type CreateShipmentCommandHandler struct {
	uowFactory  UoWFactory
	calculator  services.StatusCalculator
	adminUserID kernel.ID
}

// NewCreateShipmentCommandHandler creates a handler for shipment
// registration. adminUserID identifies the sentinel user recorded on
// synthesized tracking events.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	calculator services.StatusCalculator,
	adminUserID kernel.ID,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:  uowFactory,
		calculator:  calculator,
		adminUserID: adminUserID,
	}
}

// Handle processes the shipment registration command and returns the
// generated shipment identifier.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	taken, err := shipmentRepo.ExistsByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return kernel.ID{}, err
	}
	if taken {
		return kernel.ID{}, errs.NewDuplicateKeyError("tracking_number", cmd.TrackingNumber())
	}

	aggregate, err := shipment.NewShipment(
		cmd.TrackingNumber(),
		cmd.CustomerID(),
		cmd.OriginID(),
		cmd.DestinationID(),
		cmd.Status(),
		cmd.Totals(),
		cmd.Details(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	shipmentID, err := shipmentRepo.Add(ctx, aggregate)
	if err != nil {
		return kernel.ID{}, err
	}

	if vehicleID := cmd.Details().VehicleID; vehicleID != nil {
		if err = uow.VehicleRepository().SetStatus(ctx, *vehicleID, vehicle.StatusInUse); err != nil {
			return kernel.ID{}, err
		}
	}
	if driverID := cmd.Details().DriverID; driverID != nil {
		if err = uow.DriverRepository().SetStatus(ctx, *driverID, driver.StatusAssigned); err != nil {
			return kernel.ID{}, err
		}
	}

	if eventType, ok := h.calculator.InitialEventType(cmd.Status()); ok {
		event, eventErr := tracking.NewEvent(shipmentID, eventType, cmd.OriginID(), h.adminUserID, "")
		if eventErr != nil {
			return kernel.ID{}, eventErr
		}
		if _, eventErr = uow.TrackingEventRepository().Add(ctx, event); eventErr != nil {
			return kernel.ID{}, eventErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return shipmentID, nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrUpdateVehicleCommandIsNotConstructed = errors.New(
		"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
	)
	ErrDeleteVehicleCommandIsNotConstructed = errors.New(
		"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
	)
)

// CreateVehicleCommand registers a new vehicle in the resource pool.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicle *vehicle.Vehicle

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates the command; field validation is delegated
// to the Vehicle factory.
func NewCreateVehicleCommand(
	licensePlate string,
	make string,
	model string,
	year int,
	capacityKg float64,
	vehicleType string,
	status vehicle.Status,
	currentLocationID *kernel.ID,
	lastInspectionDate *time.Time,
) (CreateVehicleCommand, error) {
	v, err := vehicle.NewVehicle(licensePlate, make, model, year, capacityKg, vehicleType, status, currentLocationID, lastInspectionDate)
	if err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		vehicle: v,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// Vehicle returns the validated vehicle to persist.
func (c CreateVehicleCommand) Vehicle() *vehicle.Vehicle {
	return c.vehicle
}

// CreateVehicleCommandHandler registers a vehicle, failing with a
// duplicate-key error when the license plate is taken.
type CreateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory UoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the generated vehicle identifier.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (kernel.ID, error) {
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

	vehicleRepo := uow.VehicleRepository()

	taken, err := vehicleRepo.ExistsByLicensePlate(ctx, cmd.Vehicle().LicensePlate())
	if err != nil {
		return kernel.ID{}, err
	}
	if taken {
		return kernel.ID{}, errs.NewDuplicateKeyError("license_plate", cmd.Vehicle().LicensePlate())
	}

	vehicleID, err := vehicleRepo.Add(ctx, cmd.Vehicle())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return vehicleID, nil
}

// VehiclePatch lists the vehicle attributes a partial update may overwrite.
// Nil pointers mean "leave untouched". The patch maps to a fixed allow-list
// of columns; nothing in it is ever interpolated into SQL text.
type VehiclePatch struct {
	LicensePlate       *string
	Make               *string
	Model              *string
	Year               *int
	CapacityKg         *float64
	VehicleType        *string
	Status             *vehicle.Status
	CurrentLocationID  *kernel.ID
	LastInspectionDate *time.Time
}

// Fields renders the patch as a column map for the repository.
func (p VehiclePatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.LicensePlate != nil {
		fields["license_plate"] = *p.LicensePlate
	}
	if p.Make != nil {
		fields["make"] = *p.Make
	}
	if p.Model != nil {
		fields["model"] = *p.Model
	}
	if p.Year != nil {
		fields["year"] = *p.Year
	}
	if p.CapacityKg != nil {
		fields["capacity_kg"] = *p.CapacityKg
	}
	if p.VehicleType != nil {
		fields["vehicle_type"] = *p.VehicleType
	}
	if p.Status != nil {
		fields["status"] = p.Status.String()
	}
	if p.CurrentLocationID != nil {
		fields["current_location_id"] = p.CurrentLocationID.Int64()
	}
	if p.LastInspectionDate != nil {
		fields["last_inspection_date"] = *p.LastInspectionDate
	}
	return fields
}

func (p VehiclePatch) validate() error {
	var violations []error

	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			violations = append(violations, err)
		}
	}
	if p.CurrentLocationID != nil {
		if err := p.CurrentLocationID.Validate(); err != nil {
			violations = append(violations, err)
		}
	}
	if p.CapacityKg != nil && *p.CapacityKg < 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("capacity_kg", *p.CapacityKg, 0, "+inf"))
	}
	return errors.Join(violations...)
}

// UpdateVehicleCommand applies a partial update to a vehicle: only the
// fields present in the patch are overwritten.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.ID
	patch     VehiclePatch

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates the command. An empty patch is rejected.
func NewUpdateVehicleCommand(vehicleID kernel.ID, patch VehiclePatch) (UpdateVehicleCommand, error) {
	if err := errors.Join(vehicleID.Validate(), patch.validate()); err != nil {
		return UpdateVehicleCommand{}, err
	}
	if len(patch.Fields()) == 0 {
		return UpdateVehicleCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return UpdateVehicleCommand{
		vehicleID: vehicleID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to patch.
func (c UpdateVehicleCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

// Patch returns the requested partial update.
func (c UpdateVehicleCommand) Patch() VehiclePatch {
	return c.patch
}

// UpdateVehicleCommandHandler applies a vehicle patch.
type UpdateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle patches.
func NewUpdateVehicleCommandHandler(uowFactory UoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the vehicle patch command.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()

	if _, err := vehicleRepo.Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	if err := vehicleRepo.UpdateFields(ctx, cmd.VehicleID(), cmd.Patch().Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteVehicleCommand removes a vehicle from the resource pool.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates the command.
func NewDeleteVehicleCommand(vehicleID kernel.ID) (DeleteVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return DeleteVehicleCommand{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to remove.
func (c DeleteVehicleCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

// DeleteVehicleCommandHandler removes a vehicle unless a shipment still
// references it, in which case the deletion fails with a resource-in-use
// error and nothing changes.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the vehicle deletion command.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	count, err := uow.ShipmentRepository().CountByVehicle(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewResourceInUseError("vehicle", "shipment", count)
	}

	if err = uow.VehicleRepository().Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

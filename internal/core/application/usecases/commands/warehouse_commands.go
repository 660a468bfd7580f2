package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrUpdateWarehouseCommandIsNotConstructed = errors.New(
		"UpdateWarehouseCommand must be created via NewUpdateWarehouseCommand constructor",
	)
	ErrDeleteWarehouseCommandIsNotConstructed = errors.New(
		"DeleteWarehouseCommand must be created via NewDeleteWarehouseCommand constructor",
	)
)

// CreateWarehouseCommand registers a new warehouse at a location.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouse *warehouse.Warehouse

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates the command; field validation is
// delegated to the Warehouse model.
func NewCreateWarehouseCommand(wh warehouse.Warehouse) (CreateWarehouseCommand, error) {
	if err := wh.Validate(); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return CreateWarehouseCommand{
		warehouse: &wh,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// Warehouse returns the validated warehouse to persist.
func (c CreateWarehouseCommand) Warehouse() *warehouse.Warehouse {
	return c.warehouse
}

// CreateWarehouseCommandHandler registers a warehouse. A location may host
// at most one warehouse, and registering one promotes the location's type to
// "warehouse". Insert and promotion run in one transaction.
type CreateWarehouseCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse
// registration.
func NewCreateWarehouseCommandHandler(uowFactory UoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the generated warehouse
// identifier.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) (kernel.ID, error) {
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

	locationID := cmd.Warehouse().LocationID

	if _, err := uow.LocationRepository().Get(ctx, locationID); err != nil {
		return kernel.ID{}, err
	}

	occupied, err := uow.WarehouseRepository().ExistsByLocation(ctx, locationID)
	if err != nil {
		return kernel.ID{}, err
	}
	if occupied {
		return kernel.ID{}, errs.NewDuplicateKeyError("location_id", locationID.String())
	}

	warehouseID, err := uow.WarehouseRepository().Add(ctx, cmd.Warehouse())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.LocationRepository().SetLocationType(ctx, locationID, "warehouse"); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return warehouseID, nil
}

// WarehousePatch lists the warehouse attributes a partial update may
// overwrite.
type WarehousePatch struct {
	WarehouseName    *string
	Capacity         *float64
	CurrentOccupancy *float64
	ManagerID        *kernel.ID
	OperatingHours   *string
}

// Fields renders the patch as a column map for the repository.
func (p WarehousePatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.WarehouseName != nil {
		fields["warehouse_name"] = *p.WarehouseName
	}
	if p.Capacity != nil {
		fields["capacity"] = *p.Capacity
	}
	if p.CurrentOccupancy != nil {
		fields["current_occupancy"] = *p.CurrentOccupancy
	}
	if p.ManagerID != nil {
		fields["manager_id"] = p.ManagerID.Int64()
	}
	if p.OperatingHours != nil {
		fields["operating_hours"] = *p.OperatingHours
	}
	return fields
}

func (p WarehousePatch) validate() error {
	var violations []error

	if p.Capacity != nil && *p.Capacity <= 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("capacity", *p.Capacity, 1, "+inf"))
	}
	if p.CurrentOccupancy != nil && *p.CurrentOccupancy < 0 {
		violations = append(violations,
			errs.NewValueIsOutOfRangeError("current_occupancy", *p.CurrentOccupancy, 0, "+inf"))
	}
	if p.ManagerID != nil {
		if err := p.ManagerID.Validate(); err != nil {
			violations = append(violations, err)
		}
	}
	return errors.Join(violations...)
}

// UpdateWarehouseCommand applies a partial update to a warehouse.
type UpdateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID
	patch       WarehousePatch

	guard guard.ConstructorGuard
}

// NewUpdateWarehouseCommand creates the command. An empty patch is rejected.
func NewUpdateWarehouseCommand(warehouseID kernel.ID, patch WarehousePatch) (UpdateWarehouseCommand, error) {
	if err := errors.Join(warehouseID.Validate(), patch.validate()); err != nil {
		return UpdateWarehouseCommand{}, err
	}
	if len(patch.Fields()) == 0 {
		return UpdateWarehouseCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return UpdateWarehouseCommand{
		warehouseID: warehouseID,
		patch:       patch,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to patch.
func (c UpdateWarehouseCommand) WarehouseID() kernel.ID { return c.warehouseID }

// Patch returns the requested partial update.
func (c UpdateWarehouseCommand) Patch() WarehousePatch { return c.patch }

// UpdateWarehouseCommandHandler applies a warehouse patch.
type UpdateWarehouseCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateWarehouseCommandHandler creates a handler for warehouse patches.
func NewUpdateWarehouseCommandHandler(uowFactory UoWFactory) UpdateWarehouseCommandHandler {
	return UpdateWarehouseCommandHandler{uowFactory: uowFactory}
}

// Handle processes the warehouse patch command.
func (h *UpdateWarehouseCommandHandler) Handle(ctx context.Context, cmd UpdateWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	if _, err := warehouseRepo.Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	if err := warehouseRepo.UpdateFields(ctx, cmd.WarehouseID(), cmd.Patch().Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteWarehouseCommand removes a warehouse.
type DeleteWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteWarehouseCommand creates the command.
func NewDeleteWarehouseCommand(warehouseID kernel.ID) (DeleteWarehouseCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return DeleteWarehouseCommand{}, err
	}

	return DeleteWarehouseCommand{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to remove.
func (c DeleteWarehouseCommand) WarehouseID() kernel.ID { return c.warehouseID }

// DeleteWarehouseCommandHandler removes a warehouse. The location keeps its
// "warehouse" type; nothing demotes it automatically.
type DeleteWarehouseCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteWarehouseCommandHandler creates a handler for warehouse deletion.
func NewDeleteWarehouseCommandHandler(uowFactory UoWFactory) DeleteWarehouseCommandHandler {
	return DeleteWarehouseCommandHandler{uowFactory: uowFactory}
}

// Handle processes the warehouse deletion command.
func (h *DeleteWarehouseCommandHandler) Handle(ctx context.Context, cmd DeleteWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	if _, err := warehouseRepo.Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	if err := warehouseRepo.Delete(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

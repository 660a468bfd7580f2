package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/location"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
	ErrUpdateLocationCommandIsNotConstructed = errors.New(
		"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
	)
	ErrDeleteLocationCommandIsNotConstructed = errors.New(
		"DeleteLocationCommand must be created via NewDeleteLocationCommand constructor",
	)
)

// DefaultCountry is applied when a client registers a location without one.
const DefaultCountry = "India"

// CreateLocationCommand registers a new addressable point.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	location *location.Location

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates the command. A missing country falls back
// to DefaultCountry; everything else is validated by the Location model.
func NewCreateLocationCommand(loc location.Location) (CreateLocationCommand, error) {
	if loc.Country == "" {
		loc.Country = DefaultCountry
	}
	if err := loc.Validate(); err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{
		location: &loc,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// Location returns the validated location to persist.
func (c CreateLocationCommand) Location() *location.Location {
	return c.location
}

// CreateLocationCommandHandler registers a location.
type CreateLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location
// registration.
func NewCreateLocationCommandHandler(uowFactory UoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the generated location
// identifier.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (kernel.ID, error) {
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

	locationID, err := uow.LocationRepository().Add(ctx, cmd.Location())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return locationID, nil
}

// LocationPatch lists the location attributes a partial update may
// overwrite.
type LocationPatch struct {
	Address      *string
	City         *string
	State        *string
	Country      *string
	PostalCode   *string
	Latitude     *float64
	Longitude    *float64
	LocationType *string
}

// Fields renders the patch as a column map for the repository.
func (p LocationPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Address != nil {
		fields["address"] = *p.Address
	}
	if p.City != nil {
		fields["city"] = *p.City
	}
	if p.State != nil {
		fields["state"] = *p.State
	}
	if p.Country != nil {
		fields["country"] = *p.Country
	}
	if p.PostalCode != nil {
		fields["postal_code"] = *p.PostalCode
	}
	if p.Latitude != nil {
		fields["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		fields["longitude"] = *p.Longitude
	}
	if p.LocationType != nil {
		fields["location_type"] = *p.LocationType
	}
	return fields
}

func (p LocationPatch) validate() error {
	var violations []error

	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		violations = append(violations, errs.NewValueIsOutOfRangeError("latitude", *p.Latitude, -90, 90))
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		violations = append(violations, errs.NewValueIsOutOfRangeError("longitude", *p.Longitude, -180, 180))
	}
	return errors.Join(violations...)
}

// UpdateLocationCommand applies a partial update to a location.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.ID
	patch      LocationPatch

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates the command. An empty patch is rejected.
func NewUpdateLocationCommand(locationID kernel.ID, patch LocationPatch) (UpdateLocationCommand, error) {
	if err := errors.Join(locationID.Validate(), patch.validate()); err != nil {
		return UpdateLocationCommand{}, err
	}
	if len(patch.Fields()) == 0 {
		return UpdateLocationCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return UpdateLocationCommand{
		locationID: locationID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier of the location to patch.
func (c UpdateLocationCommand) LocationID() kernel.ID { return c.locationID }

// Patch returns the requested partial update.
func (c UpdateLocationCommand) Patch() LocationPatch { return c.patch }

// UpdateLocationCommandHandler applies a location patch.
type UpdateLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for location patches.
func NewUpdateLocationCommandHandler(uowFactory UoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the location patch command.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
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

	locationRepo := uow.LocationRepository()

	if _, err := locationRepo.Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	if err := locationRepo.UpdateFields(ctx, cmd.LocationID(), cmd.Patch().Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteLocationCommand removes a location from the registry.
type DeleteLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteLocationCommand creates the command.
func NewDeleteLocationCommand(locationID kernel.ID) (DeleteLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return DeleteLocationCommand{}, err
	}

	return DeleteLocationCommand{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLocationCommandIsNotConstructed)
}

// LocationID returns the identifier of the location to remove.
func (c DeleteLocationCommand) LocationID() kernel.ID { return c.locationID }

// DeleteLocationCommandHandler removes a location unless anything still
// points at it. Shipments, vehicles, routes, warehouses, tracking events and
// waypoints are all checked; the first non-zero count fails the deletion
// with a resource-in-use error naming the referencing table.
type DeleteLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteLocationCommandHandler creates a handler for location deletion.
func NewDeleteLocationCommandHandler(uowFactory UoWFactory) DeleteLocationCommandHandler {
	return DeleteLocationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the location deletion command.
func (h *DeleteLocationCommandHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) error {
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

	if _, err := uow.LocationRepository().Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	references := []struct {
		name  string
		count func(context.Context, kernel.ID) (int64, error)
	}{
		{"shipment", uow.ShipmentRepository().CountByLocation},
		{"vehicle", uow.VehicleRepository().CountByLocation},
		{"route", uow.RouteRepository().CountByLocation},
		{"warehouse", uow.WarehouseRepository().CountByLocation},
		{"tracking event", uow.TrackingEventRepository().CountByLocation},
		{"waypoint", uow.RouteRepository().CountWaypointsByLocation},
	}
	for _, ref := range references {
		count, err := ref.count(ctx, cmd.LocationID())
		if err != nil {
			return err
		}
		if count > 0 {
			return errs.NewResourceInUseError("location", ref.name, count)
		}
	}

	if err := uow.LocationRepository().Delete(ctx, cmd.LocationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

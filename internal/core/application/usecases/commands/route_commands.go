package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrUpdateRouteCommandIsNotConstructed = errors.New(
		"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
	)
	ErrDeleteRouteCommandIsNotConstructed = errors.New(
		"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
	)
	ErrAddWaypointCommandIsNotConstructed = errors.New(
		"AddWaypointCommand must be created via NewAddWaypointCommand constructor",
	)
)

// CreateRouteCommand registers a new planned route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	route *route.Route

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates the command. Missing status and hazard level
// fall back to the catalog defaults; everything else is validated by the
// Route model.
func NewCreateRouteCommand(r route.Route) (CreateRouteCommand, error) {
	if r.Status == "" {
		r.Status = route.DefaultStatus
	}
	if r.HazardLevel == "" {
		r.HazardLevel = route.DefaultHazardLevel
	}
	if err := r.Validate(); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		route: &r,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// Route returns the validated route to persist.
func (c CreateRouteCommand) Route() *route.Route {
	return c.route
}

// CreateRouteCommandHandler registers a route.
type CreateRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route registration.
func NewCreateRouteCommandHandler(uowFactory UoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the generated route identifier.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (kernel.ID, error) {
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

	routeID, err := uow.RouteRepository().Add(ctx, cmd.Route())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return routeID, nil
}

// RoutePatch lists the route attributes a partial update may overwrite.
type RoutePatch struct {
	RouteName            *string
	OriginID             *kernel.ID
	DestinationID        *kernel.ID
	DistanceKm           *float64
	EstimatedDurationMin *int
	Status               *string
	HazardLevel          *string
}

// Fields renders the patch as a column map for the repository.
func (p RoutePatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.RouteName != nil {
		fields["route_name"] = *p.RouteName
	}
	if p.OriginID != nil {
		fields["origin_id"] = p.OriginID.Int64()
	}
	if p.DestinationID != nil {
		fields["destination_id"] = p.DestinationID.Int64()
	}
	if p.DistanceKm != nil {
		fields["distance_km"] = *p.DistanceKm
	}
	if p.EstimatedDurationMin != nil {
		fields["estimated_duration_min"] = *p.EstimatedDurationMin
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.HazardLevel != nil {
		fields["hazard_level"] = *p.HazardLevel
	}
	return fields
}

func (p RoutePatch) validate() error {
	var violations []error

	if p.OriginID != nil {
		if err := p.OriginID.Validate(); err != nil {
			violations = append(violations, err)
		}
	}
	if p.DestinationID != nil {
		if err := p.DestinationID.Validate(); err != nil {
			violations = append(violations, err)
		}
	}
	if p.DistanceKm != nil && *p.DistanceKm <= 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("distance_km", *p.DistanceKm, 1, "+inf"))
	}
	if p.EstimatedDurationMin != nil && *p.EstimatedDurationMin <= 0 {
		violations = append(violations,
			errs.NewValueIsOutOfRangeError("estimated_duration_min", *p.EstimatedDurationMin, 1, "+inf"))
	}
	return errors.Join(violations...)
}

// UpdateRouteCommand applies a partial update to a route.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.ID
	patch   RoutePatch

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates the command. An empty patch is rejected.
func NewUpdateRouteCommand(routeID kernel.ID, patch RoutePatch) (UpdateRouteCommand, error) {
	if err := errors.Join(routeID.Validate(), patch.validate()); err != nil {
		return UpdateRouteCommand{}, err
	}
	if len(patch.Fields()) == 0 {
		return UpdateRouteCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return UpdateRouteCommand{
		routeID: routeID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to patch.
func (c UpdateRouteCommand) RouteID() kernel.ID { return c.routeID }

// Patch returns the requested partial update.
func (c UpdateRouteCommand) Patch() RoutePatch { return c.patch }

// UpdateRouteCommandHandler applies a route patch.
type UpdateRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateRouteCommandHandler creates a handler for route patches.
func NewUpdateRouteCommandHandler(uowFactory UoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle processes the route patch command.
func (h *UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) error {
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

	routeRepo := uow.RouteRepository()

	if _, err := routeRepo.Get(ctx, cmd.RouteID()); err != nil {
		return err
	}

	if err := routeRepo.UpdateFields(ctx, cmd.RouteID(), cmd.Patch().Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteRouteCommand removes a route from the catalog.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteRouteCommand creates the command.
func NewDeleteRouteCommand(routeID kernel.ID) (DeleteRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DeleteRouteCommand{}, err
	}

	return DeleteRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to remove.
func (c DeleteRouteCommand) RouteID() kernel.ID { return c.routeID }

// DeleteRouteCommandHandler removes a route. Deletion fails with a
// resource-in-use error while any shipment references the route; otherwise
// the route's waypoints are removed first and the route row second, all in
// one transaction.
type DeleteRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteRouteCommandHandler creates a handler for route deletion.
func NewDeleteRouteCommandHandler(uowFactory UoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{uowFactory: uowFactory}
}

// Handle processes the route deletion command.
func (h *DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
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

	routeRepo := uow.RouteRepository()

	if _, err := routeRepo.Get(ctx, cmd.RouteID()); err != nil {
		return err
	}

	count, err := uow.ShipmentRepository().CountByRoute(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewResourceInUseError("route", "shipment", count)
	}

	waypoints, err := routeRepo.CountWaypointsByRoute(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if waypoints > 0 {
		if err = routeRepo.DeleteWaypointsByRoute(ctx, cmd.RouteID()); err != nil {
			return err
		}
	}

	if err = routeRepo.Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AddWaypointCommand appends a stop to a route.
type AddWaypointCommand struct { //nolint:recvcheck //using for validation
	waypoint *route.Waypoint

	guard guard.ConstructorGuard
}

// NewAddWaypointCommand creates the command; field validation is delegated
// to the Waypoint model.
func NewAddWaypointCommand(w route.Waypoint) (AddWaypointCommand, error) {
	if err := w.Validate(); err != nil {
		return AddWaypointCommand{}, err
	}

	return AddWaypointCommand{
		waypoint: &w,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddWaypointCommand) Validate() error {
	return c.guard.Validate(ErrAddWaypointCommandIsNotConstructed)
}

// Waypoint returns the validated waypoint to persist.
func (c AddWaypointCommand) Waypoint() *route.Waypoint {
	return c.waypoint
}

// AddWaypointCommandHandler appends a waypoint to an existing route.
type AddWaypointCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddWaypointCommandHandler creates a handler for waypoint creation.
func NewAddWaypointCommandHandler(uowFactory UoWFactory) AddWaypointCommandHandler {
	return AddWaypointCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the generated waypoint
// identifier.
func (h *AddWaypointCommandHandler) Handle(ctx context.Context, cmd AddWaypointCommand) (kernel.ID, error) {
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

	routeRepo := uow.RouteRepository()

	if _, err := routeRepo.Get(ctx, cmd.Waypoint().RouteID); err != nil {
		return kernel.ID{}, err
	}

	waypointID, err := routeRepo.AddWaypoint(ctx, cmd.Waypoint())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return waypointID, nil
}

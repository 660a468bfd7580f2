package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for the route catalog and
// its waypoints. Waypoints are owned by their route and are removed before
// the route itself.
type RouteRepository interface {
	// Add persists a new route and returns its generated identifier.
	Add(ctx context.Context, r *route.Route) (kernel.ID, error)

	// Get retrieves a route by its identifier.
	Get(ctx context.Context, id kernel.ID) (*route.Route, error)

	// UpdateFields applies a partial update against an allow-list of columns.
	UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error

	// Delete removes a route by its identifier. Callers delete the route's
	// waypoints first and verify no shipment references the route.
	Delete(ctx context.Context, id kernel.ID) error

	// AddWaypoint persists a new waypoint and returns its generated
	// identifier.
	AddWaypoint(ctx context.Context, w *route.Waypoint) (kernel.ID, error)

	// DeleteWaypointsByRoute removes all waypoints of the route.
	DeleteWaypointsByRoute(ctx context.Context, routeID kernel.ID) error

	// CountWaypointsByRoute returns the number of waypoints along the route.
	CountWaypointsByRoute(ctx context.Context, routeID kernel.ID) (int64, error)

	// CountByLocation returns the number of routes whose origin or
	// destination is the given location.
	CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error)

	// CountWaypointsByLocation returns the number of waypoints at the
	// location. Used by the referential guard on location deletion.
	CountWaypointsByLocation(ctx context.Context, locationID kernel.ID) (int64, error)
}

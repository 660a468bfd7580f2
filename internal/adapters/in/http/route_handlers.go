package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

type createRouteRequest struct {
	RouteName            string  `json:"route_name"`
	OriginID             int64   `json:"origin_id"`
	DestinationID        int64   `json:"destination_id"`
	DistanceKm           float64 `json:"distance_km"`
	EstimatedDurationMin int     `json:"estimated_duration_min"`
	Status               string  `json:"status"`
	HazardLevel          string  `json:"hazard_level"`
}

type updateRouteRequest struct {
	RouteName            *string  `json:"route_name"`
	OriginID             *int64   `json:"origin_id"`
	DestinationID        *int64   `json:"destination_id"`
	DistanceKm           *float64 `json:"distance_km"`
	EstimatedDurationMin *int     `json:"estimated_duration_min"`
	Status               *string  `json:"status"`
	HazardLevel          *string  `json:"hazard_level"`
}

type addWaypointRequest struct {
	LocationID    int64 `json:"location_id"`
	SequenceOrder int   `json:"sequence_order"`
}

// GetRoutes handles GET /api/routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	routes, err := s.queries.Routes.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toRouteRows(routes))
}

// CreateRoute handles POST /api/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req createRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	originID, err := kernel.NewID(req.OriginID)
	if err != nil {
		return fail(ctx, err)
	}
	destinationID, err := kernel.NewID(req.DestinationID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateRouteCommand(route.Route{
		RouteName:            req.RouteName,
		OriginID:             originID,
		DestinationID:        destinationID,
		DistanceKm:           req.DistanceKm,
		EstimatedDurationMin: req.EstimatedDurationMin,
		Status:               req.Status,
		HazardLevel:          req.HazardLevel,
	})
	if err != nil {
		return fail(ctx, err)
	}

	routeID, err := s.commands.CreateRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "route_id", routeID)
}

// UpdateRoute handles PUT /api/routes/:id. Only fields present in the body
// are changed.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	patch := commands.RoutePatch{
		RouteName:            req.RouteName,
		DistanceKm:           req.DistanceKm,
		EstimatedDurationMin: req.EstimatedDurationMin,
		Status:               req.Status,
		HazardLevel:          req.HazardLevel,
	}
	if req.OriginID != nil {
		originID, err := kernel.NewID(*req.OriginID)
		if err != nil {
			return fail(ctx, err)
		}
		patch.OriginID = &originID
	}
	if req.DestinationID != nil {
		destinationID, err := kernel.NewID(*req.DestinationID)
		if err != nil {
			return fail(ctx, err)
		}
		patch.DestinationID = &destinationID
	}

	cmd, err := commands.NewUpdateRouteCommand(routeID, patch)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteRoute handles DELETE /api/routes/:id. The route's waypoints are
// removed with it.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// AddWaypoint handles POST /api/routes/:id/waypoints.
func (s *Server) AddWaypoint(ctx echo.Context) error {
	routeID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req addWaypointRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	locationID, err := kernel.NewID(req.LocationID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddWaypointCommand(route.Waypoint{
		RouteID:       routeID,
		LocationID:    locationID,
		SequenceOrder: req.SequenceOrder,
	})
	if err != nil {
		return fail(ctx, err)
	}

	waypointID, err := s.commands.AddWaypoint.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "waypoint_id", waypointID)
}

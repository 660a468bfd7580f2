package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/location"

	"github.com/labstack/echo/v4"
)

type createLocationRequest struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Country      string   `json:"country"`
	PostalCode   string   `json:"postal_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType string   `json:"location_type"`
}

type updateLocationRequest struct {
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Country      *string  `json:"country"`
	PostalCode   *string  `json:"postal_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType *string  `json:"location_type"`
}

// GetLocations handles GET /api/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	locations, err := s.queries.Locations.Handle(ctx.Request().Context(), queries.NewGetLocationsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toLocationRows(locations))
}

// CreateLocation handles POST /api/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var req createLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateLocationCommand(location.Location{
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocationType: req.LocationType,
	})
	if err != nil {
		return fail(ctx, err)
	}

	locationID, err := s.commands.CreateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "location_id", locationID)
}

// UpdateLocation handles PUT /api/locations/:id. Only fields present in the
// body are changed.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	locationID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	patch := commands.LocationPatch{
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocationType: req.LocationType,
	}

	cmd, err := commands.NewUpdateLocationCommand(locationID, patch)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteLocation handles DELETE /api/locations/:id. Locations referenced by
// shipments, warehouses, or routes cannot be removed.
func (s *Server) DeleteLocation(ctx echo.Context) error {
	locationID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteLocationCommand(locationID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

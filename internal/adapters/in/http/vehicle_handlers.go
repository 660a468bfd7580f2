package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

type createVehicleRequest struct {
	LicensePlate       string  `json:"license_plate"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	CapacityKg         float64 `json:"capacity_kg"`
	VehicleType        string  `json:"vehicle_type"`
	Status             string  `json:"status"`
	CurrentLocationID  *int64  `json:"current_location_id"`
	LastInspectionDate string  `json:"last_inspection_date"`
}

type updateVehicleRequest struct {
	LicensePlate       *string  `json:"license_plate"`
	Make               *string  `json:"make"`
	Model              *string  `json:"model"`
	Year               *int     `json:"year"`
	CapacityKg         *float64 `json:"capacity_kg"`
	VehicleType        *string  `json:"vehicle_type"`
	Status             *string  `json:"status"`
	CurrentLocationID  *int64   `json:"current_location_id"`
	LastInspectionDate *string  `json:"last_inspection_date"`
}

// GetVehicles handles GET /api/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.queries.Vehicles.Handle(ctx.Request().Context(), queries.NewGetVehiclesQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toVehicleRows(vehicles))
}

// CreateVehicle handles POST /api/vehicles. A missing status means the
// vehicle starts out available.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req createVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	status := vehicle.StatusAvailable
	if req.Status != "" {
		var err error
		status, err = vehicle.NewStatusFromString(req.Status)
		if err != nil {
			return fail(ctx, err)
		}
	}

	currentLocationID, err := optionalID(req.CurrentLocationID)
	if err != nil {
		return fail(ctx, err)
	}
	lastInspectionDate, err := parseOptionalTime(req.LastInspectionDate, "last_inspection_date")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		req.LicensePlate, req.Make, req.Model, req.Year, req.CapacityKg, req.VehicleType,
		status, currentLocationID, lastInspectionDate)
	if err != nil {
		return fail(ctx, err)
	}

	vehicleID, err := s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "vehicle_id", vehicleID)
}

// UpdateVehicle handles PUT /api/vehicles/:id. Only fields present in the
// body are changed.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateVehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	patch := commands.VehiclePatch{
		LicensePlate: req.LicensePlate,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		CapacityKg:   req.CapacityKg,
		VehicleType:  req.VehicleType,
	}
	if req.Status != nil {
		status, err := vehicle.NewStatusFromString(*req.Status)
		if err != nil {
			return fail(ctx, err)
		}
		patch.Status = &status
	}
	if req.CurrentLocationID != nil {
		currentLocationID, err := optionalID(req.CurrentLocationID)
		if err != nil {
			return fail(ctx, err)
		}
		patch.CurrentLocationID = currentLocationID
	}
	if req.LastInspectionDate != nil {
		lastInspectionDate, err := parseOptionalTime(*req.LastInspectionDate, "last_inspection_date")
		if err != nil {
			return fail(ctx, err)
		}
		patch.LastInspectionDate = lastInspectionDate
	}

	cmd, err := commands.NewUpdateVehicleCommand(vehicleID, patch)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteVehicle handles DELETE /api/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

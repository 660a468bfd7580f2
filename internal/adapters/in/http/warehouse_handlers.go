package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/labstack/echo/v4"
)

type createWarehouseRequest struct {
	LocationID       int64   `json:"location_id"`
	WarehouseName    string  `json:"warehouse_name"`
	Capacity         float64 `json:"capacity"`
	CurrentOccupancy float64 `json:"current_occupancy"`
	ManagerID        *int64  `json:"manager_id"`
	OperatingHours   string  `json:"operating_hours"`
}

type updateWarehouseRequest struct {
	WarehouseName    *string  `json:"warehouse_name"`
	Capacity         *float64 `json:"capacity"`
	CurrentOccupancy *float64 `json:"current_occupancy"`
	ManagerID        *int64   `json:"manager_id"`
	OperatingHours   *string  `json:"operating_hours"`
}

// GetWarehouses handles GET /api/warehouses.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	warehouses, err := s.queries.Warehouses.Handle(ctx.Request().Context(), queries.NewGetWarehousesQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toWarehouseRows(warehouses))
}

// CreateWarehouse handles POST /api/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var req createWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	locationID, err := kernel.NewID(req.LocationID)
	if err != nil {
		return fail(ctx, err)
	}
	managerID, err := optionalID(req.ManagerID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateWarehouseCommand(warehouse.Warehouse{
		LocationID:       locationID,
		WarehouseName:    req.WarehouseName,
		Capacity:         req.Capacity,
		CurrentOccupancy: req.CurrentOccupancy,
		ManagerID:        managerID,
		OperatingHours:   req.OperatingHours,
	})
	if err != nil {
		return fail(ctx, err)
	}

	warehouseID, err := s.commands.CreateWarehouse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "warehouse_id", warehouseID)
}

// UpdateWarehouse handles PUT /api/warehouses/:id. Only fields present in
// the body are changed; the backing location is immutable.
func (s *Server) UpdateWarehouse(ctx echo.Context) error {
	warehouseID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateWarehouseRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	patch := commands.WarehousePatch{
		WarehouseName:    req.WarehouseName,
		Capacity:         req.Capacity,
		CurrentOccupancy: req.CurrentOccupancy,
		OperatingHours:   req.OperatingHours,
	}
	if req.ManagerID != nil {
		managerID, err := optionalID(req.ManagerID)
		if err != nil {
			return fail(ctx, err)
		}
		patch.ManagerID = managerID
	}

	cmd, err := commands.NewUpdateWarehouseCommand(warehouseID, patch)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteWarehouse handles DELETE /api/warehouses/:id.
func (s *Server) DeleteWarehouse(ctx echo.Context) error {
	warehouseID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteWarehouseCommand(warehouseID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type shipmentItemRequest struct {
	ShipmentID  int64   `json:"shipment_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
	ItemValue   float64 `json:"item_value"`
	IsHazardous bool    `json:"is_hazardous"`
	IsFragile   bool    `json:"is_fragile"`
}

// GetShipmentItems handles GET /api/shipment-items.
func (s *Server) GetShipmentItems(ctx echo.Context) error {
	items, err := s.queries.AllShipmentItems.Handle(ctx.Request().Context(), queries.NewGetAllShipmentItemsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toShipmentItemRows(items))
}

// CreateShipmentItem handles POST /api/shipment-items.
func (s *Server) CreateShipmentItem(ctx echo.Context) error {
	var req shipmentItemRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.NewID(req.ShipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentItemCommand(
		shipmentID, req.Description, req.Quantity, req.Weight, req.Volume, req.ItemValue,
		req.IsHazardous, req.IsFragile)
	if err != nil {
		return fail(ctx, err)
	}

	itemID, err := s.commands.CreateShipmentItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "item_id", itemID)
}

// UpdateShipmentItem handles PUT /api/shipment-items/:id.
func (s *Server) UpdateShipmentItem(ctx echo.Context) error {
	itemID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req shipmentItemRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.NewID(req.ShipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentItemCommand(
		itemID, shipmentID, req.Description, req.Quantity, req.Weight, req.Volume, req.ItemValue,
		req.IsHazardous, req.IsFragile)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateShipmentItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteShipmentItem handles DELETE /api/shipment-items/:id.
func (s *Server) DeleteShipmentItem(ctx echo.Context) error {
	itemID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentItemCommand(itemID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteShipmentItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

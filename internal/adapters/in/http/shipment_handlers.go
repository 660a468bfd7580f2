package http

import (
	nethttp "net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

type shipmentRequest struct {
	TrackingNumber      string  `json:"tracking_number"`
	CustomerID          int64   `json:"customer_id"`
	OriginID            int64   `json:"origin_id"`
	DestinationID       int64   `json:"destination_id"`
	RouteID             *int64  `json:"route_id"`
	VehicleID           *int64  `json:"vehicle_id"`
	DriverID            *int64  `json:"driver_id"`
	Status              string  `json:"status"`
	TotalWeight         float64 `json:"total_weight"`
	TotalVolume         float64 `json:"total_volume"`
	ShipmentValue       float64 `json:"shipment_value"`
	InsuranceRequired   bool    `json:"insurance_required"`
	SpecialInstructions string  `json:"special_instructions"`
	PickupDate          string  `json:"pickup_date"`
	EstimatedDelivery   string  `json:"estimated_delivery"`
	ActualDelivery      string  `json:"actual_delivery"`
}

func (r shipmentRequest) status() (shipment.Status, error) {
	if r.Status == "" {
		return shipment.StatusPending, nil
	}
	return shipment.NewStatusFromString(r.Status)
}

func (r shipmentRequest) details() (shipment.Details, error) {
	routeID, err := optionalID(r.RouteID)
	if err != nil {
		return shipment.Details{}, err
	}
	vehicleID, err := optionalID(r.VehicleID)
	if err != nil {
		return shipment.Details{}, err
	}
	driverID, err := optionalID(r.DriverID)
	if err != nil {
		return shipment.Details{}, err
	}
	pickupDate, err := parseOptionalTime(r.PickupDate, "pickup_date")
	if err != nil {
		return shipment.Details{}, err
	}
	estimatedDelivery, err := parseOptionalTime(r.EstimatedDelivery, "estimated_delivery")
	if err != nil {
		return shipment.Details{}, err
	}
	actualDelivery, err := parseOptionalTime(r.ActualDelivery, "actual_delivery")
	if err != nil {
		return shipment.Details{}, err
	}

	return shipment.Details{
		RouteID:             routeID,
		VehicleID:           vehicleID,
		DriverID:            driverID,
		InsuranceRequired:   r.InsuranceRequired,
		SpecialInstructions: r.SpecialInstructions,
		PickupDate:          pickupDate,
		EstimatedDelivery:   estimatedDelivery,
		ActualDelivery:      actualDelivery,
	}, nil
}

func (r shipmentRequest) totals() shipment.Totals {
	return shipment.Totals{Weight: r.TotalWeight, Volume: r.TotalVolume, Value: r.ShipmentValue}
}

// GetShipments handles GET /api/shipments, optionally scoped with the
// user_id and user_type query parameters.
func (s *Server) GetShipments(ctx echo.Context) error {
	query := queries.NewGetShipmentsQuery()

	if rawUserID := ctx.QueryParam("user_id"); rawUserID != "" {
		parsed, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			return failBadRequest(ctx, "invalid user_id")
		}
		userID, err := kernel.NewID(parsed)
		if err != nil {
			return fail(ctx, err)
		}

		query, err = queries.NewGetShipmentsQueryForUser(userID, account.UserType(ctx.QueryParam("user_type")))
		if err != nil {
			return fail(ctx, err)
		}
	}

	shipments, err := s.queries.Shipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toShipmentListItems(shipments))
}

// GetShipment handles GET /api/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	detail, err := s.queries.Shipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toShipmentDetail(detail))
}

// GetShipmentByTrackingNumber handles GET /api/shipments/tracking/:tracking_number.
func (s *Server) GetShipmentByTrackingNumber(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByTrackingNumberQuery(ctx.Param("tracking_number"))
	if err != nil {
		return fail(ctx, err)
	}

	detail, err := s.queries.ShipmentByTrackingNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toShipmentDetail(detail))
}

// CreateShipment handles POST /api/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req shipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	return s.createShipment(ctx, req)
}

// CreateShipmentStrict handles POST /api/shipments/create: the same
// operation, but missing required fields are reported by name before the
// command is built.
func (s *Server) CreateShipmentStrict(ctx echo.Context) error {
	var req shipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	required := []struct {
		name    string
		missing bool
	}{
		{"tracking_number", req.TrackingNumber == ""},
		{"customer_id", req.CustomerID == 0},
		{"origin_id", req.OriginID == 0},
		{"destination_id", req.DestinationID == 0},
	}
	for _, field := range required {
		if field.missing {
			return failBadRequest(ctx, "missing required field: "+field.name)
		}
	}

	return s.createShipment(ctx, req)
}

func (s *Server) createShipment(ctx echo.Context, req shipmentRequest) error {
	customerID, err := kernel.NewID(req.CustomerID)
	if err != nil {
		return fail(ctx, err)
	}
	originID, err := kernel.NewID(req.OriginID)
	if err != nil {
		return fail(ctx, err)
	}
	destinationID, err := kernel.NewID(req.DestinationID)
	if err != nil {
		return fail(ctx, err)
	}
	status, err := req.status()
	if err != nil {
		return fail(ctx, err)
	}
	details, err := req.details()
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.TrackingNumber, customerID, originID, destinationID, status, req.totals(), details)
	if err != nil {
		return fail(ctx, err)
	}

	shipmentID, err := s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "shipment_id", shipmentID)
}

// UpdateShipment handles PUT /api/shipments/:id and answers with the
// re-joined updated record. The tracking number is immutable and ignored
// when present in the body.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req shipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.NewID(req.CustomerID)
	if err != nil {
		return fail(ctx, err)
	}
	originID, err := kernel.NewID(req.OriginID)
	if err != nil {
		return fail(ctx, err)
	}
	destinationID, err := kernel.NewID(req.DestinationID)
	if err != nil {
		return fail(ctx, err)
	}
	status, err := req.status()
	if err != nil {
		return fail(ctx, err)
	}
	details, err := req.details()
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID, customerID, originID, destinationID, status, req.totals(), details)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	detail, err := s.queries.Shipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toShipmentDetail(detail))
}

// DeleteShipment handles DELETE /api/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// GetItemsOfShipment handles GET /api/shipments/:id/items.
func (s *Server) GetItemsOfShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetShipmentItemsQuery(shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	items, err := s.queries.ShipmentItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toShipmentItemRows(items))
}

// GetEventsOfShipment handles GET /api/shipments/:id/events.
func (s *Server) GetEventsOfShipment(ctx echo.Context) error {
	return s.shipmentTimeline(ctx)
}

// GetShipmentTracking handles GET /api/shipment/:id/tracking.
func (s *Server) GetShipmentTracking(ctx echo.Context) error {
	return s.shipmentTimeline(ctx)
}

func (s *Server) shipmentTimeline(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetShipmentTrackingQuery(shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	events, err := s.queries.ShipmentTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toTrackingEventRows(events))
}

package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const shipmentDetailSQL = `
	SELECT
		s.shipment_id,
		s.tracking_number,
		s.status,
		s.customer_id,
		u.full_name AS customer_name,
		c.company_name,
		s.origin_id,
		CONCAT(o.city, ', ', o.state) AS origin_location,
		s.destination_id,
		CONCAT(d.city, ', ', d.state) AS destination_location,
		s.route_id,
		s.vehicle_id,
		v.license_plate,
		v.make,
		v.model,
		s.driver_id,
		du.full_name AS driver_name,
		s.total_weight,
		s.total_volume,
		s.shipment_value,
		s.insurance_required,
		COALESCE(s.special_instructions, '') AS special_instructions,
		s.pickup_date,
		s.estimated_delivery,
		s.actual_delivery,
		s.created_at
	FROM shipments s
	JOIN locations o ON s.origin_id = o.location_id
	JOIN locations d ON s.destination_id = d.location_id
	JOIN customers c ON s.customer_id = c.customer_id
	JOIN users u ON c.user_id = u.user_id
	LEFT JOIN vehicles v ON s.vehicle_id = v.vehicle_id
	LEFT JOIN drivers dr ON s.driver_id = dr.driver_id
	LEFT JOIN users du ON dr.user_id = du.user_id
`

// GetShipmentQueryHandler retrieves the shipment detail read model by row
// id, including its line items and tracking timeline.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment detail
// queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no
// shipment has the given id.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		shipmentDetailSQL+` WHERE s.shipment_id = ?`,
		query.ShipmentID().Int64(),
	).Row()

	detail, err := scanShipmentDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment_id", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return h.attachChildren(ctx, detail)
}

func (h GetShipmentQueryHandler) attachChildren(
	ctx context.Context,
	detail GetShipmentQueryResponse,
) (GetShipmentQueryResponse, error) {
	items, err := fetchShipmentItems(ctx, h.db, detail.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	detail.Items = items

	events, err := fetchTrackingEvents(ctx, h.db, &detail.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	detail.TrackingEvents = events

	return detail, nil
}

// GetShipmentByTrackingNumberQueryHandler retrieves the same detail read
// model keyed by tracking number.
type GetShipmentByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for
// tracking-number lookups.
func NewGetShipmentByTrackingNumberQueryHandler(db *gorm.DB) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no
// shipment carries the given tracking number.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		shipmentDetailSQL+` WHERE s.tracking_number = ?`,
		query.TrackingNumber(),
	).Row()

	detail, err := scanShipmentDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("tracking_number", query.TrackingNumber())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	handler := GetShipmentQueryHandler{db: h.db}

	return handler.attachChildren(ctx, detail)
}

func scanShipmentDetail(row *sql.Row) (GetShipmentQueryResponse, error) {
	var detail GetShipmentQueryResponse
	var (
		id, customerID, originID, destinationID int64
		routeID, vehicleID, driverID            sql.NullInt64
		status                                  string
		licensePlate, vehicleMake, vehicleModel sql.NullString
		driverName                              sql.NullString
		pickupDate, estimatedDelivery           sql.NullTime
		actualDelivery                          sql.NullTime
	)

	err := row.Scan(
		&id,
		&detail.TrackingNumber,
		&status,
		&customerID,
		&detail.CustomerName,
		&detail.CompanyName,
		&originID,
		&detail.OriginLocation,
		&destinationID,
		&detail.DestinationLocation,
		&routeID,
		&vehicleID,
		&licensePlate,
		&vehicleMake,
		&vehicleModel,
		&driverID,
		&driverName,
		&detail.TotalWeight,
		&detail.TotalVolume,
		&detail.ShipmentValue,
		&detail.InsuranceRequired,
		&detail.SpecialInstructions,
		&pickupDate,
		&estimatedDelivery,
		&actualDelivery,
		&detail.CreatedAt,
	)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if detail.ID, err = kernel.NewID(id); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if detail.CustomerID, err = kernel.NewID(customerID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if detail.OriginID, err = kernel.NewID(originID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if detail.DestinationID, err = kernel.NewID(destinationID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if detail.RouteID, err = optionalID(routeID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if detail.VehicleID, err = optionalID(vehicleID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if detail.DriverID, err = optionalID(driverID); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	detail.Status = shipment.Status(status)
	detail.LicensePlate = licensePlate.String
	detail.VehicleMake = vehicleMake.String
	detail.VehicleModel = vehicleModel.String
	detail.DriverName = driverName.String
	detail.PickupDate = optionalTime(pickupDate)
	detail.EstimatedDelivery = optionalTime(estimatedDelivery)
	detail.ActualDelivery = optionalTime(actualDelivery)

	return detail, nil
}

func optionalID(value sql.NullInt64) (*kernel.ID, error) {
	if !value.Valid {
		return nil, nil
	}

	id, err := kernel.NewID(value.Int64)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func optionalTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}

	t := value.Time

	return &t
}

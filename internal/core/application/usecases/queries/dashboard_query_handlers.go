package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetCustomerDashboardQueryHandler reads the customer dashboard from the
// database.
type GetCustomerDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerDashboardQueryHandler creates a handler for customer
// dashboard queries.
func NewGetCustomerDashboardQueryHandler(db *gorm.DB) GetCustomerDashboardQueryHandler {
	return GetCustomerDashboardQueryHandler{db: db}
}

// Handle executes the dashboard queries for one customer.
func (h GetCustomerDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerDashboardQuery,
) (GetCustomerDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerDashboardQueryResponse{}, err
	}

	var resp GetCustomerDashboardQueryResponse
	userID := query.UserID().Int64()

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(SUM(shipment_value), 0)
		FROM shipments
		WHERE customer_id IN (SELECT customer_id FROM customers WHERE user_id = ?)
	`, userID).Row()
	if err := row.Scan(&resp.TotalShipments, &resp.TotalValue); err != nil {
		return GetCustomerDashboardQueryResponse{}, err
	}

	breakdown, err := fetchBreakdown(ctx, h.db, `
		SELECT status, COUNT(*)
		FROM shipments
		WHERE customer_id IN (SELECT customer_id FROM customers WHERE user_id = ?)
		GROUP BY status
	`, userID)
	if err != nil {
		return GetCustomerDashboardQueryResponse{}, err
	}
	resp.ShipmentsByStatus = breakdown

	resp.RecentShipments, err = fetchShipmentRows(ctx, h.db, `
		WHERE s.customer_id IN (SELECT customer_id FROM customers WHERE user_id = ?)
		ORDER BY s.created_at DESC
		LIMIT 5
	`, userID)
	if err != nil {
		return GetCustomerDashboardQueryResponse{}, err
	}

	return resp, nil
}

// GetDriverDashboardQueryHandler reads the driver dashboard from the
// database.
type GetDriverDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverDashboardQueryHandler creates a handler for driver
// dashboard queries.
func NewGetDriverDashboardQueryHandler(db *gorm.DB) GetDriverDashboardQueryHandler {
	return GetDriverDashboardQueryHandler{db: db}
}

// Handle executes the dashboard queries for one driver.
func (h GetDriverDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDashboardQuery,
) (GetDriverDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	var resp GetDriverDashboardQueryResponse
	userID := query.UserID().Int64()

	var err error
	resp.ActiveShipments, err = fetchShipmentRows(ctx, h.db, `
		WHERE s.driver_id IN (SELECT driver_id FROM drivers WHERE user_id = ?)
		AND s.status NOT IN ('delivered', 'returned')
		ORDER BY s.created_at DESC
	`, userID)
	if err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM shipments
		WHERE driver_id IN (SELECT driver_id FROM drivers WHERE user_id = ?)
		AND status = 'delivered'
	`, userID).Row()
	if err = row.Scan(&resp.CompletedDeliveries); err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	return resp, nil
}

// GetDriverPerformanceQueryHandler reads the driver performance record
// from the database.
type GetDriverPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverPerformanceQueryHandler creates a handler for driver
// performance queries.
func NewGetDriverPerformanceQueryHandler(db *gorm.DB) GetDriverPerformanceQueryHandler {
	return GetDriverPerformanceQueryHandler{db: db}
}

// Handle executes the performance query for one driver.
func (h GetDriverPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetDriverPerformanceQuery,
) (GetDriverPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverPerformanceQueryResponse{}, err
	}

	var resp GetDriverPerformanceQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (
				WHERE actual_delivery IS NOT NULL
				AND estimated_delivery IS NOT NULL
				AND actual_delivery <= estimated_delivery
			)
		FROM shipments
		WHERE driver_id = ? AND status = 'delivered'
	`, query.DriverID().Int64()).Row()
	if err := row.Scan(&resp.DeliveredShipments, &resp.OnTimeDeliveries); err != nil {
		return GetDriverPerformanceQueryResponse{}, err
	}

	if resp.DeliveredShipments > 0 {
		resp.OnTimeRatio = float64(resp.OnTimeDeliveries) / float64(resp.DeliveredShipments)
	}

	return resp, nil
}

// fetchShipmentRows loads shipment list rows with an extra WHERE/ORDER
// clause appended to the base list query. The clause must only use
// placeholders for its arguments.
func fetchShipmentRows(ctx context.Context, db *gorm.DB, clause string, args ...any) ([]GetShipmentsQueryResponse, error) {
	shipments := make([]GetShipmentsQueryResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			s.shipment_id,
			s.tracking_number,
			s.status,
			CONCAT(l1.city, ', ', l1.state) AS origin,
			CONCAT(l2.city, ', ', l2.state) AS destination,
			s.created_at
		FROM shipments s
		JOIN locations l1 ON s.origin_id = l1.location_id
		JOIN locations l2 ON s.destination_id = l2.location_id
	`+clause, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShipmentsQueryResponse
		var id int64
		var status string

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&status,
			&resp.Origin,
			&resp.Destination,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		resp.Status = shipment.Status(status)
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

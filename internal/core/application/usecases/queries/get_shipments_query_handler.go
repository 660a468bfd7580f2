package queries

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves shipment list rows from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query. Rows come back newest first; a scoped query
// filters through the customers or drivers table to resolve the user's
// shipments.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
	`
	var args []any

	if query.UserID() != nil {
		switch query.UserType() {
		case account.UserTypeCustomer:
			sqlQuery += `
		WHERE s.customer_id IN (SELECT customer_id FROM customers WHERE user_id = ?)
	`
		case account.UserTypeDriver:
			sqlQuery += `
		WHERE s.driver_id IN (SELECT driver_id FROM drivers WHERE user_id = ?)
	`
		}
		args = append(args, query.UserID().Int64())
	}

	sqlQuery += `
		ORDER BY s.created_at DESC
	`

	shipments := make([]GetShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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

		shipmentID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.Status = shipment.Status(status)
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

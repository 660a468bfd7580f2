package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetWarehousesQueryIsNotConstructed = errors.New(
		"GetWarehousesQuery must be created via NewGetWarehousesQuery constructor",
	)
)

// GetWarehousesQuery retrieves every warehouse with its full address
// rendered as a display string.
type GetWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehousesQuery creates the warehouse list query.
func NewGetWarehousesQuery() GetWarehousesQuery {
	return GetWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehousesQueryIsNotConstructed)
}

// GetWarehousesQueryResponse is one warehouse in the read model.
type GetWarehousesQueryResponse struct {
	ID               kernel.ID
	WarehouseName    string
	Capacity         float64
	Location         string
	CurrentOccupancy float64
}

// GetWarehousesQueryHandler reads the warehouse list from the database.
type GetWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehousesQueryHandler creates a handler for warehouse list
// queries.
func NewGetWarehousesQueryHandler(db *gorm.DB) GetWarehousesQueryHandler {
	return GetWarehousesQueryHandler{db: db}
}

// Handle executes the query, ordered by warehouse id.
func (h GetWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetWarehousesQuery,
) ([]GetWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.warehouse_id,
			w.warehouse_name,
			w.capacity,
			CONCAT(l.address, ', ', l.city, ', ', l.state) AS location,
			w.current_occupancy
		FROM warehouses w
		JOIN locations l ON w.location_id = l.location_id
		ORDER BY w.warehouse_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWarehousesQueryResponse
		var id int64

		err = rows.Scan(
			&id,
			&resp.WarehouseName,
			&resp.Capacity,
			&resp.Location,
			&resp.CurrentOccupancy,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}

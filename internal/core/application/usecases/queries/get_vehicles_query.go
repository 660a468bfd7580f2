package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetVehiclesQueryIsNotConstructed = errors.New(
		"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
	)
)

// GetVehiclesQuery retrieves the fleet list with each vehicle's current
// location rendered as a display string.
type GetVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates the fleet list query.
func NewGetVehiclesQuery() GetVehiclesQuery {
	return GetVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// GetVehiclesQueryResponse is one vehicle in the fleet read model.
// CurrentLocation is empty when the vehicle has no known position.
type GetVehiclesQueryResponse struct {
	ID              kernel.ID
	LicensePlate    string
	Make            string
	Model           string
	Year            int
	VehicleType     string
	Status          vehicle.Status
	CapacityKg      float64
	CurrentLocation string
}

// GetVehiclesQueryHandler reads the fleet list from the database.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for fleet list queries.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the query, ordered by vehicle id.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.vehicle_id,
			v.license_plate,
			v.make,
			v.model,
			v.year,
			v.vehicle_type,
			v.status,
			v.capacity_kg,
			CONCAT(l.city, ', ', l.state) AS current_location
		FROM vehicles v
		LEFT JOIN locations l ON v.current_location_id = l.location_id
		ORDER BY v.vehicle_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetVehiclesQueryResponse
		var id int64
		var status string
		var currentLocation sql.NullString

		err = rows.Scan(
			&id,
			&resp.LicensePlate,
			&resp.Make,
			&resp.Model,
			&resp.Year,
			&resp.VehicleType,
			&status,
			&resp.CapacityKg,
			&currentLocation,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		resp.Status = vehicle.Status(status)
		resp.CurrentLocation = currentLocation.String
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

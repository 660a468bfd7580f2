package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetLocationsQueryIsNotConstructed = errors.New(
		"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
	)
)

// GetLocationsQuery retrieves every location in the catalog.
type GetLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates the location list query.
func NewGetLocationsQuery() GetLocationsQuery {
	return GetLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

// GetLocationsQueryResponse is one location in the read model.
// Coordinates are nil when they were never captured.
type GetLocationsQueryResponse struct {
	ID           kernel.ID
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
	Latitude     *float64
	Longitude    *float64
	LocationType string
}

// GetLocationsQueryHandler reads the location catalog from the database.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationsQueryHandler creates a handler for location list queries.
func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle executes the query, ordered by city then state.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]GetLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			location_id,
			address,
			city,
			state,
			country,
			postal_code,
			latitude,
			longitude,
			location_type
		FROM locations
		ORDER BY city, state
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLocationsQueryResponse
		var id int64
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(
			&id,
			&resp.Address,
			&resp.City,
			&resp.State,
			&resp.Country,
			&resp.PostalCode,
			&latitude,
			&longitude,
			&resp.LocationType,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		if latitude.Valid {
			resp.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			resp.Longitude = &longitude.Float64
		}
		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

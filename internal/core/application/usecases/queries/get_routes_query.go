package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetRoutesQueryIsNotConstructed = errors.New(
		"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
	)
)

// GetRoutesQuery retrieves the route catalog with both endpoints rendered
// as display strings.
type GetRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates the route list query.
func NewGetRoutesQuery() GetRoutesQuery {
	return GetRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// GetRoutesQueryResponse is one route in the read model.
type GetRoutesQueryResponse struct {
	ID                   kernel.ID
	RouteName            string
	OriginID             kernel.ID
	DestinationID        kernel.ID
	DistanceKm           float64
	EstimatedDurationMin int
	Status               string
	HazardLevel          string
	StartLocation        string
	EndLocation          string
}

// GetRoutesQueryHandler reads the route catalog from the database.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route list queries.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query, ordered by route name.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.route_id,
			r.route_name,
			r.origin_id,
			r.destination_id,
			r.distance_km,
			r.estimated_duration_min,
			r.status,
			r.hazard_level,
			CONCAT(o.city, ', ', o.state) AS start_location,
			CONCAT(d.city, ', ', d.state) AS end_location
		FROM routes r
		JOIN locations o ON r.origin_id = o.location_id
		JOIN locations d ON r.destination_id = d.location_id
		ORDER BY r.route_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRoutesQueryResponse
		var id, originID, destinationID int64

		err = rows.Scan(
			&id,
			&resp.RouteName,
			&originID,
			&destinationID,
			&resp.DistanceKm,
			&resp.EstimatedDurationMin,
			&resp.Status,
			&resp.HazardLevel,
			&resp.StartLocation,
			&resp.EndLocation,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		if resp.OriginID, err = kernel.NewID(originID); err != nil {
			return nil, err
		}
		if resp.DestinationID, err = kernel.NewID(destinationID); err != nil {
			return nil, err
		}
		routes = append(routes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

// Package routerepo persists the route catalog and its waypoints.
package routerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO maps a route to its table row.
type RouteDTO struct {
	ID                   int64   `gorm:"column:route_id;primaryKey;autoIncrement"`
	RouteName            string  `gorm:"column:route_name"`
	OriginID             int64   `gorm:"column:origin_id"`
	DestinationID        int64   `gorm:"column:destination_id"`
	DistanceKm           float64 `gorm:"column:distance_km"`
	EstimatedDurationMin int     `gorm:"column:estimated_duration_min"`
	Status               string  `gorm:"column:status"`
	HazardLevel          string  `gorm:"column:hazard_level"`
}

// TableName overrides the default GORM table name.
func (RouteDTO) TableName() string {
	return "routes"
}

// WaypointDTO maps a waypoint to its table row.
type WaypointDTO struct {
	ID            int64 `gorm:"column:waypoint_id;primaryKey;autoIncrement"`
	RouteID       int64 `gorm:"column:route_id;index"`
	LocationID    int64 `gorm:"column:location_id"`
	SequenceOrder int   `gorm:"column:sequence_order"`
}

// TableName overrides the default GORM table name.
func (WaypointDTO) TableName() string {
	return "waypoints"
}

func fromDomain(rt *route.Route) RouteDTO {
	return RouteDTO{
		ID:                   rt.ID.Int64(),
		RouteName:            rt.RouteName,
		OriginID:             rt.OriginID.Int64(),
		DestinationID:        rt.DestinationID.Int64(),
		DistanceKm:           rt.DistanceKm,
		EstimatedDurationMin: rt.EstimatedDurationMin,
		Status:               rt.Status,
		HazardLevel:          rt.HazardLevel,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	originID, err := kernel.NewID(dto.OriginID)
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.NewID(dto.DestinationID)
	if err != nil {
		return nil, err
	}

	rt := &route.Route{
		ID:                   id,
		RouteName:            dto.RouteName,
		OriginID:             originID,
		DestinationID:        destinationID,
		DistanceKm:           dto.DistanceKm,
		EstimatedDurationMin: dto.EstimatedDurationMin,
		Status:               dto.Status,
		HazardLevel:          dto.HazardLevel,
	}
	if err := rt.Validate(); err != nil {
		return nil, err
	}

	return rt, nil
}

func waypointFromDomain(w *route.Waypoint) WaypointDTO {
	return WaypointDTO{
		ID:            w.ID.Int64(),
		RouteID:       w.RouteID.Int64(),
		LocationID:    w.LocationID.Int64(),
		SequenceOrder: w.SequenceOrder,
	}
}

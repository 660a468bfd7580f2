package routerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

var updatableColumns = map[string]struct{}{
	"route_name":             {},
	"origin_id":              {},
	"destination_id":         {},
	"distance_km":            {},
	"estimated_duration_min": {},
	"status":                 {},
	"hazard_level":           {},
}

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add saves a new route and returns the generated identifier.
func (r *GormRouteRepository) Add(ctx context.Context, rt *route.Route) (kernel.ID, error) {
	if err := rt.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(rt)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a route by its identifier.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "route_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateFields applies a partial update against the column allow-list.
func (r *GormRouteRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errs.NewValueIsRequiredError("fields to update")
	}
	for column := range fields {
		if _, ok := updatableColumns[column]; !ok {
			return errs.NewValueIsInvalidError(column)
		}
	}

	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("route_id = ?", id.Int64()).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route_id", id)
	}

	return nil
}

// Delete removes a route by its identifier.
func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RouteDTO{}, "route_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route_id", id)
	}

	return nil
}

// AddWaypoint saves a new waypoint and returns the generated identifier.
func (r *GormRouteRepository) AddWaypoint(ctx context.Context, w *route.Waypoint) (kernel.ID, error) {
	if err := w.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := waypointFromDomain(w)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// DeleteWaypointsByRoute removes all waypoints of the route. Deleting zero
// rows is fine, a route may have no waypoints.
func (r *GormRouteRepository) DeleteWaypointsByRoute(ctx context.Context, routeID kernel.ID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&WaypointDTO{}, "route_id = ?", routeID.Int64()).Error
}

// CountWaypointsByRoute returns the number of waypoints along the route.
func (r *GormRouteRepository) CountWaypointsByRoute(ctx context.Context, routeID kernel.ID) (int64, error) {
	if err := routeID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&WaypointDTO{}).
		Where("route_id = ?", routeID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByLocation returns the number of routes touching the location as
// origin or destination.
func (r *GormRouteRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	if err := locationID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("origin_id = ? OR destination_id = ?", locationID.Int64(), locationID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountWaypointsByLocation returns the number of waypoints at the location.
func (r *GormRouteRepository) CountWaypointsByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	if err := locationID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&WaypointDTO{}).
		Where("location_id = ?", locationID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

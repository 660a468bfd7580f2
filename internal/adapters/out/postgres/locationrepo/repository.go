package locationrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/location"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

var updatableColumns = map[string]struct{}{
	"address":       {},
	"city":          {},
	"state":         {},
	"country":       {},
	"postal_code":   {},
	"latitude":      {},
	"longitude":     {},
	"location_type": {},
}

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add saves a new location and returns the generated identifier.
func (r *GormLocationRepository) Add(ctx context.Context, loc *location.Location) (kernel.ID, error) {
	if err := loc.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(loc)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a location by its identifier.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.ID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "location_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateFields applies a partial update against the column allow-list.
func (r *GormLocationRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
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
		Model(&LocationDTO{}).
		Where("location_id = ?", id.Int64()).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location_id", id)
	}

	return nil
}

// SetLocationType overwrites the location type classification.
func (r *GormLocationRepository) SetLocationType(ctx context.Context, id kernel.ID, locationType string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if locationType == "" {
		return errs.NewValueIsRequiredError("location_type")
	}

	result := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("location_id = ?", id.Int64()).
		Update("location_type", locationType)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location_id", id)
	}

	return nil
}

// Delete removes a location by its identifier.
func (r *GormLocationRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LocationDTO{}, "location_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location_id", id)
	}

	return nil
}

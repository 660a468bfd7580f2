package driverrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// updatableColumns is the fixed allow-list for partial updates.
var updatableColumns = map[string]struct{}{
	"license_number":         {},
	"license_expiry":         {},
	"medical_check_date":     {},
	"training_certification": {},
	"status":                 {},
}

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver and returns the generated identifier.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewDuplicateKeyError("user_id", aggregate.UserID())
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a driver by its identifier.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// SetStatus overwrites the availability status.
func (r *GormDriverRepository) SetStatus(ctx context.Context, id kernel.ID, status driver.Status) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("driver_id = ?", id.Int64()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver_id", id)
	}

	return nil
}

// UpdateFields applies a partial update against the column allow-list.
func (r *GormDriverRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
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
		Model(&DriverDTO{}).
		Where("driver_id = ?", id.Int64()).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver_id", id)
	}

	return nil
}

// Delete removes a driver by its identifier.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DriverDTO{}, "driver_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver_id", id)
	}

	return nil
}

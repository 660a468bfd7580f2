package warehouserepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

var updatableColumns = map[string]struct{}{
	"warehouse_name":    {},
	"capacity":          {},
	"current_occupancy": {},
	"manager_id":        {},
	"operating_hours":   {},
}

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Add saves a new warehouse and returns the generated identifier.
func (r *GormWarehouseRepository) Add(ctx context.Context, wh *warehouse.Warehouse) (kernel.ID, error) {
	if err := wh.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(wh)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewDuplicateKeyError("location_id", wh.LocationID)
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a warehouse by its identifier.
func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "warehouse_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByLocation reports whether the location already hosts a warehouse.
func (r *GormWarehouseRepository) ExistsByLocation(ctx context.Context, locationID kernel.ID) (bool, error) {
	if err := locationID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("location_id = ?", locationID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UpdateFields applies a partial update against the column allow-list.
func (r *GormWarehouseRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
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
		Model(&WarehouseDTO{}).
		Where("warehouse_id = ?", id.Int64()).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse_id", id)
	}

	return nil
}

// Delete removes a warehouse by its identifier.
func (r *GormWarehouseRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WarehouseDTO{}, "warehouse_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse_id", id)
	}

	return nil
}

// CountByLocation returns the number of warehouses at the location.
func (r *GormWarehouseRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	if err := locationID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("location_id = ?", locationID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

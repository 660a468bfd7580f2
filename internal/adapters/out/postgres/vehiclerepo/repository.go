package vehiclerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// updatableColumns is the fixed allow-list for partial updates. Field maps
// are validated against it so a request body can never smuggle an
// arbitrary column name into the statement.
var updatableColumns = map[string]struct{}{
	"license_plate":        {},
	"make":                 {},
	"model":                {},
	"year":                 {},
	"capacity_kg":          {},
	"vehicle_type":         {},
	"status":               {},
	"current_location_id":  {},
	"last_inspection_date": {},
}

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle and returns the generated identifier.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewDuplicateKeyError("license_plate", aggregate.LicensePlate())
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a vehicle by its identifier.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "vehicle_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByLicensePlate reports whether any vehicle carries the license
// plate.
func (r *GormVehicleRepository) ExistsByLicensePlate(ctx context.Context, licensePlate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("license_plate = ?", licensePlate).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// SetStatus overwrites the availability status.
func (r *GormVehicleRepository) SetStatus(ctx context.Context, id kernel.ID, status vehicle.Status) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("vehicle_id = ?", id.Int64()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle_id", id)
	}

	return nil
}

// UpdateFields applies a partial update against the column allow-list.
func (r *GormVehicleRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
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
		Model(&VehicleDTO{}).
		Where("vehicle_id = ?", id.Int64()).
		Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyError("license_plate", fields["license_plate"])
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle_id", id)
	}

	return nil
}

// Delete removes a vehicle by its identifier.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "vehicle_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle_id", id)
	}

	return nil
}

// CountByLocation returns the number of vehicles positioned at the
// location.
func (r *GormVehicleRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("current_location_id = ?", locationID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

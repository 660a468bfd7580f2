package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment and returns the generated identifier.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewDuplicateKeyError("tracking_number", aggregate.TrackingNumber())
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a shipment by its identifier.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByTrackingNumber reports whether any shipment carries the tracking
// number.
func (r *GormShipmentRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Update overwrites an existing shipment row with the aggregate's state.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyError("tracking_number", aggregate.TrackingNumber())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment_id", aggregate.ID())
	}

	return nil
}

// Delete removes a shipment by its identifier.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "shipment_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment_id", id)
	}

	return nil
}

// CountByVehicle returns the number of shipments referencing the vehicle.
func (r *GormShipmentRepository) CountByVehicle(ctx context.Context, vehicleID kernel.ID) (int64, error) {
	return r.countWhere(ctx, "vehicle_id = ?", vehicleID.Int64())
}

// CountByDriver returns the number of shipments referencing the driver.
func (r *GormShipmentRepository) CountByDriver(ctx context.Context, driverID kernel.ID) (int64, error) {
	return r.countWhere(ctx, "driver_id = ?", driverID.Int64())
}

// CountByCustomer returns the number of shipments owned by the customer.
func (r *GormShipmentRepository) CountByCustomer(ctx context.Context, customerID kernel.ID) (int64, error) {
	return r.countWhere(ctx, "customer_id = ?", customerID.Int64())
}

// CountByRoute returns the number of shipments planned over the route.
func (r *GormShipmentRepository) CountByRoute(ctx context.Context, routeID kernel.ID) (int64, error) {
	return r.countWhere(ctx, "route_id = ?", routeID.Int64())
}

// CountByLocation returns the number of shipments whose origin or
// destination is the location.
func (r *GormShipmentRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	return r.countWhere(ctx, "origin_id = ? OR destination_id = ?", locationID.Int64(), locationID.Int64())
}

func (r *GormShipmentRepository) countWhere(ctx context.Context, condition string, args ...any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where(condition, args...).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// GormShipmentItemRepository implements ports.ShipmentItemRepository using
// GORM.
type GormShipmentItemRepository struct {
	db *gorm.DB
}

// NewGormShipmentItemRepository creates a new GORM line item repository.
func NewGormShipmentItemRepository(db *gorm.DB) *GormShipmentItemRepository {
	return &GormShipmentItemRepository{db: db}
}

// Add saves a new line item and returns the generated identifier.
func (r *GormShipmentItemRepository) Add(ctx context.Context, item *shipment.Item) (kernel.ID, error) {
	if err := item.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := itemFromDomain(item)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a line item by its identifier.
func (r *GormShipmentItemRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "item_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item_id", id)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetByShipment retrieves all line items owned by the shipment.
func (r *GormShipmentItemRepository) GetByShipment(ctx context.Context, shipmentID kernel.ID) ([]*shipment.Item, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Int64()).
		Order("item_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := itemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// Update overwrites an existing line item row, including a change of the
// owning shipment.
func (r *GormShipmentItemRepository) Update(ctx context.Context, item *shipment.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item_id", item.ID())
	}

	return nil
}

// Delete removes a line item by its identifier.
func (r *GormShipmentItemRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "item_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item_id", id)
	}

	return nil
}

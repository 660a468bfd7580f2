// Package warehouserepo persists warehouses.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseDTO maps a warehouse to its table row.
type WarehouseDTO struct {
	ID               int64   `gorm:"column:warehouse_id;primaryKey;autoIncrement"`
	LocationID       int64   `gorm:"column:location_id;uniqueIndex"`
	WarehouseName    string  `gorm:"column:warehouse_name"`
	Capacity         float64 `gorm:"column:capacity"`
	CurrentOccupancy float64 `gorm:"column:current_occupancy"`
	ManagerID        *int64  `gorm:"column:manager_id"`
	OperatingHours   string  `gorm:"column:operating_hours"`
}

// TableName overrides the default GORM table name.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(wh *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:               wh.ID.Int64(),
		LocationID:       wh.LocationID.Int64(),
		WarehouseName:    wh.WarehouseName,
		Capacity:         wh.Capacity,
		CurrentOccupancy: wh.CurrentOccupancy,
		ManagerID:        optionalInt64(wh.ManagerID),
		OperatingHours:   wh.OperatingHours,
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.NewID(dto.LocationID)
	if err != nil {
		return nil, err
	}
	managerID, err := optionalID(dto.ManagerID)
	if err != nil {
		return nil, err
	}

	wh := &warehouse.Warehouse{
		ID:               id,
		LocationID:       locationID,
		WarehouseName:    dto.WarehouseName,
		Capacity:         dto.Capacity,
		CurrentOccupancy: dto.CurrentOccupancy,
		ManagerID:        managerID,
		OperatingHours:   dto.OperatingHours,
	}
	if err := wh.Validate(); err != nil {
		return nil, err
	}

	return wh, nil
}

func optionalInt64(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	value := id.Int64()
	return &value
}

func optionalID(value *int64) (*kernel.ID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := kernel.NewID(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

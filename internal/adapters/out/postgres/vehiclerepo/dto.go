// Package vehiclerepo persists the vehicle side of the resource pool.
package vehiclerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleDTO is the relational shape of a vehicle.
type VehicleDTO struct {
	ID                 int64      `gorm:"column:vehicle_id;primaryKey;autoIncrement"`
	LicensePlate       string     `gorm:"column:license_plate;type:varchar(20);uniqueIndex;not null"`
	Make               string     `gorm:"column:make;type:varchar(50);not null"`
	Model              string     `gorm:"column:model;type:varchar(50);not null"`
	Year               int        `gorm:"column:year;not null"`
	CapacityKg         float64    `gorm:"column:capacity_kg;not null"`
	VehicleType        string     `gorm:"column:vehicle_type;type:varchar(20);not null"`
	Status             string     `gorm:"column:status;type:varchar(20);not null"`
	CurrentLocationID  *int64     `gorm:"column:current_location_id;index"`
	LastInspectionDate *time.Time `gorm:"column:last_inspection_date"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var currentLocationID *int64
	if aggregate.CurrentLocationID() != nil {
		raw := aggregate.CurrentLocationID().Int64()
		currentLocationID = &raw
	}

	return VehicleDTO{
		ID:                 aggregate.ID().Int64(),
		LicensePlate:       aggregate.LicensePlate(),
		Make:               aggregate.Make(),
		Model:              aggregate.Model(),
		Year:               aggregate.Year(),
		CapacityKg:         aggregate.CapacityKg(),
		VehicleType:        aggregate.VehicleType(),
		Status:             aggregate.Status().String(),
		CurrentLocationID:  currentLocationID,
		LastInspectionDate: aggregate.LastInspectionDate(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var currentLocationID *kernel.ID
	if dto.CurrentLocationID != nil {
		locationID, locErr := kernel.NewID(*dto.CurrentLocationID)
		if locErr != nil {
			return nil, locErr
		}
		currentLocationID = &locationID
	}

	status, err := vehicle.NewStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.LicensePlate,
		dto.Make,
		dto.Model,
		dto.Year,
		dto.CapacityKg,
		dto.VehicleType,
		status,
		currentLocationID,
		dto.LastInspectionDate,
	)
}

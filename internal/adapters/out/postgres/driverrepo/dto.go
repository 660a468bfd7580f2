// Package driverrepo persists the driver side of the resource pool. The
// wrapped user account row lives in accountrepo; commands manage the pair
// inside one transaction.
package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverDTO is the relational shape of a driver.
type DriverDTO struct {
	ID                    int64      `gorm:"column:driver_id;primaryKey;autoIncrement"`
	UserID                int64      `gorm:"column:user_id;uniqueIndex;not null"`
	LicenseNumber         string     `gorm:"column:license_number;type:varchar(50);not null"`
	LicenseExpiry         *time.Time `gorm:"column:license_expiry"`
	MedicalCheckDate      *time.Time `gorm:"column:medical_check_date"`
	TrainingCertification string     `gorm:"column:training_certification;type:varchar(100)"`
	Status                string     `gorm:"column:status;type:varchar(20);not null"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                    aggregate.ID().Int64(),
		UserID:                aggregate.UserID().Int64(),
		LicenseNumber:         aggregate.LicenseNumber(),
		LicenseExpiry:         aggregate.LicenseExpiry(),
		MedicalCheckDate:      aggregate.MedicalCheckDate(),
		TrainingCertification: aggregate.TrainingCertification(),
		Status:                aggregate.Status().String(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	status, err := driver.NewStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		userID,
		dto.LicenseNumber,
		dto.LicenseExpiry,
		dto.MedicalCheckDate,
		dto.TrainingCertification,
		status,
	)
}

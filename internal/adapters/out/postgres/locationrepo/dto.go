// Package locationrepo persists the location registry.
package locationrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/location"
)

// LocationDTO maps a location to its table row.
type LocationDTO struct {
	ID           int64    `gorm:"column:location_id;primaryKey;autoIncrement"`
	Address      string   `gorm:"column:address"`
	City         string   `gorm:"column:city"`
	State        string   `gorm:"column:state"`
	Country      string   `gorm:"column:country"`
	PostalCode   string   `gorm:"column:postal_code"`
	Latitude     *float64 `gorm:"column:latitude"`
	Longitude    *float64 `gorm:"column:longitude"`
	LocationType string   `gorm:"column:location_type"`
}

// TableName overrides the default GORM table name.
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(loc *location.Location) LocationDTO {
	return LocationDTO{
		ID:           loc.ID.Int64(),
		Address:      loc.Address,
		City:         loc.City,
		State:        loc.State,
		Country:      loc.Country,
		PostalCode:   loc.PostalCode,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		LocationType: loc.LocationType,
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	loc := &location.Location{
		ID:           id,
		Address:      dto.Address,
		City:         dto.City,
		State:        dto.State,
		Country:      dto.Country,
		PostalCode:   dto.PostalCode,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		LocationType: dto.LocationType,
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	return loc, nil
}

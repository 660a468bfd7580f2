// Package location models the addressable points almost everything else in
// the system references: customer sites, cities, ports and warehouses.
package location

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Location is an addressable point. Reference data: exported fields,
// invariants checked through Validate.
//
// Deleting a location that is still referenced by a shipment, vehicle,
// route, warehouse, tracking event or waypoint must fail; that guard spans
// aggregates and lives in the application layer.
type Location struct {
	ID           kernel.ID
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
	Latitude     *float64
	Longitude    *float64
	LocationType string
}

// Validate checks the location's required fields and coordinate ranges.
func (l *Location) Validate() error {
	var violations []error

	required := map[string]string{
		"address":       l.Address,
		"city":          l.City,
		"state":         l.State,
		"postal_code":   l.PostalCode,
		"location_type": l.LocationType,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			violations = append(violations, errs.NewValueIsRequiredError(name))
		}
	}

	if l.Latitude != nil && (*l.Latitude < -90 || *l.Latitude > 90) {
		violations = append(violations, errs.NewValueIsOutOfRangeError("latitude", *l.Latitude, -90, 90))
	}
	if l.Longitude != nil && (*l.Longitude < -180 || *l.Longitude > 180) {
		violations = append(violations, errs.NewValueIsOutOfRangeError("longitude", *l.Longitude, -180, 180))
	}

	return errors.Join(violations...)
}

// DisplayName renders the location for joined read views, e.g.
// "Mumbai, Maharashtra".
func (l *Location) DisplayName() string {
	if l.State == "" {
		return l.City
	}
	return l.City + ", " + l.State
}

// Package warehouse models storage facilities attached to locations.
package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Warehouse is a storage facility occupying exactly one location: at most
// one warehouse may exist per location, and registering one promotes the
// location's type to "warehouse". Reference data: exported fields,
// invariants checked through Validate.
type Warehouse struct {
	ID               kernel.ID
	LocationID       kernel.ID
	WarehouseName    string
	Capacity         float64
	CurrentOccupancy float64
	ManagerID        *kernel.ID
	OperatingHours   string
}

// Validate checks the warehouse's required fields, references and the
// occupancy/capacity relation.
func (w *Warehouse) Validate() error {
	var violations []error

	if err := w.LocationID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if strings.TrimSpace(w.WarehouseName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("warehouse_name"))
	}
	if w.Capacity <= 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("capacity", w.Capacity, 1, "+inf"))
	}
	if w.CurrentOccupancy < 0 {
		violations = append(violations,
			errs.NewValueIsOutOfRangeError("current_occupancy", w.CurrentOccupancy, 0, "+inf"))
	}
	if w.Capacity > 0 && w.CurrentOccupancy > w.Capacity {
		violations = append(violations,
			errs.NewValueIsInvalidErrorWithCause("current_occupancy",
				fmt.Errorf("occupancy %v exceeds capacity %v", w.CurrentOccupancy, w.Capacity)))
	}
	if w.ManagerID != nil {
		if err := w.ManagerID.Validate(); err != nil {
			violations = append(violations, err)
		}
	}

	return errors.Join(violations...)
}

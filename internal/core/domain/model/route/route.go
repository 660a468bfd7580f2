// Package route models the optional planning catalog: named routes between
// two locations with distance and duration estimates, plus the ordered
// waypoints along them.
package route

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Route is a planned path between two locations, consumed when estimating
// delivery times. Reference data: exported fields, invariants checked
// through Validate.
//
// Deleting a route referenced by a shipment must fail; otherwise deletion
// cascades to the route's waypoints first. Both rules live in the
// application layer.
type Route struct {
	ID                   kernel.ID
	RouteName            string
	OriginID             kernel.ID
	DestinationID        kernel.ID
	DistanceKm           float64
	EstimatedDurationMin int
	Status               string
	HazardLevel          string
}

// Default attribute values applied when a client omits them.
const (
	DefaultStatus      = "active"
	DefaultHazardLevel = "low"
)

// Validate checks the route's required fields and references.
func (r *Route) Validate() error {
	var violations []error

	if strings.TrimSpace(r.RouteName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("route_name"))
	}
	if err := r.OriginID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := r.DestinationID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if r.DistanceKm <= 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("distance_km", r.DistanceKm, 1, "+inf"))
	}
	if r.EstimatedDurationMin <= 0 {
		violations = append(violations,
			errs.NewValueIsOutOfRangeError("estimated_duration_min", r.EstimatedDurationMin, 1, "+inf"))
	}

	return errors.Join(violations...)
}

// Waypoint is an ordered stop along a route. Waypoints are owned by their
// route and are deleted with it.
type Waypoint struct {
	ID            kernel.ID
	RouteID       kernel.ID
	LocationID    kernel.ID
	SequenceOrder int
}

// Validate checks the waypoint's references and ordering.
func (w *Waypoint) Validate() error {
	var violations []error

	if err := w.RouteID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := w.LocationID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if w.SequenceOrder < 1 {
		violations = append(violations,
			errs.NewValueIsInvalidErrorWithCause("sequence_order",
				fmt.Errorf("%d is not a valid position, waypoints are numbered from 1", w.SequenceOrder)))
	}

	return errors.Join(violations...)
}

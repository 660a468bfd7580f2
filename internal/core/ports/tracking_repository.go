package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the
// append-only tracking log. Events are never updated; removal exists only to
// correct operator mistakes and obliges the caller to re-derive the owning
// shipment's status.
type TrackingEventRepository interface {
	// Add persists a new event and returns its generated identifier.
	Add(ctx context.Context, event *tracking.Event) (kernel.ID, error)

	// Get retrieves an event by its identifier.
	Get(ctx context.Context, id kernel.ID) (*tracking.Event, error)

	// GetLatestByShipment retrieves the event with the latest timestamp for
	// the given shipment. Returns (nil, nil) when the log is empty, which
	// the status recalculation maps to pending.
	GetLatestByShipment(ctx context.Context, shipmentID kernel.ID) (*tracking.Event, error)

	// Delete removes an event by its identifier.
	Delete(ctx context.Context, id kernel.ID) error

	// CountByLocation returns the number of events recorded at the location.
	// Used by the referential guard on location deletion.
	CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error)
}

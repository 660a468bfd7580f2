package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for the location
// registry.
type LocationRepository interface {
	// Add persists a new location and returns its generated identifier.
	Add(ctx context.Context, loc *location.Location) (kernel.ID, error)

	// Get retrieves a location by its identifier.
	Get(ctx context.Context, id kernel.ID) (*location.Location, error)

	// UpdateFields applies a partial update against an allow-list of columns.
	UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error

	// SetLocationType overwrites the location type classification.
	// Used when registering a warehouse promotes its location.
	SetLocationType(ctx context.Context, id kernel.ID, locationType string) error

	// Delete removes a location by its identifier. Callers run the
	// referential guard across all referencing tables first.
	Delete(ctx context.Context, id kernel.ID) error
}

package trackingrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements ports.TrackingEventRepository
// using GORM. Events are insert-and-delete only; there is no update path.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewGormTrackingEventRepository creates a new GORM tracking event
// repository.
func NewGormTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Add saves a new event and returns the generated identifier.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) (kernel.ID, error) {
	if err := event.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(event)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves an event by its identifier.
func (r *GormTrackingEventRepository) Get(ctx context.Context, id kernel.ID) (*tracking.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	if err := r.db.WithContext(ctx).First(&dto, "event_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("event_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByShipment retrieves the newest event for the shipment, or
// (nil, nil) when the log is empty. Ties on the timestamp break towards
// the higher event id, so re-recording at the same instant stays
// deterministic.
func (r *GormTrackingEventRepository) GetLatestByShipment(ctx context.Context, shipmentID kernel.ID) (*tracking.Event, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Int64()).
		Order("event_timestamp DESC, event_id DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an event by its identifier.
func (r *GormTrackingEventRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EventDTO{}, "event_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("event_id", id)
	}

	return nil
}

// CountByLocation returns the number of events recorded at the location.
func (r *GormTrackingEventRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("location_id = ?", locationID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

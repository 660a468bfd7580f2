// Package trackingrepo persists the append-only tracking event log.
package trackingrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// EventDTO is the relational shape of a tracking event.
type EventDTO struct {
	ID             int64     `gorm:"column:event_id;primaryKey;autoIncrement"`
	ShipmentID     int64     `gorm:"column:shipment_id;not null;index"`
	EventType      string    `gorm:"column:event_type;type:varchar(20);not null"`
	LocationID     int64     `gorm:"column:location_id;not null;index"`
	EventTimestamp time.Time `gorm:"column:event_timestamp;not null;index"`
	RecordedBy     int64     `gorm:"column:recorded_by;not null"`
	Notes          string    `gorm:"column:notes;type:text"`
}

// TableName overrides GORM's default naming to use "tracking_events".
func (EventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:             event.ID().Int64(),
		ShipmentID:     event.ShipmentID().Int64(),
		EventType:      event.Type().String(),
		LocationID:     event.LocationID().Int64(),
		EventTimestamp: event.Timestamp(),
		RecordedBy:     event.RecordedBy().Int64(),
		Notes:          event.Notes(),
	}
}

func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.NewID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.NewID(dto.LocationID)
	if err != nil {
		return nil, err
	}
	recordedBy, err := kernel.NewID(dto.RecordedBy)
	if err != nil {
		return nil, err
	}

	eventType, err := tracking.NewEventTypeFromString(dto.EventType)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		id,
		shipmentID,
		eventType,
		locationID,
		recordedBy,
		dto.Notes,
		dto.EventTimestamp,
	)
}

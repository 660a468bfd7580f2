package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetTrackingEventsQueryIsNotConstructed = errors.New(
		"GetTrackingEventsQuery must be created via NewGetTrackingEventsQuery constructor",
	)
	ErrGetShipmentTrackingQueryIsNotConstructed = errors.New(
		"GetShipmentTrackingQuery must be created via NewGetShipmentTrackingQuery constructor",
	)
)

// GetTrackingEventsQuery retrieves the global tracking event log, newest
// first.
type GetTrackingEventsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrackingEventsQuery creates the query over all tracking events.
func NewGetTrackingEventsQuery() GetTrackingEventsQuery {
	return GetTrackingEventsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingEventsQueryIsNotConstructed)
}

// GetShipmentTrackingQuery retrieves one shipment's tracking timeline,
// newest first.
type GetShipmentTrackingQuery struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetShipmentTrackingQuery creates the per-shipment timeline query.
func NewGetShipmentTrackingQuery(shipmentID kernel.ID) (GetShipmentTrackingQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentTrackingQuery{}, err
	}

	return GetShipmentTrackingQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrackingQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose timeline is requested.
func (q GetShipmentTrackingQuery) ShipmentID() kernel.ID { return q.shipmentID }

// GetTrackingEventsQueryResponse is one tracking event in the read model.
// LocationName is a "City, State" display string and RecordedByName the
// full name of the recording user; both are empty when the reference is
// missing.
type GetTrackingEventsQueryResponse struct {
	ID             kernel.ID
	ShipmentID     kernel.ID
	EventType      tracking.EventType
	LocationID     kernel.ID
	LocationName   string
	EventTimestamp time.Time
	RecordedBy     kernel.ID
	RecordedByName string
	Notes          string
}

// GetTrackingEventsQueryHandler reads the global tracking event log.
type GetTrackingEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingEventsQueryHandler creates a handler for the global event
// log query.
func NewGetTrackingEventsQueryHandler(db *gorm.DB) GetTrackingEventsQueryHandler {
	return GetTrackingEventsQueryHandler{db: db}
}

// Handle executes the query, newest events first.
func (h GetTrackingEventsQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingEventsQuery,
) ([]GetTrackingEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchTrackingEvents(ctx, h.db, nil)
}

// GetShipmentTrackingQueryHandler reads one shipment's tracking timeline.
type GetShipmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTrackingQueryHandler creates a handler for per-shipment
// timeline queries.
func NewGetShipmentTrackingQueryHandler(db *gorm.DB) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db}
}

// Handle executes the query, newest events first.
func (h GetShipmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTrackingQuery,
) ([]GetTrackingEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipmentID := query.ShipmentID()

	return fetchTrackingEvents(ctx, h.db, &shipmentID)
}

// fetchTrackingEvents loads tracking events with their location and
// recorder display strings, optionally filtered to one shipment. Shared
// with the shipment detail query.
func fetchTrackingEvents(ctx context.Context, db *gorm.DB, shipmentID *kernel.ID) ([]GetTrackingEventsQueryResponse, error) {
	sqlQuery := `
		SELECT
			e.event_id,
			e.shipment_id,
			e.event_type,
			e.location_id,
			CONCAT(l.city, ', ', l.state) AS location_name,
			e.event_timestamp,
			e.recorded_by,
			u.full_name AS recorded_by_name,
			COALESCE(e.notes, '') AS notes
		FROM tracking_events e
		LEFT JOIN locations l ON e.location_id = l.location_id
		LEFT JOIN users u ON e.recorded_by = u.user_id
	`
	var args []any

	if shipmentID != nil {
		sqlQuery += `
		WHERE e.shipment_id = ?
	`
		args = append(args, shipmentID.Int64())
	}

	sqlQuery += `
		ORDER BY e.event_timestamp DESC
	`

	events := make([]GetTrackingEventsQueryResponse, 0)

	rows, err := db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetTrackingEventsQueryResponse
		var eventID, ownerID, locationID, recordedBy int64
		var eventType string
		var locationName, recordedByName sql.NullString

		err = rows.Scan(
			&eventID,
			&ownerID,
			&eventType,
			&locationID,
			&locationName,
			&event.EventTimestamp,
			&recordedBy,
			&recordedByName,
			&event.Notes,
		)
		if err != nil {
			return nil, err
		}

		if event.ID, err = kernel.NewID(eventID); err != nil {
			return nil, err
		}
		if event.ShipmentID, err = kernel.NewID(ownerID); err != nil {
			return nil, err
		}
		if event.LocationID, err = kernel.NewID(locationID); err != nil {
			return nil, err
		}
		if event.RecordedBy, err = kernel.NewID(recordedBy); err != nil {
			return nil, err
		}
		event.EventType = tracking.EventType(eventType)
		event.LocationName = locationName.String
		event.RecordedByName = recordedByName.String
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

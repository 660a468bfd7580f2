package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"

	"github.com/labstack/echo/v4"
)

type trackingEventRequest struct {
	ShipmentID int64  `json:"shipment_id"`
	EventType  string `json:"event_type"`
	LocationID int64  `json:"location_id"`
	RecordedBy *int64 `json:"recorded_by"`
	Notes      string `json:"notes"`
}

// GetTrackingEvents handles GET /api/tracking-events.
func (s *Server) GetTrackingEvents(ctx echo.Context) error {
	events, err := s.queries.TrackingEvents.Handle(ctx.Request().Context(), queries.NewGetTrackingEventsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toTrackingEventRows(events))
}

// RecordTrackingEvent handles POST /api/tracking-events. Recording an event
// also re-derives the shipment status from its full event history.
func (s *Server) RecordTrackingEvent(ctx echo.Context) error {
	var req trackingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.NewID(req.ShipmentID)
	if err != nil {
		return fail(ctx, err)
	}
	eventType, err := tracking.NewEventTypeFromString(req.EventType)
	if err != nil {
		return fail(ctx, err)
	}
	locationID, err := kernel.NewID(req.LocationID)
	if err != nil {
		return fail(ctx, err)
	}
	recordedBy, err := optionalID(req.RecordedBy)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRecordTrackingEventCommand(shipmentID, eventType, locationID, recordedBy, req.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	eventID, err := s.commands.RecordTrackingEvent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "event_id", eventID)
}

// RemoveTrackingEvent handles DELETE /api/tracking-events/:id.
func (s *Server) RemoveTrackingEvent(ctx echo.Context) error {
	eventID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemoveTrackingEventCommand(eventID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.RemoveTrackingEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

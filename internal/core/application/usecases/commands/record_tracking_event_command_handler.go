package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"
)

// RecordTrackingEventCommandHandler appends an event to a shipment's
// tracking log and applies the status-derivation rule: the shipment's status
// becomes whatever the new event's type implies, overwriting the previous
// status unconditionally. Both writes happen in one transaction.
type RecordTrackingEventCommandHandler struct {
	uowFactory  UoWFactory
	calculator  services.StatusCalculator
	adminUserID kernel.ID
}

// NewRecordTrackingEventCommandHandler creates a handler for tracking event
// recording. adminUserID is the sentinel recorded when the command does not
// identify an actor.
func NewRecordTrackingEventCommandHandler(
	uowFactory UoWFactory,
	calculator services.StatusCalculator,
	adminUserID kernel.ID,
) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory:  uowFactory,
		calculator:  calculator,
		adminUserID: adminUserID,
	}
}

// Handle processes the command and returns the generated event identifier.
func (h *RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	recordedBy := h.adminUserID
	if cmd.RecordedBy() != nil {
		recordedBy = *cmd.RecordedBy()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return kernel.ID{}, err
	}

	event, err := tracking.NewEvent(cmd.ShipmentID(), cmd.EventType(), cmd.LocationID(), recordedBy, cmd.Notes())
	if err != nil {
		return kernel.ID{}, err
	}

	eventID, err := uow.TrackingEventRepository().Add(ctx, event)
	if err != nil {
		return kernel.ID{}, err
	}

	newStatus, err := h.calculator.Derive(cmd.EventType())
	if err != nil {
		return kernel.ID{}, err
	}
	if err = aggregate.ChangeStatus(newStatus); err != nil {
		return kernel.ID{}, err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return eventID, nil
}

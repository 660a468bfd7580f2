package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreTestEvent(t *testing.T, id, shipmentID kernel.ID, eventType tracking.EventType) *tracking.Event {
	t.Helper()
	event, err := tracking.RestoreEvent(
		id, shipmentID, eventType, kernel.MustNewID(20), kernel.MustNewID(1), "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return event
}

func TestRecordTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	adminUserID := kernel.MustNewID(1)
	shipmentID := kernel.MustNewID(77)
	locationID := kernel.MustNewID(20)

	cmd, err := commands.NewRecordTrackingEventCommand(
		shipmentID, tracking.EventDelivery, locationID, nil, "left at the gate",
	)
	require.NoError(t, err)

	existing := restoreTestShipment(t, shipmentID, shipment.Details{})

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	eventID := kernel.MustNewID(900)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("TrackingEventRepository").Return(trackingRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(eventID, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordTrackingEventCommandHandler(factory, calculator, adminUserID)
	createdID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, eventID.IsEqual(createdID))

	// Without an explicit actor the admin sentinel is recorded.
	event := trackingRepo.Calls[0].Arguments[1].(*tracking.Event)
	assert.Equal(t, tracking.EventDelivery, event.Type())
	assert.True(t, adminUserID.IsEqual(event.RecordedBy()))
	assert.Equal(t, "left at the gate", event.Notes())

	// A delivery event drives the shipment to delivered.
	updated := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, shipment.StatusDelivered, updated.Status())

	shipmentRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordTrackingEventCommandHandler_Handle_OverwritesDeliveredStatus(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	shipmentID := kernel.MustNewID(77)
	actorID := kernel.MustNewID(5)

	cmd, err := commands.NewRecordTrackingEventCommand(
		shipmentID, tracking.EventDeparture, kernel.MustNewID(20), &actorID, "",
	)
	require.NoError(t, err)

	existing, err := shipment.RestoreShipment(
		shipmentID, "TRK-2025-0001",
		kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
		shipment.StatusDelivered, shipment.Totals{}, shipment.Details{},
		time.Now().UTC(),
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("TrackingEventRepository").Return(trackingRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(kernel.MustNewID(901), nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordTrackingEventCommandHandler(factory, calculator, kernel.MustNewID(1))
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Late events win: a departure recorded after delivery drags the
	// shipment back to in_transit, no transition rules apply.
	updated := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, shipment.StatusInTransit, updated.Status())

	event := trackingRepo.Calls[0].Arguments[1].(*tracking.Event)
	assert.True(t, actorID.IsEqual(event.RecordedBy()))
}

func TestRecordTrackingEventCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.MustNewID(404)

	cmd, err := commands.NewRecordTrackingEventCommand(
		shipmentID, tracking.EventArrival, kernel.MustNewID(20), nil, "",
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipment_id", shipmentID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordTrackingEventCommandHandler(
		factory, services.NewStatusCalculator(nil), kernel.MustNewID(1),
	)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	trackingRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestRemoveTrackingEventCommandHandler_Handle_RevertsToPreviousEvent(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	shipmentID := kernel.MustNewID(77)
	eventID := kernel.MustNewID(900)

	cmd, err := commands.NewRemoveTrackingEventCommand(eventID)
	require.NoError(t, err)

	removed := restoreTestEvent(t, eventID, shipmentID, tracking.EventDelivery)
	remaining := restoreTestEvent(t, kernel.MustNewID(899), shipmentID, tracking.EventPickup)

	existing, err := shipment.RestoreShipment(
		shipmentID, "TRK-2025-0001",
		kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
		shipment.StatusDelivered, shipment.Totals{}, shipment.Details{},
		time.Now().UTC(),
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("TrackingEventRepository").Return(trackingRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		trackingRepo.On("Get", ctx, eventID).Return(removed, nil).Once(),
		trackingRepo.On("Delete", ctx, eventID).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		trackingRepo.On("GetLatestByShipment", ctx, shipmentID).Return(remaining, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveTrackingEventCommandHandler(factory, calculator)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Removing the delivery leaves the pickup as the latest event.
	updated := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, shipment.StatusPickedUp, updated.Status())

	shipmentRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveTrackingEventCommandHandler_Handle_EmptyLogRevertsToPending(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	shipmentID := kernel.MustNewID(77)
	eventID := kernel.MustNewID(900)

	cmd, err := commands.NewRemoveTrackingEventCommand(eventID)
	require.NoError(t, err)

	removed := restoreTestEvent(t, eventID, shipmentID, tracking.EventPickup)

	existing, err := shipment.RestoreShipment(
		shipmentID, "TRK-2025-0001",
		kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
		shipment.StatusPickedUp, shipment.Totals{}, shipment.Details{},
		time.Now().UTC(),
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("TrackingEventRepository").Return(trackingRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		trackingRepo.On("Get", ctx, eventID).Return(removed, nil).Once(),
		trackingRepo.On("Delete", ctx, eventID).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		trackingRepo.On("GetLatestByShipment", ctx, shipmentID).Return(nil, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveTrackingEventCommandHandler(factory, calculator)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, shipment.StatusPending, updated.Status())
}

func TestRecalculateShipmentStatusCommandHandler_Handle_SkipsUnchangedStatus(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	shipmentID := kernel.MustNewID(77)

	cmd, err := commands.NewRecalculateShipmentStatusCommand(shipmentID)
	require.NoError(t, err)

	latest := restoreTestEvent(t, kernel.MustNewID(900), shipmentID, tracking.EventArrival)

	existing, err := shipment.RestoreShipment(
		shipmentID, "TRK-2025-0001",
		kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
		shipment.StatusInTransit, shipment.Totals{}, shipment.Details{},
		time.Now().UTC(),
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("TrackingEventRepository").Return(trackingRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		trackingRepo.On("GetLatestByShipment", ctx, shipmentID).Return(latest, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecalculateShipmentStatusCommandHandler(factory, calculator)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// The stored status already matches the derived one, nothing to write.
	shipmentRepo.AssertNotCalled(t, "Update")
	uow.AssertExpectations(t)
}

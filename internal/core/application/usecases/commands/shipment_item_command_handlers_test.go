package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreTestItem(t *testing.T, id, shipmentID kernel.ID, quantity int, weight float64) *shipment.Item {
	t.Helper()
	item, err := shipment.RestoreItem(id, shipmentID, "pallet of boxes", quantity, weight, 0.5, 100, false, false)
	require.NoError(t, err)
	return item
}

func TestCreateShipmentItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.MustNewID(77)

	cmd, err := commands.NewCreateShipmentItemCommand(shipmentID, "pallet of boxes", 4, 2.5, 0.5, 100, false, true)
	require.NoError(t, err)

	existing := restoreTestShipment(t, shipmentID, shipment.Details{})
	items := []*shipment.Item{
		restoreTestItem(t, kernel.MustNewID(501), shipmentID, 4, 2.5),
	}

	shipmentRepo := new(MockShipmentRepository)
	itemRepo := new(MockShipmentItemRepository)
	uow := new(MockUoW)
	itemID := kernel.MustNewID(501)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("ShipmentItemRepository").Return(itemRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Item")).Return(itemID, nil).Once(),
		itemRepo.On("GetByShipment", ctx, shipmentID).Return(items, nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentItemCommandHandler(factory)
	createdID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, itemID.IsEqual(createdID))

	// Totals are recomputed from the items: 4 units of 2.5kg each.
	updated := shipmentRepo.Calls[2].Arguments[1].(*shipment.Shipment)
	assert.InDelta(t, 10.0, updated.Totals().Weight, 0.001)
	assert.InDelta(t, 2.0, updated.Totals().Volume, 0.001)
	assert.InDelta(t, 400.0, updated.Totals().Value, 0.001)

	shipmentRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentItemCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.MustNewID(404)

	cmd, err := commands.NewCreateShipmentItemCommand(shipmentID, "pallet of boxes", 1, 1, 1, 1, false, false)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	itemRepo := new(MockShipmentItemRepository)
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

	handler := commands.NewCreateShipmentItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	itemRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestUpdateShipmentItemCommandHandler_Handle_SameShipment(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.MustNewID(77)
	itemID := kernel.MustNewID(501)

	cmd, err := commands.NewUpdateShipmentItemCommand(itemID, shipmentID, "replacement parts", 2, 3, 0.25, 50, true, false)
	require.NoError(t, err)

	item := restoreTestItem(t, itemID, shipmentID, 4, 2.5)
	existing := restoreTestShipment(t, shipmentID, shipment.Details{})

	shipmentRepo := new(MockShipmentRepository)
	itemRepo := new(MockShipmentItemRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("ShipmentItemRepository").Return(itemRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		itemRepo.On("Get", ctx, itemID).Return(item, nil).Once(),
		itemRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Item")).Return(nil).Once(),
		itemRepo.On("GetByShipment", ctx, shipmentID).Return([]*shipment.Item{item}, nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updatedItem := itemRepo.Calls[1].Arguments[1].(*shipment.Item)
	assert.Equal(t, "replacement parts", updatedItem.Description())
	assert.Equal(t, 2, updatedItem.Quantity())
	assert.True(t, updatedItem.IsHazardous())

	shipmentRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentItemCommandHandler_Handle_MoveBetweenShipments(t *testing.T) {
	ctx := t.Context()
	previousShipmentID := kernel.MustNewID(77)
	nextShipmentID := kernel.MustNewID(88)
	itemID := kernel.MustNewID(501)

	cmd, err := commands.NewUpdateShipmentItemCommand(itemID, nextShipmentID, "pallet of boxes", 4, 2.5, 0.5, 100, false, false)
	require.NoError(t, err)

	item := restoreTestItem(t, itemID, previousShipmentID, 4, 2.5)
	previousOwner := restoreTestShipment(t, previousShipmentID, shipment.Details{})
	nextOwner := restoreTestShipment(t, nextShipmentID, shipment.Details{})

	shipmentRepo := new(MockShipmentRepository)
	itemRepo := new(MockShipmentItemRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("ShipmentItemRepository").Return(itemRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		itemRepo.On("Get", ctx, itemID).Return(item, nil).Once(),
		itemRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Item")).Return(nil).Once(),
		// New owner refresh picks up the moved item.
		itemRepo.On("GetByShipment", ctx, nextShipmentID).Return([]*shipment.Item{item}, nil).Once(),
		shipmentRepo.On("Get", ctx, nextShipmentID).Return(nextOwner, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		// Previous owner refresh sees an empty item list.
		itemRepo.On("GetByShipment", ctx, previousShipmentID).Return([]*shipment.Item{}, nil).Once(),
		shipmentRepo.On("Get", ctx, previousShipmentID).Return(previousOwner, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The shipment the item left ends up with zero totals.
	drained := shipmentRepo.Calls[3].Arguments[1].(*shipment.Shipment)
	assert.True(t, previousShipmentID.IsEqual(drained.ID()))
	assert.InDelta(t, 0.0, drained.Totals().Weight, 0.001)
	assert.InDelta(t, 0.0, drained.Totals().Value, 0.001)

	shipmentRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteShipmentItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.MustNewID(77)
	itemID := kernel.MustNewID(501)

	cmd, err := commands.NewDeleteShipmentItemCommand(itemID)
	require.NoError(t, err)

	item := restoreTestItem(t, itemID, shipmentID, 4, 2.5)
	existing := restoreTestShipment(t, shipmentID, shipment.Details{})

	shipmentRepo := new(MockShipmentRepository)
	itemRepo := new(MockShipmentItemRepository)
	uow := new(MockUoW)

	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("ShipmentItemRepository").Return(itemRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		itemRepo.On("Get", ctx, itemID).Return(item, nil).Once(),
		itemRepo.On("Delete", ctx, itemID).Return(nil).Once(),
		itemRepo.On("GetByShipment", ctx, shipmentID).Return([]*shipment.Item{}, nil).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(existing, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteShipmentItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.InDelta(t, 0.0, updated.Totals().Weight, 0.001)

	shipmentRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteShipmentItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.MustNewID(404)

	cmd, err := commands.NewDeleteShipmentItemCommand(itemID)
	require.NoError(t, err)

	itemRepo := new(MockShipmentItemRepository)
	uow := new(MockUoW)

	uow.On("ShipmentItemRepository").Return(itemRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		itemRepo.On("Get", ctx, itemID).
			Return(nil, errs.NewObjectNotFoundError("item_id", itemID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteShipmentItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	itemRepo.AssertNotCalled(t, "Delete")
	uow.AssertNotCalled(t, "Commit")
}

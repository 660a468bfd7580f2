package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testWarehouse(locationID kernel.ID) warehouse.Warehouse {
	return warehouse.Warehouse{
		LocationID:    locationID,
		WarehouseName: "Pune Central",
		Capacity:      50000,
	}
}

func TestCreateWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	locationID := kernel.MustNewID(20)

	cmd, err := commands.NewCreateWarehouseCommand(testWarehouse(locationID))
	require.NoError(t, err)

	loc := testLocation()
	loc.ID = locationID

	locationRepo := new(MockLocationRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	warehouseID := kernel.MustNewID(60)

	uow.On("LocationRepository").Return(locationRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		locationRepo.On("Get", ctx, locationID).Return(&loc, nil).Once(),
		warehouseRepo.On("ExistsByLocation", ctx, locationID).Return(false, nil).Once(),
		warehouseRepo.On("Add", ctx, mock.AnythingOfType("*warehouse.Warehouse")).Return(warehouseID, nil).Once(),
		// Registering a warehouse promotes the hosting location's type.
		locationRepo.On("SetLocationType", ctx, locationID, "warehouse").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWarehouseCommandHandler(factory)
	createdID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, warehouseID.IsEqual(createdID))
	locationRepo.AssertExpectations(t)
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_LocationAlreadyHostsWarehouse(t *testing.T) {
	ctx := t.Context()
	locationID := kernel.MustNewID(20)

	cmd, err := commands.NewCreateWarehouseCommand(testWarehouse(locationID))
	require.NoError(t, err)

	loc := testLocation()
	loc.ID = locationID

	locationRepo := new(MockLocationRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)

	uow.On("LocationRepository").Return(locationRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		locationRepo.On("Get", ctx, locationID).Return(&loc, nil).Once(),
		warehouseRepo.On("ExistsByLocation", ctx, locationID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWarehouseCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDuplicateKey)
	warehouseRepo.AssertNotCalled(t, "Add")
	locationRepo.AssertNotCalled(t, "SetLocationType")
	uow.AssertNotCalled(t, "Commit")
}

func TestNewCreateWarehouseCommand_Invalid(t *testing.T) {
	t.Run("should fail when occupancy exceeds capacity", func(t *testing.T) {
		wh := testWarehouse(kernel.MustNewID(20))
		wh.CurrentOccupancy = wh.Capacity + 1

		_, err := commands.NewCreateWarehouseCommand(wh)

		assert.Error(t, err)
	})

	t.Run("should fail on blank name", func(t *testing.T) {
		wh := testWarehouse(kernel.MustNewID(20))
		wh.WarehouseName = " "

		_, err := commands.NewCreateWarehouseCommand(wh)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.MustNewID(60)

	occupancy := 32000.0
	managerID := kernel.MustNewID(5)
	cmd, err := commands.NewUpdateWarehouseCommand(warehouseID, commands.WarehousePatch{
		CurrentOccupancy: &occupancy,
		ManagerID:        &managerID,
	})
	require.NoError(t, err)

	existing := testWarehouse(kernel.MustNewID(20))
	existing.ID = warehouseID

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)

	uow.On("WarehouseRepository").Return(warehouseRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		warehouseRepo.On("Get", ctx, warehouseID).Return(&existing, nil).Once(),
		warehouseRepo.On("UpdateFields", ctx, warehouseID, map[string]any{
			"current_occupancy": 32000.0,
			"manager_id":        int64(5),
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateWarehouseCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.MustNewID(60)

	cmd, err := commands.NewDeleteWarehouseCommand(warehouseID)
	require.NoError(t, err)

	existing := testWarehouse(kernel.MustNewID(20))
	existing.ID = warehouseID

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)

	uow.On("WarehouseRepository").Return(warehouseRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		warehouseRepo.On("Get", ctx, warehouseID).Return(&existing, nil).Once(),
		warehouseRepo.On("Delete", ctx, warehouseID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteWarehouseCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

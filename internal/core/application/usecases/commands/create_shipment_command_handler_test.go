package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	adminUserID := kernel.MustNewID(1)

	cmd, err := commands.NewCreateShipmentCommand(
		"TRK-2025-0001",
		kernel.MustNewID(10),
		kernel.MustNewID(20),
		kernel.MustNewID(30),
		shipment.StatusPending,
		shipment.Totals{},
		shipment.Details{},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	shipmentID := kernel.MustNewID(77)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsByTrackingNumber", ctx, "TRK-2025-0001").Return(false, nil).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(shipmentID, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory, calculator, adminUserID)
	createdID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, shipmentID.IsEqual(createdID))

	// Pending shipments get no synthesized tracking event.
	addedShipment := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, "TRK-2025-0001", addedShipment.TrackingNumber())
	assert.Equal(t, shipment.StatusPending, addedShipment.Status())

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AssignedResourcesAndInitialEvent(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)
	adminUserID := kernel.MustNewID(1)

	vehicleID := kernel.MustNewID(40)
	driverID := kernel.MustNewID(50)
	originID := kernel.MustNewID(20)

	cmd, err := commands.NewCreateShipmentCommand(
		"TRK-2025-0002",
		kernel.MustNewID(10),
		originID,
		kernel.MustNewID(30),
		shipment.StatusPickedUp,
		shipment.Totals{},
		shipment.Details{VehicleID: &vehicleID, DriverID: &driverID},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	trackingRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	shipmentID := kernel.MustNewID(78)
	eventID := kernel.MustNewID(900)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsByTrackingNumber", ctx, "TRK-2025-0002").Return(false, nil).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(shipmentID, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("SetStatus", ctx, vehicleID, vehicle.StatusInUse).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("SetStatus", ctx, driverID, driver.StatusAssigned).Return(nil).Once(),
		uow.On("TrackingEventRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(eventID, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory, calculator, adminUserID)
	createdID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, shipmentID.IsEqual(createdID))

	// A picked_up shipment synthesizes a pickup event at the origin,
	// recorded by the admin sentinel user.
	event := trackingRepo.Calls[0].Arguments[1].(*tracking.Event)
	assert.Equal(t, tracking.EventPickup, event.Type())
	assert.True(t, originID.IsEqual(event.LocationID()))
	assert.True(t, shipmentID.IsEqual(event.ShipmentID()))
	assert.True(t, adminUserID.IsEqual(event.RecordedBy()))

	shipmentRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_DuplicateTrackingNumber(t *testing.T) {
	ctx := t.Context()
	calculator := services.NewStatusCalculator(nil)

	cmd, err := commands.NewCreateShipmentCommand(
		"TRK-2025-0001",
		kernel.MustNewID(10),
		kernel.MustNewID(20),
		kernel.MustNewID(30),
		shipment.StatusPending,
		shipment.Totals{},
		shipment.Details{},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsByTrackingNumber", ctx, "TRK-2025-0001").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory, calculator, kernel.MustNewID(1))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDuplicateKey)
	shipmentRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory, services.NewStatusCalculator(nil), kernel.MustNewID(1))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateShipmentCommand(
		"TRK-2025-0001",
		kernel.MustNewID(10),
		kernel.MustNewID(20),
		kernel.MustNewID(30),
		shipment.StatusPending,
		shipment.Totals{},
		shipment.Details{},
	)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateShipmentCommandHandler(factory, services.NewStatusCalculator(nil), kernel.MustNewID(1))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestNewCreateShipmentCommand_Invalid(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "should fail on blank tracking number",
			run: func() error {
				_, err := commands.NewCreateShipmentCommand(
					"  ",
					kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
					shipment.StatusPending, shipment.Totals{}, shipment.Details{},
				)
				return err
			},
		},
		{
			name: "should fail on unknown status",
			run: func() error {
				_, err := commands.NewCreateShipmentCommand(
					"TRK-1",
					kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
					shipment.Status("lost"), shipment.Totals{}, shipment.Details{},
				)
				return err
			},
		},
		{
			name: "should fail on negative totals",
			run: func() error {
				_, err := commands.NewCreateShipmentCommand(
					"TRK-1",
					kernel.MustNewID(10), kernel.MustNewID(20), kernel.MustNewID(30),
					shipment.StatusPending, shipment.Totals{Weight: -1}, shipment.Details{},
				)
				return err
			},
		},
		{
			name: "should fail on missing customer reference",
			run: func() error {
				_, err := commands.NewCreateShipmentCommand(
					"TRK-1",
					kernel.ID{}, kernel.MustNewID(20), kernel.MustNewID(30),
					shipment.StatusPending, shipment.Totals{}, shipment.Details{},
				)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.run())
		})
	}
}

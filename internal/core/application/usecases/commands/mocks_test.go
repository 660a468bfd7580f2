package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/location"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (kernel.ID, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) CountByVehicle(ctx context.Context, vehicleID kernel.ID) (int64, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) CountByDriver(ctx context.Context, driverID kernel.ID) (int64, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) CountByCustomer(ctx context.Context, customerID kernel.ID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) CountByRoute(ctx context.Context, routeID kernel.ID) (int64, error) {
	args := m.Called(ctx, routeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockShipmentItemRepository struct{ mock.Mock }

func (m *MockShipmentItemRepository) Add(ctx context.Context, item *shipment.Item) (kernel.ID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockShipmentItemRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Item), args.Error(1)
}

func (m *MockShipmentItemRepository) GetByShipment(ctx context.Context, shipmentID kernel.ID) ([]*shipment.Item, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Item), args.Error(1)
}

func (m *MockShipmentItemRepository) Update(ctx context.Context, item *shipment.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShipmentItemRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) (kernel.ID, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockTrackingEventRepository) Get(ctx context.Context, id kernel.ID) (*tracking.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Event), args.Error(1)
}

func (m *MockTrackingEventRepository) GetLatestByShipment(ctx context.Context, shipmentID kernel.ID) (*tracking.Event, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Event), args.Error(1)
}

func (m *MockTrackingEventRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrackingEventRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) (kernel.ID, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ExistsByLicensePlate(ctx context.Context, licensePlate string) (bool, error) {
	args := m.Called(ctx, licensePlate)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) SetStatus(ctx context.Context, id kernel.ID, status vehicle.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) (kernel.ID, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) SetStatus(ctx context.Context, id kernel.ID, status driver.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDriverRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) (kernel.ID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, customer *account.Customer) (kernel.ID, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*account.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, loc *location.Location) (kernel.ID, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.ID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockLocationRepository) SetLocationType(ctx context.Context, id kernel.ID, locationType string) error {
	args := m.Called(ctx, id, locationType)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, wh *warehouse.Warehouse) (kernel.ID, error) {
	args := m.Called(ctx, wh)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ExistsByLocation(ctx context.Context, locationID kernel.ID) (bool, error) {
	args := m.Called(ctx, locationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) (kernel.ID, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRouteRepository) AddWaypoint(ctx context.Context, w *route.Waypoint) (kernel.ID, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockRouteRepository) DeleteWaypointsByRoute(ctx context.Context, routeID kernel.ID) error {
	args := m.Called(ctx, routeID)
	return args.Error(0)
}

func (m *MockRouteRepository) CountWaypointsByRoute(ctx context.Context, routeID kernel.ID) (int64, error) {
	args := m.Called(ctx, routeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) CountByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) CountWaypointsByLocation(ctx context.Context, locationID kernel.ID) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ShipmentItemRepository() ports.ShipmentItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentItemRepository)
}

func (m *MockUoW) TrackingEventRepository() ports.TrackingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingEventRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

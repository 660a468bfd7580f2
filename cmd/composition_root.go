package cmd

import (
	"log/slog"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	calculator  services.StatusCalculator
	adminUserID kernel.ID
	bcryptCost  int
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	adminUserID, err := kernel.NewID(config.AdminUserID)
	if err != nil {
		return CompositionRoot{}, err
	}

	overrides := map[tracking.EventType]shipment.Status{}
	if config.TrackingIssueStatus != "" {
		overrides[tracking.EventIssue] = shipment.Status(config.TrackingIssueStatus)
	}
	if config.TrackingDelayStatus != "" {
		overrides[tracking.EventDelay] = shipment.Status(config.TrackingDelayStatus)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator:  services.NewStatusCalculator(overrides),
		adminUserID: adminUserID,
		bcryptCost:  config.BcryptCost,
	}, nil
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateCommands builds the full write-side handler set for the HTTP server.
func (c *CompositionRoot) CreateCommands() http.Commands {
	f := c.createUoWFactory()

	return http.Commands{
		CreateShipment: commands.NewCreateShipmentCommandHandler(f, c.calculator, c.adminUserID),
		UpdateShipment: commands.NewUpdateShipmentCommandHandler(f),
		DeleteShipment: commands.NewDeleteShipmentCommandHandler(f),

		CreateShipmentItem: commands.NewCreateShipmentItemCommandHandler(f),
		UpdateShipmentItem: commands.NewUpdateShipmentItemCommandHandler(f),
		DeleteShipmentItem: commands.NewDeleteShipmentItemCommandHandler(f),

		RecordTrackingEvent: commands.NewRecordTrackingEventCommandHandler(f, c.calculator, c.adminUserID),
		RemoveTrackingEvent: commands.NewRemoveTrackingEventCommandHandler(f, c.calculator),

		CreateVehicle: commands.NewCreateVehicleCommandHandler(f),
		UpdateVehicle: commands.NewUpdateVehicleCommandHandler(f),
		DeleteVehicle: commands.NewDeleteVehicleCommandHandler(f),

		CreateDriver: commands.NewCreateDriverCommandHandler(f, c.bcryptCost),
		UpdateDriver: commands.NewUpdateDriverCommandHandler(f),
		DeleteDriver: commands.NewDeleteDriverCommandHandler(f),

		CreateCustomer: commands.NewCreateCustomerCommandHandler(f, c.bcryptCost),
		UpdateCustomer: commands.NewUpdateCustomerCommandHandler(f),
		DeleteCustomer: commands.NewDeleteCustomerCommandHandler(f),

		CreateLocation: commands.NewCreateLocationCommandHandler(f),
		UpdateLocation: commands.NewUpdateLocationCommandHandler(f),
		DeleteLocation: commands.NewDeleteLocationCommandHandler(f),

		CreateWarehouse: commands.NewCreateWarehouseCommandHandler(f),
		UpdateWarehouse: commands.NewUpdateWarehouseCommandHandler(f),
		DeleteWarehouse: commands.NewDeleteWarehouseCommandHandler(f),

		CreateRoute: commands.NewCreateRouteCommandHandler(f),
		UpdateRoute: commands.NewUpdateRouteCommandHandler(f),
		DeleteRoute: commands.NewDeleteRouteCommandHandler(f),
		AddWaypoint: commands.NewAddWaypointCommandHandler(f),
	}
}

// CreateQueries builds the full read-side handler set for the HTTP server.
func (c *CompositionRoot) CreateQueries() http.Queries {
	return http.Queries{
		Login: queries.NewLoginQueryHandler(c.gormDB),

		Stats:      queries.NewGetStatsQueryHandler(c.gormDB),
		AdminStats: queries.NewGetAdminStatsQueryHandler(c.gormDB),

		Shipments:                queries.NewGetShipmentsQueryHandler(c.gormDB),
		Shipment:                 queries.NewGetShipmentQueryHandler(c.gormDB),
		ShipmentByTrackingNumber: queries.NewGetShipmentByTrackingNumberQueryHandler(c.gormDB),

		ShipmentItems:    queries.NewGetShipmentItemsQueryHandler(c.gormDB),
		AllShipmentItems: queries.NewGetAllShipmentItemsQueryHandler(c.gormDB),

		TrackingEvents:   queries.NewGetTrackingEventsQueryHandler(c.gormDB),
		ShipmentTracking: queries.NewGetShipmentTrackingQueryHandler(c.gormDB),

		Vehicles:   queries.NewGetVehiclesQueryHandler(c.gormDB),
		Drivers:    queries.NewGetDriversQueryHandler(c.gormDB),
		Customers:  queries.NewGetCustomersQueryHandler(c.gormDB),
		Locations:  queries.NewGetLocationsQueryHandler(c.gormDB),
		Warehouses: queries.NewGetWarehousesQueryHandler(c.gormDB),
		Routes:     queries.NewGetRoutesQueryHandler(c.gormDB),

		CustomerDashboard: queries.NewGetCustomerDashboardQueryHandler(c.gormDB),
		DriverDashboard:   queries.NewGetDriverDashboardQueryHandler(c.gormDB),
		DriverPerformance: queries.NewGetDriverPerformanceQueryHandler(c.gormDB),
	}
}

// CreateHTTPServer wires all handlers into the HTTP facade.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.CreateCommands(), c.CreateQueries())
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	recalculate := commands.NewRecalculateShipmentStatusCommandHandler(c.createUoWFactory(), c.calculator)
	return jobs.NewJobManager(queries.NewGetShipmentsQueryHandler(c.gormDB), &recalculate, logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// Package http exposes the application over a JSON API. Handlers translate
// request bodies into commands and queries, and read-model rows into wire
// shapes; all business rules stay behind the use case layer.
package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	CreateShipment commands.CreateShipmentCommandHandler
	UpdateShipment commands.UpdateShipmentCommandHandler
	DeleteShipment commands.DeleteShipmentCommandHandler

	CreateShipmentItem commands.CreateShipmentItemCommandHandler
	UpdateShipmentItem commands.UpdateShipmentItemCommandHandler
	DeleteShipmentItem commands.DeleteShipmentItemCommandHandler

	RecordTrackingEvent commands.RecordTrackingEventCommandHandler
	RemoveTrackingEvent commands.RemoveTrackingEventCommandHandler

	CreateVehicle commands.CreateVehicleCommandHandler
	UpdateVehicle commands.UpdateVehicleCommandHandler
	DeleteVehicle commands.DeleteVehicleCommandHandler

	CreateDriver commands.CreateDriverCommandHandler
	UpdateDriver commands.UpdateDriverCommandHandler
	DeleteDriver commands.DeleteDriverCommandHandler

	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	CreateLocation commands.CreateLocationCommandHandler
	UpdateLocation commands.UpdateLocationCommandHandler
	DeleteLocation commands.DeleteLocationCommandHandler

	CreateWarehouse commands.CreateWarehouseCommandHandler
	UpdateWarehouse commands.UpdateWarehouseCommandHandler
	DeleteWarehouse commands.DeleteWarehouseCommandHandler

	CreateRoute commands.CreateRouteCommandHandler
	UpdateRoute commands.UpdateRouteCommandHandler
	DeleteRoute commands.DeleteRouteCommandHandler
	AddWaypoint commands.AddWaypointCommandHandler
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	Login queries.LoginQueryHandler

	Stats      queries.GetStatsQueryHandler
	AdminStats queries.GetAdminStatsQueryHandler

	Shipments                queries.GetShipmentsQueryHandler
	Shipment                 queries.GetShipmentQueryHandler
	ShipmentByTrackingNumber queries.GetShipmentByTrackingNumberQueryHandler

	ShipmentItems    queries.GetShipmentItemsQueryHandler
	AllShipmentItems queries.GetAllShipmentItemsQueryHandler

	TrackingEvents   queries.GetTrackingEventsQueryHandler
	ShipmentTracking queries.GetShipmentTrackingQueryHandler

	Vehicles   queries.GetVehiclesQueryHandler
	Drivers    queries.GetDriversQueryHandler
	Customers  queries.GetCustomersQueryHandler
	Locations  queries.GetLocationsQueryHandler
	Warehouses queries.GetWarehousesQueryHandler
	Routes     queries.GetRoutesQueryHandler

	CustomerDashboard queries.GetCustomerDashboardQueryHandler
	DriverDashboard   queries.GetDriverDashboardQueryHandler
	DriverPerformance queries.GetDriverPerformanceQueryHandler
}

// Server dispatches HTTP requests to command and query handlers.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates the HTTP server facade.
func NewServer(cmds Commands, qrys Queries) *Server {
	return &Server{commands: cmds, queries: qrys}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(nethttp.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	api.POST("/login", s.Login)
	api.GET("/stats", s.GetStats)
	api.GET("/admin/stats", s.GetAdminStats)

	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/create", s.CreateShipmentStrict)
	api.GET("/shipments/tracking/:tracking_number", s.GetShipmentByTrackingNumber)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.GET("/shipments/:id/items", s.GetItemsOfShipment)
	api.GET("/shipments/:id/events", s.GetEventsOfShipment)
	api.GET("/shipment/:id/tracking", s.GetShipmentTracking)

	api.GET("/shipment-items", s.GetShipmentItems)
	api.POST("/shipment-items", s.CreateShipmentItem)
	api.PUT("/shipment-items/:id", s.UpdateShipmentItem)
	api.DELETE("/shipment-items/:id", s.DeleteShipmentItem)

	api.GET("/tracking-events", s.GetTrackingEvents)
	api.POST("/tracking-events", s.RecordTrackingEvent)
	api.DELETE("/tracking-events/:id", s.RemoveTrackingEvent)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/locations", s.GetLocations)
	api.POST("/locations", s.CreateLocation)
	api.PUT("/locations/:id", s.UpdateLocation)
	api.DELETE("/locations/:id", s.DeleteLocation)

	api.GET("/warehouses", s.GetWarehouses)
	api.POST("/warehouses", s.CreateWarehouse)
	api.PUT("/warehouses/:id", s.UpdateWarehouse)
	api.DELETE("/warehouses/:id", s.DeleteWarehouse)

	api.GET("/routes", s.GetRoutes)
	api.POST("/routes", s.CreateRoute)
	api.PUT("/routes/:id", s.UpdateRoute)
	api.DELETE("/routes/:id", s.DeleteRoute)
	api.POST("/routes/:id/waypoints", s.AddWaypoint)

	api.GET("/customer-dashboard/:user_id", s.GetCustomerDashboard)
	api.GET("/driver-dashboard/:user_id", s.GetDriverDashboard)
	api.GET("/driver/:id/performance", s.GetDriverPerformance)
}

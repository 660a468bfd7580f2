package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type statsResponse struct {
	ActiveShipments   int64 `json:"active_shipments"`
	AvailableVehicles int64 `json:"available_vehicles"`
	TotalCustomers    int64 `json:"total_customers"`
	AssignedDrivers   int64 `json:"assigned_drivers"`
}

// GetStats handles GET /api/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.queries.Stats.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, statsResponse{
		ActiveShipments:   stats.ActiveShipments,
		AvailableVehicles: stats.AvailableVehicles,
		TotalCustomers:    stats.TotalCustomers,
		AssignedDrivers:   stats.AssignedDrivers,
	})
}

type adminStatsResponse struct {
	statsResponse

	ShipmentsByStatus map[string]int64 `json:"shipments_by_status"`
	VehiclesByType    map[string]int64 `json:"vehicles_by_type"`
}

// GetAdminStats handles GET /api/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	stats, err := s.queries.AdminStats.Handle(ctx.Request().Context(), queries.NewGetAdminStatsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, adminStatsResponse{
		statsResponse: statsResponse{
			ActiveShipments:   stats.ActiveShipments,
			AvailableVehicles: stats.AvailableVehicles,
			TotalCustomers:    stats.TotalCustomers,
			AssignedDrivers:   stats.AssignedDrivers,
		},
		ShipmentsByStatus: stats.ShipmentsByStatus,
		VehiclesByType:    stats.VehiclesByType,
	})
}

type customerDashboardResponse struct {
	TotalShipments    int64              `json:"total_shipments"`
	ShipmentsByStatus map[string]int64   `json:"shipments_by_status"`
	TotalValue        float64            `json:"total_value"`
	RecentShipments   []shipmentListItem `json:"recent_shipments"`
}

// GetCustomerDashboard handles GET /api/customer-dashboard/:user_id.
func (s *Server) GetCustomerDashboard(ctx echo.Context) error {
	userID, err := pathID(ctx, "user_id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetCustomerDashboardQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	dashboard, err := s.queries.CustomerDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, customerDashboardResponse{
		TotalShipments:    dashboard.TotalShipments,
		ShipmentsByStatus: dashboard.ShipmentsByStatus,
		TotalValue:        dashboard.TotalValue,
		RecentShipments:   toShipmentListItems(dashboard.RecentShipments),
	})
}

type driverDashboardResponse struct {
	ActiveShipments     []shipmentListItem `json:"active_shipments"`
	CompletedDeliveries int64              `json:"completed_deliveries"`
}

// GetDriverDashboard handles GET /api/driver-dashboard/:user_id.
func (s *Server) GetDriverDashboard(ctx echo.Context) error {
	userID, err := pathID(ctx, "user_id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetDriverDashboardQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	dashboard, err := s.queries.DriverDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, driverDashboardResponse{
		ActiveShipments:     toShipmentListItems(dashboard.ActiveShipments),
		CompletedDeliveries: dashboard.CompletedDeliveries,
	})
}

type driverPerformanceResponse struct {
	DeliveredShipments int64   `json:"delivered_shipments"`
	OnTimeDeliveries   int64   `json:"on_time_deliveries"`
	OnTimeRatio        float64 `json:"on_time_ratio"`
}

// GetDriverPerformance handles GET /api/driver/:id/performance.
func (s *Server) GetDriverPerformance(ctx echo.Context) error {
	driverID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetDriverPerformanceQuery(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	performance, err := s.queries.DriverPerformance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, driverPerformanceResponse{
		DeliveredShipments: performance.DeliveredShipments,
		OnTimeDeliveries:   performance.OnTimeDeliveries,
		OnTimeRatio:        performance.OnTimeRatio,
	})
}

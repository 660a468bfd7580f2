package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetCustomerDashboardQueryIsNotConstructed = errors.New(
		"GetCustomerDashboardQuery must be created via NewGetCustomerDashboardQuery constructor",
	)
	ErrGetDriverDashboardQueryIsNotConstructed = errors.New(
		"GetDriverDashboardQuery must be created via NewGetDriverDashboardQuery constructor",
	)
	ErrGetDriverPerformanceQueryIsNotConstructed = errors.New(
		"GetDriverPerformanceQuery must be created via NewGetDriverPerformanceQuery constructor",
	)
)

// GetCustomerDashboardQuery retrieves one customer's shipment overview:
// per-status counts, cumulative declared value and the most recent
// shipments. Keyed by the user account, resolved through the customers
// table.
type GetCustomerDashboardQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerDashboardQuery creates the query.
func NewGetCustomerDashboardQuery(userID kernel.ID) (GetCustomerDashboardQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCustomerDashboardQuery{}, err
	}

	return GetCustomerDashboardQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerDashboardQueryIsNotConstructed)
}

// UserID returns the user account whose customer dashboard is requested.
func (q GetCustomerDashboardQuery) UserID() kernel.ID { return q.userID }

// GetCustomerDashboardQueryResponse is the customer dashboard read model.
type GetCustomerDashboardQueryResponse struct {
	TotalShipments    int64
	ShipmentsByStatus map[string]int64
	TotalValue        float64
	RecentShipments   []GetShipmentsQueryResponse
}

// GetDriverDashboardQuery retrieves one driver's working set: the
// shipments currently assigned and a count of completed deliveries. Keyed
// by the user account, resolved through the drivers table.
type GetDriverDashboardQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDriverDashboardQuery creates the query.
func NewGetDriverDashboardQuery(userID kernel.ID) (GetDriverDashboardQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetDriverDashboardQuery{}, err
	}

	return GetDriverDashboardQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDashboardQueryIsNotConstructed)
}

// UserID returns the user account whose driver dashboard is requested.
func (q GetDriverDashboardQuery) UserID() kernel.ID { return q.userID }

// GetDriverDashboardQueryResponse is the driver dashboard read model.
type GetDriverDashboardQueryResponse struct {
	ActiveShipments     []GetShipmentsQueryResponse
	CompletedDeliveries int64
}

// GetDriverPerformanceQuery retrieves one driver's delivery record.
type GetDriverPerformanceQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDriverPerformanceQuery creates the query.
func NewGetDriverPerformanceQuery(driverID kernel.ID) (GetDriverPerformanceQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverPerformanceQuery{}, err
	}

	return GetDriverPerformanceQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverPerformanceQueryIsNotConstructed)
}

// DriverID returns the driver whose record is requested.
func (q GetDriverPerformanceQuery) DriverID() kernel.ID { return q.driverID }

// GetDriverPerformanceQueryResponse is the driver performance read model.
// OnTimeRatio is delivered-on-time over delivered, zero when the driver
// has no completed deliveries. A delivery counts as on time when its
// actual delivery never exceeded the estimate.
type GetDriverPerformanceQueryResponse struct {
	DeliveredShipments int64
	OnTimeDeliveries   int64
	OnTimeRatio        float64
}

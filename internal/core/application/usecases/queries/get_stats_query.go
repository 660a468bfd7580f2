package queries

import (
	"context"
	"errors"

	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetStatsQueryIsNotConstructed = errors.New(
		"GetStatsQuery must be created via NewGetStatsQuery constructor",
	)
	ErrGetAdminStatsQueryIsNotConstructed = errors.New(
		"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
	)
)

// GetStatsQuery retrieves the headline operational counters.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates the headline stats query.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// GetStatsQueryResponse carries the four headline counters shown on the
// landing dashboard.
type GetStatsQueryResponse struct {
	ActiveShipments   int64
	AvailableVehicles int64
	TotalCustomers    int64
	AssignedDrivers   int64
}

// GetAdminStatsQuery retrieves the admin dashboard breakdowns on top of
// the headline counters.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminStatsQuery creates the admin stats query.
func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse extends the headline counters with
// per-status shipment counts and per-type fleet counts.
type GetAdminStatsQueryResponse struct {
	GetStatsQueryResponse

	ShipmentsByStatus map[string]int64
	VehiclesByType    map[string]int64
}

// GetStatsQueryHandler reads the headline counters from the database.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for headline stats queries.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the four counter queries.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	return fetchStats(ctx, h.db)
}

// GetAdminStatsQueryHandler reads the admin dashboard read model.
type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatsQueryHandler creates a handler for admin stats queries.
func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

// Handle executes the counter queries plus the status and vehicle-type
// breakdowns.
func (h GetAdminStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminStatsQuery,
) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	stats, err := fetchStats(ctx, h.db)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	resp := GetAdminStatsQueryResponse{GetStatsQueryResponse: stats}

	resp.ShipmentsByStatus, err = fetchBreakdown(ctx, h.db, `
		SELECT status, COUNT(*) FROM shipments GROUP BY status
	`)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	resp.VehiclesByType, err = fetchBreakdown(ctx, h.db, `
		SELECT vehicle_type, COUNT(*) FROM vehicles GROUP BY vehicle_type
	`)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	return resp, nil
}

func fetchStats(ctx context.Context, db *gorm.DB) (GetStatsQueryResponse, error) {
	var stats GetStatsQueryResponse

	counters := []struct {
		sql  string
		dest *int64
	}{
		{`SELECT COUNT(*) FROM shipments WHERE status != 'delivered'`, &stats.ActiveShipments},
		{`SELECT COUNT(*) FROM vehicles WHERE status = 'available'`, &stats.AvailableVehicles},
		{`SELECT COUNT(*) FROM customers`, &stats.TotalCustomers},
		{`SELECT COUNT(*) FROM drivers WHERE status = 'assigned'`, &stats.AssignedDrivers},
	}

	for _, counter := range counters {
		row := db.WithContext(ctx).Raw(counter.sql).Row()
		if err := row.Scan(counter.dest); err != nil {
			return GetStatsQueryResponse{}, err
		}
	}

	return stats, nil
}

func fetchBreakdown(ctx context.Context, db *gorm.DB, sqlQuery string, args ...any) (map[string]int64, error) {
	breakdown := make(map[string]int64)

	rows, err := db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64

		if err = rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		breakdown[key] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return breakdown, nil
}

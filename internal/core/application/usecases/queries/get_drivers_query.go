package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetDriversQueryIsNotConstructed = errors.New(
		"GetDriversQuery must be created via NewGetDriversQuery constructor",
	)
)

// GetDriversQuery retrieves the driver roster joined with each driver's
// user account fields.
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates the roster query.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// GetDriversQueryResponse is one driver in the roster read model.
type GetDriversQueryResponse struct {
	ID                    kernel.ID
	FullName              string
	Email                 string
	Phone                 string
	LicenseNumber         string
	LicenseExpiry         time.Time
	MedicalCheckDate      time.Time
	TrainingCertification string
	Status                driver.Status
}

// GetDriversQueryHandler reads the driver roster from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query, ordered by driver id.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.driver_id,
			u.full_name,
			u.email,
			u.phone,
			d.license_number,
			d.license_expiry,
			d.medical_check_date,
			d.training_certification,
			d.status
		FROM drivers d
		JOIN users u ON d.user_id = u.user_id
		ORDER BY d.driver_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriversQueryResponse
		var id int64
		var status string

		err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.Email,
			&resp.Phone,
			&resp.LicenseNumber,
			&resp.LicenseExpiry,
			&resp.MedicalCheckDate,
			&resp.TrainingCertification,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		resp.Status = driver.Status(status)
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

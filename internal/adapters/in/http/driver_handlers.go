package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"

	"github.com/labstack/echo/v4"
)

type createDriverRequest struct {
	FullName              string `json:"full_name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Password              string `json:"password"`
	LicenseNumber         string `json:"license_number"`
	LicenseExpiry         string `json:"license_expiry"`
	MedicalCheckDate      string `json:"medical_check_date"`
	TrainingCertification string `json:"training_certification"`
	Status                string `json:"status"`
}

type updateDriverRequest struct {
	LicenseNumber         *string `json:"license_number"`
	LicenseExpiry         *string `json:"license_expiry"`
	MedicalCheckDate      *string `json:"medical_check_date"`
	TrainingCertification *string `json:"training_certification"`
	Status                *string `json:"status"`
}

// GetDrivers handles GET /api/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.queries.Drivers.Handle(ctx.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toDriverRows(drivers))
}

// CreateDriver handles POST /api/drivers. A missing status means the driver
// starts out available.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	status := driver.StatusAvailable
	if req.Status != "" {
		var err error
		status, err = driver.NewStatusFromString(req.Status)
		if err != nil {
			return fail(ctx, err)
		}
	}

	licenseExpiry, err := parseOptionalTime(req.LicenseExpiry, "license_expiry")
	if err != nil {
		return fail(ctx, err)
	}
	medicalCheckDate, err := parseOptionalTime(req.MedicalCheckDate, "medical_check_date")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(
		req.FullName, req.Email, req.Phone, req.Password, req.LicenseNumber,
		licenseExpiry, medicalCheckDate, req.TrainingCertification, status)
	if err != nil {
		return fail(ctx, err)
	}

	driverID, err := s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "driver_id", driverID)
}

// UpdateDriver handles PUT /api/drivers/:id. Only fields present in the body
// are changed.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	patch := commands.DriverPatch{
		LicenseNumber:         req.LicenseNumber,
		TrainingCertification: req.TrainingCertification,
	}
	if req.LicenseExpiry != nil {
		licenseExpiry, err := parseOptionalTime(*req.LicenseExpiry, "license_expiry")
		if err != nil {
			return fail(ctx, err)
		}
		patch.LicenseExpiry = licenseExpiry
	}
	if req.MedicalCheckDate != nil {
		medicalCheckDate, err := parseOptionalTime(*req.MedicalCheckDate, "medical_check_date")
		if err != nil {
			return fail(ctx, err)
		}
		patch.MedicalCheckDate = medicalCheckDate
	}
	if req.Status != nil {
		status, err := driver.NewStatusFromString(*req.Status)
		if err != nil {
			return fail(ctx, err)
		}
		patch.Status = &status
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, patch)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteDriver handles DELETE /api/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrUpdateDriverCommandIsNotConstructed = errors.New(
		"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
	)
	ErrDeleteDriverCommandIsNotConstructed = errors.New(
		"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
	)
)

// CreateDriverCommand registers a driver: a user account row plus its driver
// specialization row, created as a unit. The email doubles as the username.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	fullName              string
	email                 string
	phone                 string
	password              string
	licenseNumber         string
	licenseExpiry         *time.Time
	medicalCheckDate      *time.Time
	trainingCertification string
	status                driver.Status

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates the command.
func NewCreateDriverCommand(
	fullName string,
	email string,
	phone string,
	password string,
	licenseNumber string,
	licenseExpiry *time.Time,
	medicalCheckDate *time.Time,
	trainingCertification string,
	status driver.Status,
) (CreateDriverCommand, error) {
	var violations []error

	if strings.TrimSpace(fullName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("full_name"))
	}
	if strings.TrimSpace(email) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		violations = append(violations, errs.NewValueIsRequiredError("password"))
	}
	if strings.TrimSpace(licenseNumber) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("license_number"))
	}
	if err := status.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := errors.Join(violations...); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		fullName:              fullName,
		email:                 email,
		phone:                 phone,
		password:              password,
		licenseNumber:         licenseNumber,
		licenseExpiry:         licenseExpiry,
		medicalCheckDate:      medicalCheckDate,
		trainingCertification: trainingCertification,
		status:                status,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// FullName returns the driver's display name.
func (c CreateDriverCommand) FullName() string { return c.fullName }

// Email returns the contact address, also used as the username.
func (c CreateDriverCommand) Email() string { return c.email }

// Phone returns the contact number.
func (c CreateDriverCommand) Phone() string { return c.phone }

// Password returns the plaintext password to hash before storage.
func (c CreateDriverCommand) Password() string { return c.password }

// LicenseNumber returns the driving license number.
func (c CreateDriverCommand) LicenseNumber() string { return c.licenseNumber }

// LicenseExpiry returns the license expiry date, or nil.
func (c CreateDriverCommand) LicenseExpiry() *time.Time { return c.licenseExpiry }

// MedicalCheckDate returns the last medical check date, or nil.
func (c CreateDriverCommand) MedicalCheckDate() *time.Time { return c.medicalCheckDate }

// TrainingCertification returns the certification label.
func (c CreateDriverCommand) TrainingCertification() string { return c.trainingCertification }

// Status returns the initial availability status.
func (c CreateDriverCommand) Status() driver.Status { return c.status }

// CreateDriverCommandHandler creates the user and driver rows inside one
// transaction, hashing the password with bcrypt before it touches storage.
type CreateDriverCommandHandler struct {
	uowFactory UoWFactory
	bcryptCost int
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory UoWFactory, bcryptCost int) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory, bcryptCost: bcryptCost}
}

// Handle processes the command and returns the generated driver identifier.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), h.bcryptCost)
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user := &account.User{
		Username:     cmd.Email(),
		FullName:     cmd.FullName(),
		Email:        cmd.Email(),
		Phone:        cmd.Phone(),
		UserType:     account.UserTypeDriver,
		PasswordHash: string(hash),
	}
	if err = user.Validate(); err != nil {
		return kernel.ID{}, err
	}

	userID, err := uow.UserRepository().Add(ctx, user)
	if err != nil {
		return kernel.ID{}, err
	}

	aggregate, err := driver.NewDriver(
		userID,
		cmd.LicenseNumber(),
		cmd.LicenseExpiry(),
		cmd.MedicalCheckDate(),
		cmd.TrainingCertification(),
		cmd.Status(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	driverID, err := uow.DriverRepository().Add(ctx, aggregate)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return driverID, nil
}

// DriverPatch lists the driver attributes a partial update may overwrite.
type DriverPatch struct {
	LicenseNumber         *string
	LicenseExpiry         *time.Time
	MedicalCheckDate      *time.Time
	TrainingCertification *string
	Status                *driver.Status
}

// Fields renders the patch as a column map for the repository.
func (p DriverPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.LicenseNumber != nil {
		fields["license_number"] = *p.LicenseNumber
	}
	if p.LicenseExpiry != nil {
		fields["license_expiry"] = *p.LicenseExpiry
	}
	if p.MedicalCheckDate != nil {
		fields["medical_check_date"] = *p.MedicalCheckDate
	}
	if p.TrainingCertification != nil {
		fields["training_certification"] = *p.TrainingCertification
	}
	if p.Status != nil {
		fields["status"] = p.Status.String()
	}
	return fields
}

func (p DriverPatch) validate() error {
	if p.Status != nil {
		return p.Status.Validate()
	}
	return nil
}

// UpdateDriverCommand applies a partial update to a driver row.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID
	patch    DriverPatch

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates the command. An empty patch is rejected.
func NewUpdateDriverCommand(driverID kernel.ID, patch DriverPatch) (UpdateDriverCommand, error) {
	if err := errors.Join(driverID.Validate(), patch.validate()); err != nil {
		return UpdateDriverCommand{}, err
	}
	if len(patch.Fields()) == 0 {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return UpdateDriverCommand{
		driverID: driverID,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to patch.
func (c UpdateDriverCommand) DriverID() kernel.ID { return c.driverID }

// Patch returns the requested partial update.
func (c UpdateDriverCommand) Patch() DriverPatch { return c.patch }

// UpdateDriverCommandHandler applies a driver patch.
type UpdateDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver patches.
func NewUpdateDriverCommandHandler(uowFactory UoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle processes the driver patch command.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	if _, err := driverRepo.Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err := driverRepo.UpdateFields(ctx, cmd.DriverID(), cmd.Patch().Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteDriverCommand removes a driver and its wrapped user account.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates the command.
func NewDeleteDriverCommand(driverID kernel.ID) (DeleteDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}

	return DeleteDriverCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to remove.
func (c DeleteDriverCommand) DriverID() kernel.ID { return c.driverID }

// DeleteDriverCommandHandler removes the driver and user rows as a unit,
// unless a shipment still references the driver — then the deletion fails
// with a resource-in-use error and both rows stay intact.
type DeleteDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver deletion.
func NewDeleteDriverCommandHandler(uowFactory UoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{uowFactory: uowFactory}
}

// Handle processes the driver deletion command.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	count, err := uow.ShipmentRepository().CountByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewResourceInUseError("driver", "shipment", count)
	}

	if err = uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}
	if err = uow.UserRepository().Delete(ctx, aggregate.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

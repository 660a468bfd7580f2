package commands

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
	ErrDeleteCustomerCommandIsNotConstructed = errors.New(
		"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
	)
)

// CreateCustomerCommand registers a customer: a user account row plus its
// customer specialization row, created as a unit. The email doubles as the
// username.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	fullName    string
	email       string
	phone       string
	password    string
	companyName string
	taxID       string
	creditLimit float64

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates the command.
func NewCreateCustomerCommand(
	fullName string,
	email string,
	phone string,
	password string,
	companyName string,
	taxID string,
	creditLimit float64,
) (CreateCustomerCommand, error) {
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
	if strings.TrimSpace(companyName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("company_name"))
	}
	if creditLimit < 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("credit_limit", creditLimit, 0, "+inf"))
	}
	if err := errors.Join(violations...); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		fullName:    fullName,
		email:       email,
		phone:       phone,
		password:    password,
		companyName: companyName,
		taxID:       taxID,
		creditLimit: creditLimit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// FullName returns the contact person's display name.
func (c CreateCustomerCommand) FullName() string { return c.fullName }

// Email returns the contact address, also used as the username.
func (c CreateCustomerCommand) Email() string { return c.email }

// Phone returns the contact number.
func (c CreateCustomerCommand) Phone() string { return c.phone }

// Password returns the plaintext password to hash before storage.
func (c CreateCustomerCommand) Password() string { return c.password }

// CompanyName returns the customer's legal name.
func (c CreateCustomerCommand) CompanyName() string { return c.companyName }

// TaxID returns the tax registration number.
func (c CreateCustomerCommand) TaxID() string { return c.taxID }

// CreditLimit returns the approved credit limit.
func (c CreateCustomerCommand) CreditLimit() float64 { return c.creditLimit }

// CreateCustomerCommandHandler creates the user and customer rows inside one
// transaction, hashing the password with bcrypt before it touches storage.
type CreateCustomerCommandHandler struct {
	uowFactory UoWFactory
	bcryptCost int
}

// NewCreateCustomerCommandHandler creates a handler for customer
// registration.
func NewCreateCustomerCommandHandler(uowFactory UoWFactory, bcryptCost int) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory, bcryptCost: bcryptCost}
}

// Handle processes the command and returns the generated customer
// identifier.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (kernel.ID, error) {
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
		UserType:     account.UserTypeCustomer,
		PasswordHash: string(hash),
	}
	if err = user.Validate(); err != nil {
		return kernel.ID{}, err
	}

	userID, err := uow.UserRepository().Add(ctx, user)
	if err != nil {
		return kernel.ID{}, err
	}

	customer := &account.Customer{
		UserID:      userID,
		CompanyName: cmd.CompanyName(),
		TaxID:       cmd.TaxID(),
		CreditLimit: cmd.CreditLimit(),
	}
	if err = customer.Validate(); err != nil {
		return kernel.ID{}, err
	}

	customerID, err := uow.CustomerRepository().Add(ctx, customer)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return customerID, nil
}

// CustomerPatch lists the customer attributes a partial update may
// overwrite.
type CustomerPatch struct {
	CompanyName *string
	TaxID       *string
	CreditLimit *float64
}

// Fields renders the patch as a column map for the repository.
func (p CustomerPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.CompanyName != nil {
		fields["company_name"] = *p.CompanyName
	}
	if p.TaxID != nil {
		fields["tax_id"] = *p.TaxID
	}
	if p.CreditLimit != nil {
		fields["credit_limit"] = *p.CreditLimit
	}
	return fields
}

// UpdateCustomerCommand applies a partial update to a customer row.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	patch      CustomerPatch

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates the command. An empty patch is rejected.
func NewUpdateCustomerCommand(customerID kernel.ID, patch CustomerPatch) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	if patch.CreditLimit != nil && *patch.CreditLimit < 0 {
		return UpdateCustomerCommand{}, errs.NewValueIsOutOfRangeError("credit_limit", *patch.CreditLimit, 0, "+inf")
	}
	if len(patch.Fields()) == 0 {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("fields to update")
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to patch.
func (c UpdateCustomerCommand) CustomerID() kernel.ID { return c.customerID }

// Patch returns the requested partial update.
func (c UpdateCustomerCommand) Patch() CustomerPatch { return c.patch }

// UpdateCustomerCommandHandler applies a customer patch.
type UpdateCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer patches.
func NewUpdateCustomerCommandHandler(uowFactory UoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the customer patch command.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := customerRepo.UpdateFields(ctx, cmd.CustomerID(), cmd.Patch().Fields()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteCustomerCommand removes a customer and its wrapped user account.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates the command.
func NewDeleteCustomerCommand(customerID kernel.ID) (DeleteCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return DeleteCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to remove.
func (c DeleteCustomerCommand) CustomerID() kernel.ID { return c.customerID }

// DeleteCustomerCommandHandler removes the customer and user rows as a unit,
// unless a shipment still references the customer.
type DeleteCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory UoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the customer deletion command.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	count, err := uow.ShipmentRepository().CountByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewResourceInUseError("customer", "shipment", count)
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}
	if err = uow.UserRepository().Delete(ctx, customer.UserID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

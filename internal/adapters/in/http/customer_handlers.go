package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type createCustomerRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Password    string  `json:"password"`
	CompanyName string  `json:"company_name"`
	TaxID       string  `json:"tax_id"`
	CreditLimit float64 `json:"credit_limit"`
}

type updateCustomerRequest struct {
	CompanyName *string  `json:"company_name"`
	TaxID       *string  `json:"tax_id"`
	CreditLimit *float64 `json:"credit_limit"`
}

// GetCustomers handles GET /api/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.queries.Customers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, toCustomerRows(customers))
}

// CreateCustomer handles POST /api/customers. The customer account and its
// login user are created together.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req createCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		req.FullName, req.Email, req.Phone, req.Password, req.CompanyName, req.TaxID, req.CreditLimit)
	if err != nil {
		return fail(ctx, err)
	}

	customerID, err := s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "customer_id", customerID)
}

// UpdateCustomer handles PUT /api/customers/:id. Only fields present in the
// body are changed.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateCustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	patch := commands.CustomerPatch{
		CompanyName: req.CompanyName,
		TaxID:       req.TaxID,
		CreditLimit: req.CreditLimit,
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, patch)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx)
}

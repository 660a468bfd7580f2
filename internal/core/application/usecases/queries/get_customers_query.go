package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
)

// GetCustomersQuery retrieves the customer list joined with each
// customer's user account fields.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates the customer list query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse is one customer in the read model.
type GetCustomersQueryResponse struct {
	ID           kernel.ID
	FullName     string
	CompanyName  string
	TaxID        string
	CreditLimit  float64
	PaymentTerms string
	Email        string
	Phone        string
}

// GetCustomersQueryHandler reads the customer list from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query, ordered by customer id.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.customer_id,
			u.full_name,
			c.company_name,
			c.tax_id,
			c.credit_limit,
			c.payment_terms,
			u.email,
			u.phone
		FROM customers c
		JOIN users u ON c.user_id = u.user_id
		ORDER BY c.customer_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomersQueryResponse
		var id int64

		err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.CompanyName,
			&resp.TaxID,
			&resp.CreditLimit,
			&resp.PaymentTerms,
			&resp.Email,
			&resp.Phone,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

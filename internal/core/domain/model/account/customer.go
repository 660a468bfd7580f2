package account

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Customer is the commercial specialization of a user account: a 1:1
// extension row keyed on the user identifier. Creating a customer creates
// the user and customer rows as a unit; deleting one removes both.
type Customer struct {
	ID          kernel.ID
	UserID      kernel.ID
	CompanyName string
	TaxID       string
	CreditLimit float64
}

// Validate checks the customer's required fields and references.
func (c *Customer) Validate() error {
	var violations []error

	if err := c.UserID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if strings.TrimSpace(c.CompanyName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("company_name"))
	}
	if c.CreditLimit < 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("credit_limit", c.CreditLimit, 0, "+inf"))
	}

	return errors.Join(violations...)
}

package account

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// UserType classifies an account: plain administrative users, customers and
// drivers. Customer and driver accounts wrap a specialization row keyed on
// the user identifier.
type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeCustomer UserType = "customer"
	UserTypeDriver   UserType = "driver"
)

// Validate checks if the UserType is one of the known values.
func (t UserType) Validate() error {
	switch t {
	case UserTypeAdmin, UserTypeCustomer, UserTypeDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("user_type",
			fmt.Errorf("%q is not a valid user type", string(t)))
	}
}

// String returns the lowercase string representation of the user type.
func (t UserType) String() string {
	return string(t)
}

// User is an account record. Reference data: exported fields, invariants
// checked through Validate rather than encapsulated setters.
//
// PasswordHash holds a bcrypt hash, never a plaintext password. Hashing and
// verification happen in the application layer.
type User struct {
	ID           kernel.ID
	Username     string
	FullName     string
	Email        string
	Phone        string
	UserType     UserType
	PasswordHash string
}

// Validate checks the user's required fields.
func (u *User) Validate() error {
	var violations []error

	if strings.TrimSpace(u.Username) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("username"))
	}
	if strings.TrimSpace(u.FullName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("full_name"))
	}
	if strings.TrimSpace(u.PasswordHash) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("password"))
	}
	if err := u.UserType.Validate(); err != nil {
		violations = append(violations, err)
	}

	return errors.Join(violations...)
}

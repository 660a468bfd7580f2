package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
)

// LoginQuery authenticates a user by username and password.
//
// Example:
//
//	query, err := NewLoginQuery("ops_admin", "s3cret")
//	if err != nil {
//	    return err
//	}
//
//	user, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrUnauthorized) {
//	    // wrong username or password; the two cases are indistinguishable
//	}
type LoginQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates the query. Both credentials are required.
func NewLoginQuery(username, password string) (LoginQuery, error) {
	var violations []error

	if username == "" {
		violations = append(violations, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		violations = append(violations, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(violations...); err != nil {
		return LoginQuery{}, err
	}

	return LoginQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Username returns the login name to look up.
func (q LoginQuery) Username() string { return q.username }

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string { return q.password }

// LoginQueryResponse is the authenticated user's public profile. The
// password hash never leaves the handler.
type LoginQueryResponse struct {
	ID       kernel.ID
	Username string
	FullName string
	UserType account.UserType
}

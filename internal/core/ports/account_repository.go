package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
// Customer and driver creation insert a user row first and the
// specialization row second, inside one transaction.
type UserRepository interface {
	// Add persists a new user and returns its generated identifier.
	// Fails with a duplicate-key error when the username is taken.
	Add(ctx context.Context, user *account.User) (kernel.ID, error)

	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id kernel.ID) (*account.User, error)

	// GetByUsername retrieves a user by its unique username.
	GetByUsername(ctx context.Context, username string) (*account.User, error)

	// Delete removes a user by its identifier.
	Delete(ctx context.Context, id kernel.ID) error
}

// CustomerRepository defines the persistence contract for the customer
// specialization rows.
type CustomerRepository interface {
	// Add persists a new customer and returns its generated identifier.
	Add(ctx context.Context, customer *account.Customer) (kernel.ID, error)

	// Get retrieves a customer by its identifier.
	Get(ctx context.Context, id kernel.ID) (*account.Customer, error)

	// UpdateFields applies a partial update against an allow-list of columns.
	UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error

	// Delete removes a customer by its identifier. The wrapped user row is
	// deleted separately by the same command.
	Delete(ctx context.Context, id kernel.ID) error
}

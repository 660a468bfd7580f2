package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetShipmentsQueryIsNotConstructed = errors.New(
		"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
	)
)

// GetShipmentsQuery retrieves the shipment list. The unscoped form returns
// every shipment; the scoped form narrows the list to the shipments a
// customer owns or a driver is assigned to.
//
// Example:
//
//	query := NewGetShipmentsQuery()
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
type GetShipmentsQuery struct {
	userID   *kernel.ID
	userType account.UserType

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates an unscoped query over all shipments.
func NewGetShipmentsQuery() GetShipmentsQuery {
	return GetShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetShipmentsQueryForUser creates a query scoped to one user's
// shipments. Admins see everything, so only customer and driver scoping is
// accepted here.
func NewGetShipmentsQueryForUser(userID kernel.ID, userType account.UserType) (GetShipmentsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetShipmentsQuery{}, err
	}
	if userType != account.UserTypeCustomer && userType != account.UserTypeDriver {
		return GetShipmentsQuery{}, errs.NewValueIsInvalidError("user_type")
	}

	return GetShipmentsQuery{
		userID:   &userID,
		userType: userType,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// UserID returns the scoping user, or nil for the unscoped query.
func (q GetShipmentsQuery) UserID() *kernel.ID { return q.userID }

// UserType returns the scoping account type. Only meaningful when UserID
// is set.
func (q GetShipmentsQuery) UserType() account.UserType { return q.userType }

// GetShipmentsQueryResponse is one row of the shipment list read model.
// Origin and Destination are "City, State" display strings joined from the
// locations table.
type GetShipmentsQueryResponse struct {
	ID             kernel.ID
	TrackingNumber string
	Status         shipment.Status
	Origin         string
	Destination    string
	CreatedAt      time.Time
}

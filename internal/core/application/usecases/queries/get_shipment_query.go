package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
	ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
	)
)

// GetShipmentQuery retrieves one shipment with its line items, tracking
// timeline and joined display strings.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment id
//	}
type GetShipmentQuery struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates the query for one shipment.
func NewGetShipmentQuery(shipmentID kernel.ID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment identifier.
func (q GetShipmentQuery) ShipmentID() kernel.ID { return q.shipmentID }

// GetShipmentByTrackingNumberQuery retrieves the same detail read model
// keyed by the shipment's business identifier instead of its row id.
type GetShipmentByTrackingNumberQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery creates the query.
func NewGetShipmentByTrackingNumberQuery(trackingNumber string) (GetShipmentByTrackingNumberQuery, error) {
	if trackingNumber == "" {
		return GetShipmentByTrackingNumberQuery{}, errs.NewValueIsRequiredError("tracking_number")
	}

	return GetShipmentByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the requested business identifier.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() string { return q.trackingNumber }

// GetShipmentQueryResponse is the shipment detail read model. Optional
// references (route, vehicle, driver) are nil when unassigned, and their
// display fields are empty strings in that case.
type GetShipmentQueryResponse struct {
	ID             kernel.ID
	TrackingNumber string
	Status         shipment.Status

	CustomerID   kernel.ID
	CustomerName string
	CompanyName  string

	OriginID            kernel.ID
	OriginLocation      string
	DestinationID       kernel.ID
	DestinationLocation string

	RouteID *kernel.ID

	VehicleID    *kernel.ID
	LicensePlate string
	VehicleMake  string
	VehicleModel string

	DriverID   *kernel.ID
	DriverName string

	TotalWeight         float64
	TotalVolume         float64
	ShipmentValue       float64
	InsuranceRequired   bool
	SpecialInstructions string

	PickupDate        *time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CreatedAt         time.Time

	Items          []GetShipmentItemsQueryResponse
	TrackingEvents []GetTrackingEventsQueryResponse
}

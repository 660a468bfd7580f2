package shipment

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Details groups the optional attributes of a shipment: resource assignments,
// planning data, insurance, free-form instructions and the delivery timeline.
// A nil pointer means the attribute is absent.
type Details struct {
	RouteID             *kernel.ID
	VehicleID           *kernel.ID
	DriverID            *kernel.ID
	InsuranceRequired   bool
	SpecialInstructions string
	PickupDate          *time.Time
	EstimatedDelivery   *time.Time
	ActualDelivery      *time.Time
}

// Validate checks that every assigned reference in Details is a properly
// constructed identifier.
func (d Details) Validate() error {
	validateRef := func(id *kernel.ID) error {
		if id == nil {
			return nil
		}
		return id.Validate()
	}

	return errors.Join(
		validateRef(d.RouteID),
		validateRef(d.VehicleID),
		validateRef(d.DriverID),
	)
}

// Shipment represents a consignment moving between two locations. It is the
// aggregate root of the shipment core and owns the status field, the derived
// totals and the vehicle/driver assignment references.
//
// Shipment follows these invariants:
//   - Must have a non-empty tracking number, unique across all shipments
//   - Must reference a valid customer, origin and destination
//   - Totals are derived from the owned items and are never negative
//   - Status is a projection of the most recent tracking event (pending when
//     no events exist) and is overwritten, not transitioned
//   - Can only be created through NewShipment or RestoreShipment
//
// The identifier is assigned by the relational store: a freshly created
// Shipment has a zero ID until the repository persists it and reports the
// generated key back. RestoreShipment requires a valid ID because it
// reconstructs an already-persisted aggregate.
type Shipment struct {
	// id is the database-assigned identifier (zero until persisted)
	id kernel.ID

	// trackingNumber is the unique business key
	trackingNumber string

	// customerID references the owning customer
	customerID kernel.ID

	// originID and destinationID reference the endpoints of the journey
	originID      kernel.ID
	destinationID kernel.ID

	// status is the current state in the shipment lifecycle
	status Status

	// totals are the sums over the owned items
	totals Totals

	// details holds the optional attributes
	details Details

	// createdAt is set once at creation and never changes
	createdAt time.Time

	// isConstructed ensures the shipment was created via a factory method
	isConstructed bool
}

// NewShipment creates a new Shipment that has not been persisted yet.
// The identifier stays zero until the repository stores the aggregate, and
// createdAt is set to the current time.
//
// Parameters:
//   - trackingNumber: unique business key (must be non-blank)
//   - customerID, originID, destinationID: required references
//   - status: initial lifecycle state (callers default this to pending when
//     the client did not specify one)
//   - totals: initial sums (zero when items will be attached later)
//   - details: optional attributes, validated for reference integrity
//
// Returns a validation error if any parameter is invalid; the individual
// field errors are joined so the caller sees every violation at once.
func NewShipment(
	trackingNumber string,
	customerID kernel.ID,
	originID kernel.ID,
	destinationID kernel.ID,
	status Status,
	totals Totals,
	details Details,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingNumber(trackingNumber),
		s.setParties(customerID, originID, destinationID),
		s.setStatus(status),
		s.setTotals(totals),
		s.setDetails(details),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. Unlike
// NewShipment it requires the database-assigned identifier and the original
// creation timestamp. All invariants are re-validated so corrupt rows are
// rejected at the repository boundary.
func RestoreShipment(
	id kernel.ID,
	trackingNumber string,
	customerID kernel.ID,
	originID kernel.ID,
	destinationID kernel.ID,
	status Status,
	totals Totals,
	details Details,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		s.setTrackingNumber(trackingNumber),
		s.setParties(customerID, originID, destinationID),
		s.setStatus(status),
		s.setTotals(totals),
		s.setDetails(details),
	); err != nil {
		return nil, err
	}

	s.id = id
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the database-assigned identifier.
// The zero value indicates the shipment has not been persisted yet.
func (s *Shipment) ID() kernel.ID {
	return s.id
}

// TrackingNumber returns the unique business key.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// CustomerID returns the owning customer's identifier.
func (s *Shipment) CustomerID() kernel.ID {
	return s.customerID
}

// OriginID returns the identifier of the pickup location.
func (s *Shipment) OriginID() kernel.ID {
	return s.originID
}

// DestinationID returns the identifier of the delivery location.
func (s *Shipment) DestinationID() kernel.ID {
	return s.destinationID
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// Totals returns the sums derived from the owned items.
func (s *Shipment) Totals() Totals {
	return s.totals
}

// Details returns the optional attributes.
func (s *Shipment) Details() Details {
	return s.details
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// VehicleID returns the assigned vehicle's identifier, or nil when no
// vehicle is assigned.
func (s *Shipment) VehicleID() *kernel.ID {
	return s.details.VehicleID
}

// DriverID returns the assigned driver's identifier, or nil when no driver
// is assigned.
func (s *Shipment) DriverID() *kernel.ID {
	return s.details.DriverID
}

// Replace overwrites every mutable field of the shipment in one step. The
// tracking number, identifier and creation timestamp are immutable and stay
// untouched. This supports full-replacement updates where the client sends
// the complete new state rather than a delta.
//
// Resource availability side effects (releasing the previous vehicle or
// driver, occupying the new one) are not handled here: the caller compares
// the assignments before and after and updates the resource pool itself.
func (s *Shipment) Replace(
	customerID kernel.ID,
	originID kernel.ID,
	destinationID kernel.ID,
	status Status,
	totals Totals,
	details Details,
) error {
	if err := s.Validate(); err != nil {
		return err
	}

	// Validate everything before mutating so a failed replace leaves the
	// aggregate unchanged.
	probe := &Shipment{isConstructed: true}
	if err := errors.Join(
		probe.setParties(customerID, originID, destinationID),
		probe.setStatus(status),
		probe.setTotals(totals),
		probe.setDetails(details),
	); err != nil {
		return err
	}

	s.customerID = customerID
	s.originID = originID
	s.destinationID = destinationID
	s.status = status
	s.totals = totals
	s.details = details
	return nil
}

// ChangeStatus overwrites the lifecycle state. No transition rules are
// enforced: the status is a projection of the tracking log, so any valid
// status may replace any other.
func (s *Shipment) ChangeStatus(status Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.setStatus(status)
}

// ApplyTotals overwrites the derived sums after the owned items changed.
func (s *Shipment) ApplyTotals(totals Totals) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.setTotals(totals)
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setParties(customerID, originID, destinationID kernel.ID) error {
	if err := errors.Join(
		customerID.Validate(),
		originID.Validate(),
		destinationID.Validate(),
	); err != nil {
		return err
	}
	s.customerID = customerID
	s.originID = originID
	s.destinationID = destinationID
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	s.totals = totals
	return nil
}

func (s *Shipment) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	s.details = details
	return nil
}

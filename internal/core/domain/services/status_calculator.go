package services

import (
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
)

// StatusCalculator is a domain service implementing the status-derivation
// rule: the fixed mapping from a tracking event's type to the shipment
// status it implies. A shipment's status is always the rule applied to the
// event with the latest timestamp, or pending when no events exist.
//
// The mapping for issue and delay events is a product decision that has
// changed over time (an issue could plausibly mean returned). Those two
// entries are therefore configurable; the defaults keep the shipment
// in_transit.
//
// Key properties:
//   - Pure function of the event type, no state consulted
//   - Unconditional: the derived status overwrites whatever the shipment
//     carried before, legal-transition checks are deliberately absent
//   - Deterministic: the same event log always yields the same status
//
// Example usage:
//
//	calculator := services.NewStatusCalculator(services.DefaultStatusMapping())
//	status, _ := calculator.Derive(tracking.EventDelivery)
//	// status == shipment.StatusDelivered
type StatusCalculator struct {
	mapping map[tracking.EventType]shipment.Status
}

// DefaultStatusMapping returns the standard derivation table:
//
//	pickup    -> picked_up
//	departure -> in_transit
//	arrival   -> in_transit
//	delivery  -> delivered
//	issue     -> in_transit
//	delay     -> in_transit
func DefaultStatusMapping() map[tracking.EventType]shipment.Status {
	return map[tracking.EventType]shipment.Status{
		tracking.EventPickup:    shipment.StatusPickedUp,
		tracking.EventDeparture: shipment.StatusInTransit,
		tracking.EventArrival:   shipment.StatusInTransit,
		tracking.EventDelivery:  shipment.StatusDelivered,
		tracking.EventIssue:     shipment.StatusInTransit,
		tracking.EventDelay:     shipment.StatusInTransit,
	}
}

// NewStatusCalculator creates a StatusCalculator with the given derivation
// table. Entries missing from the table fall back to the defaults, so a
// configuration only has to override the statuses it disagrees with
// (typically issue and delay).
func NewStatusCalculator(overrides map[tracking.EventType]shipment.Status) StatusCalculator {
	mapping := DefaultStatusMapping()
	for eventType, status := range overrides {
		if eventType.Validate() != nil || status.Validate() != nil {
			continue
		}
		mapping[eventType] = status
	}
	return StatusCalculator{mapping: mapping}
}

// Derive maps a tracking event type to the shipment status it implies.
// Returns an error for unknown event types.
func (c StatusCalculator) Derive(eventType tracking.EventType) (shipment.Status, error) {
	if err := eventType.Validate(); err != nil {
		return "", err
	}
	return c.mapping[eventType], nil
}

// DeriveFromLatest applies the derivation rule to the most recent event of a
// shipment's log. A nil event means the log is empty and the shipment
// reverts to pending. This is the recalculation entry point used after an
// event is removed.
func (c StatusCalculator) DeriveFromLatest(latest *tracking.Event) (shipment.Status, error) {
	if latest == nil {
		return shipment.StatusPending, nil
	}
	if err := latest.Validate(); err != nil {
		return "", err
	}
	return c.Derive(latest.Type())
}

// InitialEventType returns the tracking event to synthesize when a shipment
// is created with a non-pending status: pickup when the shipment starts
// picked_up, departure otherwise. The second return value is false when no
// event should be synthesized.
func (c StatusCalculator) InitialEventType(status shipment.Status) (tracking.EventType, bool) {
	switch status {
	case shipment.StatusPending:
		return "", false
	case shipment.StatusPickedUp:
		return tracking.EventPickup, true
	default:
		return tracking.EventDeparture, true
	}
}

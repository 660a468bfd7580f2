// Package tracking implements the tracking event log of the shipment core.
//
// Each Event records one physical-world state change of a shipment (pickup,
// departure, arrival, delivery, issue, delay) at a location, with a
// server-assigned timestamp and the user who recorded it. Events are
// append-only: no update operation exists, and removing one requires the
// application layer to re-derive the owning shipment's status from the
// remaining most-recent event.
//
// The mapping from event types to shipment statuses is not part of this
// package; see the services package for the status derivation rules.
package tracking

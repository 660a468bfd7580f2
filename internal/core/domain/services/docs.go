// Package services contains domain services: business logic that does not
// belong to a single aggregate.
//
// StatusCalculator implements the status-derivation rule of the tracking
// engine — the mapping from the most recent tracking event's type to the
// shipment status it implies, with configurable entries for the ambiguous
// issue and delay cases.
package services

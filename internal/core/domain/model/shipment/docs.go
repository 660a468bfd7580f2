// Package shipment implements the Shipment aggregate, the core of the
// logistics domain model.
//
// A Shipment represents a consignment moving from an origin to a destination
// for a customer, optionally assigned a route, a vehicle and a driver. The
// aggregate owns:
//
//   - The status field, a projection of the most recent tracking event.
//     Status changes are overwrites, not guarded transitions; the tracking
//     log is the source of truth.
//   - The derived totals (total weight, total volume, shipment value), which
//     must always equal the sums over the owned items.
//   - The vehicle/driver assignment references, whose changes side-effect the
//     availability status of the resource pool.
//
// Item is a line item owned by exactly one shipment. Every item mutation
// obliges the application layer to recompute the owning shipment's totals;
// CalculateTotals implements that derivation as a pure function.
//
// All types enforce their invariants through factory constructors and
// validated mutators; direct struct instantiation yields objects that fail
// Validate.
package shipment

// Package vehicle models the transport resources of the resource pool.
//
// A Vehicle carries a unique license plate and an availability status that
// the shipment core mutates as a side effect of assignment: attaching a
// vehicle to a shipment marks it in_use, moving the shipment to a different
// vehicle releases the previous one. The maintenance status is set through
// plain vehicle updates only.
package vehicle

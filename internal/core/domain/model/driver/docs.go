// Package driver models the human resources of the resource pool.
//
// A Driver is a 1:1 specialization of a user account carrying licensing data
// and an availability status the shipment core controls through assignment,
// mirroring the vehicle side of the pool.
package driver

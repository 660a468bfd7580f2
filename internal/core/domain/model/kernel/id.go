package kernel

import (
	"strconv"

	"logistics/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or MustNewID")

// ID is a value object that represents a database-assigned surrogate identifier.
// It wraps a positive int64 to provide domain-specific behavior and validation.
// ID is designed to be used as an identifier for entities and aggregates in
// Domain-Driven Design.
//
// Identifiers are issued by the relational store (auto-increment primary keys),
// so unlike random identifiers they only exist after an aggregate has been
// persisted or when reconstructing one from storage. The zero value of ID is
// invalid and must be constructed using NewID or MustNewID.
//
// ID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Create from a persisted primary key
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as entity identifier
//	type Shipment struct {
//	    ID kernel.ID
//	    // other fields...
//	}
type ID struct {
	value int64
}

// NewID creates an ID from a database-assigned key.
// Returns an error if the value is not positive, since the relational store
// never issues zero or negative keys.
//
// Example:
//
//	shipmentID, err := kernel.NewID(row.ID)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment ID: %w", err)
//	}
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, int64(^uint64(0)>>1))
	}
	return ID{value: value}, nil
}

// MustNewID creates an ID from a database-assigned key and panics if the value
// is not positive. It is intended for restoring aggregates from trusted storage
// and for tests, where an invalid key indicates a programming error rather than
// a recoverable condition.
//
// Example:
//
//	id := kernel.MustNewID(1)
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Int64 returns the underlying numeric value.
// This method provides access to the raw key for persistence and serialization.
// Direct access should be minimized to maintain encapsulation.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal string representation of the ID.
// For a zero value ID, this returns "0".
//
// This method is commonly used for logging and for rendering identifiers in
// HTTP responses.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two IDs for equality.
// Returns true if both IDs represent the same value, false otherwise.
//
// Example:
//
//	id1 := kernel.MustNewID(1)
//	id2 := kernel.MustNewID(2)
//	id3 := id1
//
//	fmt.Println(id1.IsEqual(id2)) // false
//	fmt.Println(id1.IsEqual(id3)) // true
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed if the ID is a zero value.
//
// This method is useful for validating domain objects during construction
// or when receiving data from external sources.
//
// Example:
//
//	func NewItem(shipmentID kernel.ID) (*Item, error) {
//	    if err := shipmentID.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid shipment ID: %w", err)
//	    }
//	    // ...
//	}
func (i ID) Validate() error {
	if i.value == 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

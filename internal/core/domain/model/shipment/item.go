package shipment

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Totals holds the sums a shipment derives from its items.
// All three values are non-negative; a shipment with no items carries zero
// totals.
type Totals struct {
	Weight float64
	Volume float64
	Value  float64
}

// Validate checks that no total is negative.
func (t Totals) Validate() error {
	check := func(name string, v float64) error {
		if v < 0 {
			return errs.NewValueIsOutOfRangeError(name, v, 0, "+inf")
		}
		return nil
	}

	return errors.Join(
		check("total_weight", t.Weight),
		check("total_volume", t.Volume),
		check("shipment_value", t.Value),
	)
}

// Add returns the sum of two totals.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Weight: t.Weight + other.Weight,
		Volume: t.Volume + other.Volume,
		Value:  t.Value + other.Value,
	}
}

// CalculateTotals sums the per-line contributions of the given items.
// An empty slice yields zero totals, which matches the invariant that a
// shipment without items carries weight, volume and value of 0.
func CalculateTotals(items []*Item) Totals {
	var totals Totals
	for _, item := range items {
		totals = totals.Add(item.LineTotals())
	}
	return totals
}

// Item is a line item of a shipment: a quantity of identical goods with
// per-unit weight, volume and declared value. Items are owned by exactly one
// shipment; every item mutation obliges the caller to recompute the owning
// shipment's totals (both shipments when an item moves between them).
type Item struct {
	// id is the database-assigned identifier (zero until persisted)
	id kernel.ID

	// shipmentID references the owning shipment
	shipmentID kernel.ID

	description string
	quantity    int
	weight      float64
	volume      float64
	itemValue   float64
	isHazardous bool
	isFragile   bool

	isConstructed bool
}

// NewItem creates a new Item that has not been persisted yet.
//
// Quantity must be positive; weight, volume and value must be non-negative.
// The description must be non-blank.
func NewItem(
	shipmentID kernel.ID,
	description string,
	quantity int,
	weight float64,
	volume float64,
	itemValue float64,
	isHazardous bool,
	isFragile bool,
) (*Item, error) {
	item := &Item{
		isHazardous:   isHazardous,
		isFragile:     isFragile,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setShipmentID(shipmentID),
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setMeasures(weight, volume, itemValue),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(
	id kernel.ID,
	shipmentID kernel.ID,
	description string,
	quantity int,
	weight float64,
	volume float64,
	itemValue float64,
	isHazardous bool,
	isFragile bool,
) (*Item, error) {
	item, err := NewItem(shipmentID, description, quantity, weight, volume, itemValue, isHazardous, isFragile)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item instance was properly constructed through a
// factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the database-assigned identifier.
// The zero value indicates the item has not been persisted yet.
func (i *Item) ID() kernel.ID {
	return i.id
}

// ShipmentID returns the owning shipment's identifier.
func (i *Item) ShipmentID() kernel.ID {
	return i.shipmentID
}

// Description returns the human-readable description of the goods.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Weight returns the per-unit weight.
func (i *Item) Weight() float64 {
	return i.weight
}

// Volume returns the per-unit volume.
func (i *Item) Volume() float64 {
	return i.volume
}

// ItemValue returns the per-unit declared value.
func (i *Item) ItemValue() float64 {
	return i.itemValue
}

// IsHazardous reports whether the goods require hazardous-materials handling.
func (i *Item) IsHazardous() bool {
	return i.isHazardous
}

// IsFragile reports whether the goods require fragile handling.
func (i *Item) IsFragile() bool {
	return i.isFragile
}

// LineTotals returns this item's contribution to the owning shipment's
// totals: quantity multiplied by the per-unit weight, volume and value.
func (i *Item) LineTotals() Totals {
	q := float64(i.quantity)
	return Totals{
		Weight: q * i.weight,
		Volume: q * i.volume,
		Value:  q * i.itemValue,
	}
}

// Update overwrites the mutable attributes of the item, including the owning
// shipment. When the shipment reference changes, the caller recomputes the
// totals of both the previous and the new owner.
func (i *Item) Update(
	shipmentID kernel.ID,
	description string,
	quantity int,
	weight float64,
	volume float64,
	itemValue float64,
	isHazardous bool,
	isFragile bool,
) error {
	if err := i.Validate(); err != nil {
		return err
	}

	probe := &Item{isConstructed: true}
	if err := errors.Join(
		probe.setShipmentID(shipmentID),
		probe.setDescription(description),
		probe.setQuantity(quantity),
		probe.setMeasures(weight, volume, itemValue),
	); err != nil {
		return err
	}

	i.shipmentID = shipmentID
	i.description = description
	i.quantity = quantity
	i.weight = weight
	i.volume = volume
	i.itemValue = itemValue
	i.isHazardous = isHazardous
	i.isFragile = isFragile
	return nil
}

func (i *Item) setShipmentID(shipmentID kernel.ID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	i.shipmentID = shipmentID
	return nil
}

func (i *Item) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setMeasures(weight, volume, itemValue float64) error {
	check := func(name string, v float64) error {
		if v < 0 {
			return errs.NewValueIsOutOfRangeError(name, v, 0, "+inf")
		}
		return nil
	}

	if err := errors.Join(
		check("weight", weight),
		check("volume", volume),
		check("item_value", itemValue),
	); err != nil {
		return err
	}

	i.weight = weight
	i.volume = volume
	i.itemValue = itemValue
	return nil
}

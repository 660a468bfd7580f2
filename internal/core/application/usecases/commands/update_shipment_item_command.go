package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentItemCommandIsNotConstructed = errors.New(
	"UpdateShipmentItemCommand must be created via NewUpdateShipmentItemCommand constructor",
)

// UpdateShipmentItemCommand represents a full replacement of a line item's
// attributes, including a possible move to a different shipment.
type UpdateShipmentItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.ID
	shipmentID  kernel.ID
	description string
	quantity    int
	weight      float64
	volume      float64
	itemValue   float64
	isHazardous bool
	isFragile   bool

	guard guard.ConstructorGuard
}

// NewUpdateShipmentItemCommand creates a command to overwrite a line item.
func NewUpdateShipmentItemCommand(
	itemID kernel.ID,
	shipmentID kernel.ID,
	description string,
	quantity int,
	weight float64,
	volume float64,
	itemValue float64,
	isHazardous bool,
	isFragile bool,
) (UpdateShipmentItemCommand, error) {
	var violations []error

	if err := itemID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := shipmentID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if strings.TrimSpace(description) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("description"))
	}
	if quantity <= 0 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf"))
	}
	if err := errors.Join(violations...); err != nil {
		return UpdateShipmentItemCommand{}, err
	}

	return UpdateShipmentItemCommand{
		itemID:      itemID,
		shipmentID:  shipmentID,
		description: description,
		quantity:    quantity,
		weight:      weight,
		volume:      volume,
		itemValue:   itemValue,
		isHazardous: isHazardous,
		isFragile:   isFragile,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to overwrite.
func (c UpdateShipmentItemCommand) ItemID() kernel.ID {
	return c.itemID
}

// ShipmentID returns the identifier of the owning shipment after the update.
func (c UpdateShipmentItemCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

// Description returns the new description.
func (c UpdateShipmentItemCommand) Description() string {
	return c.description
}

// Quantity returns the new number of units.
func (c UpdateShipmentItemCommand) Quantity() int {
	return c.quantity
}

// Weight returns the new per-unit weight.
func (c UpdateShipmentItemCommand) Weight() float64 {
	return c.weight
}

// Volume returns the new per-unit volume.
func (c UpdateShipmentItemCommand) Volume() float64 {
	return c.volume
}

// ItemValue returns the new per-unit declared value.
func (c UpdateShipmentItemCommand) ItemValue() float64 {
	return c.itemValue
}

// IsHazardous returns the new hazardous-handling flag.
func (c UpdateShipmentItemCommand) IsHazardous() bool {
	return c.isHazardous
}

// IsFragile returns the new fragile-handling flag.
func (c UpdateShipmentItemCommand) IsFragile() bool {
	return c.isFragile
}

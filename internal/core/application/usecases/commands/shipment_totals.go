package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// refreshShipmentTotals recomputes a shipment's totals from its current
// items and persists the result. Invoked after every item insert, update and
// delete; an item moving between shipments triggers one refresh per affected
// shipment. A shipment left without items gets zero totals.
func refreshShipmentTotals(ctx context.Context, repos RepoFactory, shipmentID kernel.ID) error {
	items, err := repos.ShipmentItemRepository().GetByShipment(ctx, shipmentID)
	if err != nil {
		return err
	}

	aggregate, err := repos.ShipmentRepository().Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	if err = aggregate.ApplyTotals(shipment.CalculateTotals(items)); err != nil {
		return err
	}

	return repos.ShipmentRepository().Update(ctx, aggregate)
}

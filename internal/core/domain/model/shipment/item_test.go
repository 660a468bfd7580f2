package shipment_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	shipmentID := kernel.MustNewID(1)

	t.Run("should create item with valid parameters", func(t *testing.T) {
		item, err := shipment.NewItem(shipmentID, "Machine parts", 4, 2.5, 0.1, 120, false, true)

		require.NoError(t, err)
		assert.NoError(t, item.Validate())
		assert.True(t, item.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, "Machine parts", item.Description())
		assert.Equal(t, 4, item.Quantity())
		assert.False(t, item.IsHazardous())
		assert.True(t, item.IsFragile())
	})

	t.Run("should fail with blank description", func(t *testing.T) {
		_, err := shipment.NewItem(shipmentID, "  ", 1, 1, 1, 1, false, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := shipment.NewItem(shipmentID, "Crate", 0, 1, 1, 1, false, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with negative measures", func(t *testing.T) {
		_, err := shipment.NewItem(shipmentID, "Crate", 1, -1, 1, -5, false, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestItemLineTotals(t *testing.T) {
	t.Run("should multiply measures by quantity", func(t *testing.T) {
		item, err := shipment.NewItem(kernel.MustNewID(1), "Pallet", 3, 10, 0.5, 200, false, false)
		require.NoError(t, err)

		totals := item.LineTotals()

		assert.InDelta(t, 30.0, totals.Weight, 1e-9)
		assert.InDelta(t, 1.5, totals.Volume, 1e-9)
		assert.InDelta(t, 600.0, totals.Value, 1e-9)
	})
}

func TestCalculateTotals(t *testing.T) {
	shipmentID := kernel.MustNewID(1)

	t.Run("should be zero for no items", func(t *testing.T) {
		totals := shipment.CalculateTotals(nil)

		assert.Zero(t, totals)
	})

	t.Run("should sum contributions over all items", func(t *testing.T) {
		first, err := shipment.NewItem(shipmentID, "Drums", 2, 25, 0.2, 80, true, false)
		require.NoError(t, err)
		second, err := shipment.NewItem(shipmentID, "Boxes", 5, 1.2, 0.05, 15, false, false)
		require.NoError(t, err)

		totals := shipment.CalculateTotals([]*shipment.Item{first, second})

		assert.InDelta(t, 56.0, totals.Weight, 1e-9)
		assert.InDelta(t, 0.65, totals.Volume, 1e-9)
		assert.InDelta(t, 235.0, totals.Value, 1e-9)
	})
}

func TestItemUpdate(t *testing.T) {
	t.Run("should overwrite attributes including owner", func(t *testing.T) {
		item, err := shipment.RestoreItem(
			kernel.MustNewID(10), kernel.MustNewID(1),
			"Crate", 1, 5, 0.3, 50, false, false,
		)
		require.NoError(t, err)

		err = item.Update(kernel.MustNewID(2), "Reinforced crate", 2, 6, 0.35, 60, false, true)

		require.NoError(t, err)
		assert.Equal(t, int64(2), item.ShipmentID().Int64())
		assert.Equal(t, "Reinforced crate", item.Description())
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.IsFragile())
	})

	t.Run("should leave item unchanged on invalid input", func(t *testing.T) {
		item, err := shipment.RestoreItem(
			kernel.MustNewID(10), kernel.MustNewID(1),
			"Crate", 1, 5, 0.3, 50, false, false,
		)
		require.NoError(t, err)

		err = item.Update(kernel.MustNewID(2), "", -1, 6, 0.35, 60, false, false)

		require.Error(t, err)
		assert.Equal(t, int64(1), item.ShipmentID().Int64())
		assert.Equal(t, "Crate", item.Description())
		assert.Equal(t, 1, item.Quantity())
	})
}

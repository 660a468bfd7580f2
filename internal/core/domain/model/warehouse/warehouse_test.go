package warehouse_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarehouseValidate(t *testing.T) {
	validWarehouse := func() warehouse.Warehouse {
		return warehouse.Warehouse{
			LocationID:       kernel.MustNewID(3),
			WarehouseName:    "Bhiwandi Fulfillment Center",
			Capacity:         50000,
			CurrentOccupancy: 12000,
			OperatingHours:   "06:00-22:00",
		}
	}

	t.Run("should pass for complete warehouse", func(t *testing.T) {
		w := validWarehouse()

		assert.NoError(t, w.Validate())
	})

	t.Run("should fail without name", func(t *testing.T) {
		w := validWarehouse()
		w.WarehouseName = "  "

		err := w.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when occupancy exceeds capacity", func(t *testing.T) {
		w := validWarehouse()
		w.CurrentOccupancy = 60000

		err := w.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with invalid manager reference", func(t *testing.T) {
		w := validWarehouse()
		var zero kernel.ID
		w.ManagerID = &zero

		assert.Error(t, w.Validate())
	})
}

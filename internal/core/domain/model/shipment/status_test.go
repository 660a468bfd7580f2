package shipment_test

import (
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusFromString(t *testing.T) {
	t.Run("should parse all known statuses", func(t *testing.T) {
		for _, name := range []string{"pending", "picked_up", "in_transit", "delivered", "returned"} {
			status, err := shipment.NewStatusFromString(name)

			require.NoError(t, err, name)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := shipment.NewStatusFromString("lost")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := shipment.NewStatusFromString("")

		require.Error(t, err)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := shipment.NewStatusFromString("Pending")

		require.Error(t, err)
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var status shipment.Status

		assert.Error(t, status.Validate())
	})

	t.Run("should pass for declared constants", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusPending,
			shipment.StatusPickedUp,
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusReturned,
		} {
			assert.NoError(t, status.Validate())
		}
	})
}

package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCalculatorDerive(t *testing.T) {
	calculator := services.NewStatusCalculator(nil)

	t.Run("should map every event type per the default table", func(t *testing.T) {
		cases := map[tracking.EventType]shipment.Status{
			tracking.EventPickup:    shipment.StatusPickedUp,
			tracking.EventDeparture: shipment.StatusInTransit,
			tracking.EventArrival:   shipment.StatusInTransit,
			tracking.EventDelivery:  shipment.StatusDelivered,
			tracking.EventIssue:     shipment.StatusInTransit,
			tracking.EventDelay:     shipment.StatusInTransit,
		}

		for eventType, expected := range cases {
			status, err := calculator.Derive(eventType)

			require.NoError(t, err, eventType)
			assert.Equal(t, expected, status, eventType)
		}
	})

	t.Run("should fail for unknown event type", func(t *testing.T) {
		_, err := calculator.Derive(tracking.EventType("warp"))

		assert.Error(t, err)
	})
}

func TestStatusCalculatorOverrides(t *testing.T) {
	t.Run("should apply configured override for issue events", func(t *testing.T) {
		calculator := services.NewStatusCalculator(map[tracking.EventType]shipment.Status{
			tracking.EventIssue: shipment.StatusReturned,
		})

		status, err := calculator.Derive(tracking.EventIssue)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusReturned, status)
	})

	t.Run("should keep defaults for entries not overridden", func(t *testing.T) {
		calculator := services.NewStatusCalculator(map[tracking.EventType]shipment.Status{
			tracking.EventIssue: shipment.StatusReturned,
		})

		status, err := calculator.Derive(tracking.EventDelivery)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusDelivered, status)
	})

	t.Run("should ignore invalid override entries", func(t *testing.T) {
		calculator := services.NewStatusCalculator(map[tracking.EventType]shipment.Status{
			tracking.EventDelay:          shipment.Status("bogus"),
			tracking.EventType("teleport"): shipment.StatusReturned,
		})

		status, err := calculator.Derive(tracking.EventDelay)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusInTransit, status)
	})
}

func TestStatusCalculatorDeriveFromLatest(t *testing.T) {
	calculator := services.NewStatusCalculator(nil)

	t.Run("should revert to pending for empty log", func(t *testing.T) {
		status, err := calculator.DeriveFromLatest(nil)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusPending, status)
	})

	t.Run("should derive from the latest event", func(t *testing.T) {
		event, err := tracking.RestoreEvent(
			kernel.MustNewID(1), kernel.MustNewID(2), tracking.EventDelivery,
			kernel.MustNewID(3), kernel.MustNewID(4), "", time.Now().UTC(),
		)
		require.NoError(t, err)

		status, err := calculator.DeriveFromLatest(event)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusDelivered, status)
	})
}

func TestStatusCalculatorInitialEventType(t *testing.T) {
	calculator := services.NewStatusCalculator(nil)

	t.Run("should synthesize nothing for pending", func(t *testing.T) {
		_, ok := calculator.InitialEventType(shipment.StatusPending)

		assert.False(t, ok)
	})

	t.Run("should synthesize pickup for picked_up", func(t *testing.T) {
		eventType, ok := calculator.InitialEventType(shipment.StatusPickedUp)

		require.True(t, ok)
		assert.Equal(t, tracking.EventPickup, eventType)
	})

	t.Run("should synthesize departure for any other status", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusReturned,
		} {
			eventType, ok := calculator.InitialEventType(status)

			require.True(t, ok, status)
			assert.Equal(t, tracking.EventDeparture, eventType, status)
		}
	})
}

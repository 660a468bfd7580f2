package tracking_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	shipmentID := kernel.MustNewID(1)
	locationID := kernel.MustNewID(2)
	recordedBy := kernel.MustNewID(3)

	t.Run("should create event with server-assigned timestamp", func(t *testing.T) {
		before := time.Now().UTC()

		event, err := tracking.NewEvent(shipmentID, tracking.EventPickup, locationID, recordedBy, "collected at dock 4")

		require.NoError(t, err)
		assert.NoError(t, event.Validate())
		assert.True(t, event.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, tracking.EventPickup, event.Type())
		assert.True(t, event.LocationID().IsEqual(locationID))
		assert.True(t, event.RecordedBy().IsEqual(recordedBy))
		assert.Equal(t, "collected at dock 4", event.Notes())
		assert.False(t, event.Timestamp().Before(before))
		assert.Error(t, event.ID().Validate(), "new event must not carry an identifier yet")
	})

	t.Run("should allow empty notes", func(t *testing.T) {
		event, err := tracking.NewEvent(shipmentID, tracking.EventArrival, locationID, recordedBy, "")

		require.NoError(t, err)
		assert.Empty(t, event.Notes())
	})

	t.Run("should fail with unconstructed shipment reference", func(t *testing.T) {
		var zero kernel.ID

		_, err := tracking.NewEvent(zero, tracking.EventPickup, locationID, recordedBy, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid event type", func(t *testing.T) {
		_, err := tracking.NewEvent(shipmentID, tracking.EventType("teleport"), locationID, recordedBy, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without recorder", func(t *testing.T) {
		var zero kernel.ID

		_, err := tracking.NewEvent(shipmentID, tracking.EventDelivery, locationID, zero, "")

		require.Error(t, err)
	})
}

func TestRestoreEvent(t *testing.T) {
	timestamp := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	t.Run("should restore event with identifier and original timestamp", func(t *testing.T) {
		event, err := tracking.RestoreEvent(
			kernel.MustNewID(99), kernel.MustNewID(1), tracking.EventDelay,
			kernel.MustNewID(2), kernel.MustNewID(3), "traffic on NH48", timestamp,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(99), event.ID().Int64())
		assert.Equal(t, timestamp, event.Timestamp())
	})

	t.Run("should fail without identifier", func(t *testing.T) {
		var zero kernel.ID

		_, err := tracking.RestoreEvent(
			zero, kernel.MustNewID(1), tracking.EventDelay,
			kernel.MustNewID(2), kernel.MustNewID(3), "", timestamp,
		)

		require.Error(t, err)
	})
}

func TestNewEventTypeFromString(t *testing.T) {
	t.Run("should parse all known event types", func(t *testing.T) {
		for _, name := range []string{"pickup", "departure", "arrival", "delivery", "issue", "delay"} {
			eventType, err := tracking.NewEventTypeFromString(name)

			require.NoError(t, err, name)
			assert.Equal(t, name, eventType.String())
		}
	})

	t.Run("should reject unknown event type", func(t *testing.T) {
		_, err := tracking.NewEventTypeFromString("warp")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := tracking.NewEventTypeFromString("")

		require.Error(t, err)
	})
}

func TestEventValidate(t *testing.T) {
	t.Run("should fail for directly instantiated event", func(t *testing.T) {
		var event tracking.Event

		assert.ErrorIs(t, event.Validate(), tracking.ErrEventIsNotConstructed)
	})
}

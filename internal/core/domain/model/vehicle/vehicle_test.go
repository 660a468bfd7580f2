package vehicle_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("should create vehicle with valid parameters", func(t *testing.T) {
		locationID := kernel.MustNewID(4)

		v, err := vehicle.NewVehicle(
			"MH-12-AB-1234", "Tata", "Prima", 2022, 16000, "truck",
			vehicle.StatusAvailable, &locationID, nil,
		)

		require.NoError(t, err)
		assert.NoError(t, v.Validate())
		assert.Equal(t, "MH-12-AB-1234", v.LicensePlate())
		assert.Equal(t, vehicle.StatusAvailable, v.Status())
		require.NotNil(t, v.CurrentLocationID())
		assert.True(t, v.CurrentLocationID().IsEqual(locationID))
		assert.Nil(t, v.LastInspectionDate())
	})

	t.Run("should fail with blank license plate", func(t *testing.T) {
		_, err := vehicle.NewVehicle(
			"", "Tata", "Prima", 2022, 16000, "truck",
			vehicle.StatusAvailable, nil, nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(
			"MH-12-AB-1234", "Tata", "Prima", 2022, -1, "truck",
			vehicle.StatusAvailable, nil, nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := vehicle.NewVehicle(
			"MH-12-AB-1234", "Tata", "Prima", 2022, 16000, "truck",
			vehicle.Status("scrapped"), nil, nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicleAvailability(t *testing.T) {
	newVehicle := func(t *testing.T, status vehicle.Status) *vehicle.Vehicle {
		t.Helper()
		v, err := vehicle.RestoreVehicle(
			kernel.MustNewID(1), "MH-12-AB-1234", "Tata", "Prima", 2022, 16000, "truck",
			status, nil, nil,
		)
		require.NoError(t, err)
		return v
	}

	t.Run("should mark vehicle in use on assignment", func(t *testing.T) {
		v := newVehicle(t, vehicle.StatusAvailable)

		require.NoError(t, v.MarkInUse())
		assert.Equal(t, vehicle.StatusInUse, v.Status())
	})

	t.Run("should release vehicle on reassignment", func(t *testing.T) {
		v := newVehicle(t, vehicle.StatusInUse)

		require.NoError(t, v.Release())
		assert.Equal(t, vehicle.StatusAvailable, v.Status())
	})
}

func TestVehicleStatusFromString(t *testing.T) {
	t.Run("should parse all known statuses", func(t *testing.T) {
		for _, name := range []string{"available", "in_use", "maintenance"} {
			status, err := vehicle.NewStatusFromString(name)

			require.NoError(t, err, name)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := vehicle.NewStatusFromString("parked")

		require.Error(t, err)
	})
}

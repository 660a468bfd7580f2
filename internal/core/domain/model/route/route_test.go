package route_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteValidate(t *testing.T) {
	validRoute := func() route.Route {
		return route.Route{
			RouteName:            "Mumbai-Delhi Express",
			OriginID:             kernel.MustNewID(1),
			DestinationID:        kernel.MustNewID(2),
			DistanceKm:           1420,
			EstimatedDurationMin: 1560,
			Status:               route.DefaultStatus,
			HazardLevel:          route.DefaultHazardLevel,
		}
	}

	t.Run("should pass for complete route", func(t *testing.T) {
		r := validRoute()

		assert.NoError(t, r.Validate())
	})

	t.Run("should fail without name", func(t *testing.T) {
		r := validRoute()
		r.RouteName = ""

		err := r.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive distance", func(t *testing.T) {
		r := validRoute()
		r.DistanceKm = 0

		err := r.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail without endpoints", func(t *testing.T) {
		r := validRoute()
		r.OriginID = kernel.ID{}

		assert.Error(t, r.Validate())
	})
}

func TestWaypointValidate(t *testing.T) {
	t.Run("should pass for valid waypoint", func(t *testing.T) {
		w := route.Waypoint{
			RouteID:       kernel.MustNewID(1),
			LocationID:    kernel.MustNewID(2),
			SequenceOrder: 1,
		}

		assert.NoError(t, w.Validate())
	})

	t.Run("should fail with zero sequence order", func(t *testing.T) {
		w := route.Waypoint{
			RouteID:       kernel.MustNewID(1),
			LocationID:    kernel.MustNewID(2),
			SequenceOrder: 0,
		}

		err := w.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

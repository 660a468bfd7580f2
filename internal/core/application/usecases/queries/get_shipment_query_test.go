package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentQuery(kernel.MustNewID(42))
	require.NoError(t, err)
	assert.Equal(t, kernel.MustNewID(42), query.ShipmentID())
}

func TestNewGetShipmentQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(kernel.ID{})
	require.Error(t, err)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}

func TestNewGetShipmentByTrackingNumberQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentByTrackingNumberQuery("TRK-1001")
	require.NoError(t, err)
	assert.Equal(t, "TRK-1001", query.TrackingNumber())
}

func TestNewGetShipmentByTrackingNumberQuery_EmptyTrackingNumber(t *testing.T) {
	_, err := queries.NewGetShipmentByTrackingNumberQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetShipmentByTrackingNumberQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentByTrackingNumberQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

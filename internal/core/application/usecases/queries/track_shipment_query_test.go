package queries_test

import (
	"testing"

	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/queries"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackShipmentQuery_NormalizesInput(t *testing.T) {
	query, err := queries.NewTrackShipmentQuery("  trk-ab12cd34 ")
	require.NoError(t, err)
	assert.Equal(t, "TRK-AB12CD34", query.TrackingNumber().String())
}

func TestNewTrackShipmentQuery_TooShort(t *testing.T) {
	_, err := queries.NewTrackShipmentQuery("TRK")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewTrackShipmentQuery_Empty(t *testing.T) {
	_, err := queries.NewTrackShipmentQuery("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTrackShipmentQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.TrackShipmentQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackShipmentQueryIsNotConstructed)
}

package queries

import (
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
)

// TrackShipmentQuery looks up a single shipment by its public tracking
// number. This is the one read that needs no identity: recipients track
// parcels without an account.
//
// Example:
//
//	query, err := NewTrackShipmentQuery(" trk-ab12cd34 ")
//	if err != nil {
//	    return fmt.Errorf("bad tracking number: %w", err)
//	}
//
//	handler := NewTrackShipmentQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking lookup query from raw user input.
// The input is trimmed and upper-cased before the lookup, so " trk-ab12cd34 "
// and "TRK-AB12CD34" find the same shipment. Inputs shorter than the minimum
// length are rejected as invalid rather than treated as not found.
func NewTrackShipmentQuery(rawTrackingNumber string) (TrackShipmentQuery, error) {
	trackingNumber, err := shipment.TrackingNumberFromInput(rawTrackingNumber)
	if err != nil {
		return TrackShipmentQuery{}, err
	}

	return TrackShipmentQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackShipmentQueryIsNotConstructed if validation fails.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the normalized tracking number to look up.
func (q TrackShipmentQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}

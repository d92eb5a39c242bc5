package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shipmentColumns is the select list every shipment read shares.
// Keep it in sync with scanShipment.
const shipmentColumns = `
	id,
	tracking_number,
	owner_id,
	sender_name,
	sender_address,
	recipient_name,
	recipient_address,
	details,
	status,
	created_at,
	updated_at`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanShipment reads one shipment row into the shared response model.
func scanShipment(row rowScanner) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, ownerID uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&ownerID,
		&resp.SenderName,
		&resp.SenderAddress,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&resp.Details,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}

	resp.ID = shipmentID
	resp.OwnerID = owner
	resp.Status = shipment.Status(status)
	return resp, nil
}

// TrackShipmentQueryHandler retrieves a shipment by tracking number directly
// from the database.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns a not-found error carrying the normalized tracking number when no
// shipment matches, so the caller can echo back exactly what was searched.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	resp, err := scanShipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String(),
		)
	}
	if err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"context"
	"database/sql"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves the caller's visible shipments from
// the database. The access policy decides whether the result set is the
// caller's own shipments or the whole table.
type ListShipmentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
// Requires a GORM database connection and the access policy for scoping.
func NewListShipmentsQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing query.
// Results are ordered by creation time, oldest first, so the listing reads
// as a history.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.policy.ListScope(query.RequesterRole())
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	switch scope {
	case services.ListScopeAll:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT`+shipmentColumns+`
			FROM shipments
			ORDER BY created_at
		`).Rows()
	default:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT`+shipmentColumns+`
			FROM shipments
			WHERE owner_id = ?
			ORDER BY created_at
		`, query.RequesterID().Bytes()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		resp, scanErr := scanShipment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

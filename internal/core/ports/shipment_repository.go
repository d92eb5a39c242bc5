package ports

import (
	"context"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid. Returns an already-exists error on a
	// tracking number collision, which the unique index makes visible.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its public tracking
	// number. The tracking number must already be normalized; construction
	// via shipment.TrackingNumberFromInput guarantees that.
	GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)
}

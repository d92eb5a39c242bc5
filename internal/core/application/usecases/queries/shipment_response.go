// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate repositories and read the database
// directly, returning flat response models shaped for presentation.
package queries

import (
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
)

// ShipmentResponse is the read model for a single shipment.
// Shared by the tracking and listing queries; both expose the same shape.
type ShipmentResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	OwnerID          kernel.UUID
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Details          string
	Status           shipment.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

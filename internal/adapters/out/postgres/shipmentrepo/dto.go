// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
// The unique index on the tracking number is the collision guard for
// generated numbers; the owner index serves the per-client listing.
type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string    `gorm:"uniqueIndex"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index"`
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Details          string
	Status           int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingNumber:   aggregate.TrackingNumber().String(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		SenderName:       aggregate.SenderName(),
		SenderAddress:    aggregate.SenderAddress(),
		RecipientName:    aggregate.RecipientName(),
		RecipientAddress: aggregate.RecipientAddress(),
		Details:          aggregate.Details(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromInput(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		ownerID,
		dto.SenderName,
		dto.SenderAddress,
		dto.RecipientName,
		dto.RecipientAddress,
		dto.Details,
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

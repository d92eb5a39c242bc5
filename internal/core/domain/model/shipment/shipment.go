package shipment

import (
	"errors"
	"strings"
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Shipment represents a registered shipment in the system. It is the
// aggregate root that manages the record from creation by a client through
// status updates by an admin.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and a valid owning account reference
//   - The tracking number is assigned exactly once at creation and never
//     regenerated or reused; the owning account reference is likewise
//     immutable after creation
//   - Sender and recipient fields plus the free-text details are non-empty
//   - Status is always one of the three enumerated values; transitions are
//     unconstrained in direction
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	ownerID        kernel.UUID

	senderName       string
	senderAddress    string
	recipientName    string
	recipientAddress string
	details          string

	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipment creates a new Shipment at registration time.
// The shipment starts in StatusPending with creation and modification
// timestamps set to now. The tracking number must be freshly generated by
// the caller; it is never reassigned afterwards.
//
// Returns a validation error if any identifier is invalid or any of the
// sender, recipient, or details fields is empty.
func NewShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	ownerID kernel.UUID,
	senderName, senderAddress string,
	recipientName, recipientAddress string,
	details string,
) (*Shipment, error) {
	now := time.Now().UTC()
	s := &Shipment{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOwnerID(ownerID),
		s.setSender(senderName, senderAddress),
		s.setRecipient(recipientName, recipientAddress),
		s.setDetails(details),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
// Applies the same field validation as NewShipment but keeps the stored
// status and timestamps.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	ownerID kernel.UUID,
	senderName, senderAddress string,
	recipientName, recipientAddress string,
	details string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, trackingNumber, ownerID, senderName, senderAddress, recipientName, recipientAddress, details)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a factory method.
// Returns ErrShipmentIsNotConstructed otherwise.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's internal identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the public tracking number.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// OwnerID returns the identifier of the account that created the shipment.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// SenderName returns the sender's display name, taken from the owning
// account's profile at creation time.
func (s *Shipment) SenderName() string {
	return s.senderName
}

// SenderAddress returns the sender's contact, taken from the owning
// account's profile at creation time.
func (s *Shipment) SenderAddress() string {
	return s.senderAddress
}

// RecipientName returns the recipient's display name.
func (s *Shipment) RecipientName() string {
	return s.recipientName
}

// RecipientAddress returns the recipient's delivery address.
func (s *Shipment) RecipientAddress() string {
	return s.recipientAddress
}

// Details returns the free-text shipment details.
func (s *Shipment) Details() string {
	return s.details
}

// Status returns the current delivery status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ChangeStatus sets a new delivery status and bumps the modification
// timestamp. Any valid status may be assigned regardless of the current one;
// direction is unconstrained so operators can correct mistakes.
//
// Returns a validation error if newStatus is not one of the three
// enumerated values. The shipment is unchanged on error.
func (s *Shipment) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	s.status = newStatus
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shipment) setSender(name, address string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("senderAddress")
	}
	s.senderName = name
	s.senderAddress = address
	return nil
}

func (s *Shipment) setRecipient(name, address string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}
	s.recipientName = name
	s.recipientAddress = address
	return nil
}

func (s *Shipment) setDetails(details string) error {
	if strings.TrimSpace(details) == "" {
		return errs.NewValueIsRequiredError("shipmentDetails")
	}
	s.details = details
	return nil
}

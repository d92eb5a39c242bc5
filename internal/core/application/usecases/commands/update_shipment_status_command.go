package commands

import (
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new status. The raw status string is parsed at construction, so an
// unrecognized value is rejected before the handler touches storage.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	requesterRole account.Role
	newStatus     shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a shipment's
// status. The raw status must be one of the exact status labels; matching is
// case-sensitive.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	requesterRole account.Role,
	rawStatus string,
) (UpdateShipmentStatusCommand, error) {
	newStatus, err := shipment.StatusFromString(rawStatus)
	if err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	cmd := UpdateShipmentStatusCommand{
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setRequesterRole(requesterRole),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the internal identifier of the shipment to update.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// RequesterRole returns the role of the caller requesting the update.
func (c UpdateShipmentStatusCommand) RequesterRole() account.Role {
	return c.requesterRole
}

// NewStatus returns the parsed target status.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.Status {
	return c.newStatus
}

func (c *UpdateShipmentStatusCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentStatusCommand) setRequesterRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.requesterRole = role
	return nil
}

package commands

import (
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to create a new shipment on
// behalf of the authenticated caller. Sender details are not part of the
// command: the handler reads them from the caller's account record, so a
// client can never ship under someone else's name.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(callerID, callerRole, "Bob", "12 Elm St", "Books, 2kg")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, policy)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	requesterID      kernel.UUID
	requesterRole    account.Role
	recipientName    string
	recipientAddress string
	details          string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// The requester identity comes from the verified token, never from the
// request body. Recipient name, recipient address, and details are required.
func NewCreateShipmentCommand(
	requesterID kernel.UUID,
	requesterRole account.Role,
	recipientName, recipientAddress, details string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requesterID, requesterRole),
		cmd.setRecipient(recipientName, recipientAddress),
		cmd.setDetails(details),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// RequesterID returns the account ID of the caller creating the shipment.
func (c CreateShipmentCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// RequesterRole returns the role of the caller creating the shipment.
func (c CreateShipmentCommand) RequesterRole() account.Role {
	return c.requesterRole
}

// RecipientName returns the name of the shipment recipient.
func (c CreateShipmentCommand) RecipientName() string {
	return c.recipientName
}

// RecipientAddress returns the delivery address of the shipment.
func (c CreateShipmentCommand) RecipientAddress() string {
	return c.recipientAddress
}

// Details returns the free-form description of the shipment contents.
func (c CreateShipmentCommand) Details() string {
	return c.details
}

func (c *CreateShipmentCommand) setRequester(id kernel.UUID, role account.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.requesterID = id
	c.requesterRole = role
	return nil
}

func (c *CreateShipmentCommand) setRecipient(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}

	c.recipientName = name
	c.recipientAddress = address
	return nil
}

func (c *CreateShipmentCommand) setDetails(details string) error {
	if details == "" {
		return errs.NewValueIsRequiredError("shipmentDetails")
	}

	c.details = details
	return nil
}

package commands

import (
	"context"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Authorizes the caller, resolves the sender details from the caller's
// account record, generates a fresh tracking number, and persists the new
// shipment inside a transaction.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a cross-aggregate UoWFactory because the handler reads the
// caller's account while writing the shipment.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the shipment creation command and returns the created
// shipment. Sender name and address come from the caller's account, never
// from the command, so the stored sender always matches a real account.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.RequesterRole(), services.OperationCreateShipment); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := uow.AccountRepository().Get(ctx, cmd.RequesterID())
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.GenerateTrackingNumber()
	if err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(
		kernel.NewUUID(),
		trackingNumber,
		sender.ID(),
		sender.Name(),
		sender.Email(),
		cmd.RecipientName(),
		cmd.RecipientAddress(),
		cmd.Details(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShipment, nil
}

package commands

import (
	"context"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"
)

// UpdateShipmentStatusCommandHandler handles the business logic for status
// updates. Authorization runs before the shipment is loaded, so a denied
// caller learns nothing about which shipment IDs exist.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment
// status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory, policy services.AccessPolicy) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status update command and returns the updated
// shipment.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.RequesterRole(), services.OperationUpdateShipmentStatus); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepository := uow.ShipmentRepository()

	target, err := shipmentRepository.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = target.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = shipmentRepository.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

package http

import (
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/queries"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// Request and response contracts for the JSON API. Field names mirror what
// the frontend sends and expects.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateShipmentRequest is the body of POST /api/shipments.
type CreateShipmentRequest struct {
	RecipientName    string `json:"recipientName"`
	RecipientAddress string `json:"recipientAddress"`
	ShipmentDetails  string `json:"shipmentDetails"`
}

// UpdateShipmentStatusRequest is the body of PUT /api/shipments/:id.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// AccountResponse is the public view of an account.
// The password hash never appears in any response.
type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    AccountResponse `json:"user"`
}

// ShipmentResponse is the public view of a shipment.
type ShipmentResponse struct {
	ID               uuid.UUID `json:"id"`
	TrackingNumber   string    `json:"trackingNumber"`
	UserID           uuid.UUID `json:"userId"`
	SenderName       string    `json:"senderName"`
	SenderAddress    string    `json:"senderAddress"`
	RecipientName    string    `json:"recipientName"`
	RecipientAddress string    `json:"recipientAddress"`
	ShipmentDetails  string    `json:"shipmentDetails"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ShipmentMessageResponse wraps a shipment with a confirmation message for
// the mutating endpoints.
type ShipmentMessageResponse struct {
	Message  string           `json:"message"`
	Shipment ShipmentResponse `json:"shipment"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// shipmentResponseFromAggregate maps a shipment aggregate to its public view.
func shipmentResponseFromAggregate(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:               s.ID().Bytes(),
		TrackingNumber:   s.TrackingNumber().String(),
		UserID:           s.OwnerID().Bytes(),
		SenderName:       s.SenderName(),
		SenderAddress:    s.SenderAddress(),
		RecipientName:    s.RecipientName(),
		RecipientAddress: s.RecipientAddress(),
		ShipmentDetails:  s.Details(),
		Status:           s.Status().String(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

// shipmentResponseFromReadModel maps a query read model to the public view.
func shipmentResponseFromReadModel(m queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:               m.ID.Bytes(),
		TrackingNumber:   m.TrackingNumber,
		UserID:           m.OwnerID.Bytes(),
		SenderName:       m.SenderName,
		SenderAddress:    m.SenderAddress,
		RecipientName:    m.RecipientName,
		RecipientAddress: m.RecipientAddress,
		ShipmentDetails:  m.Details,
		Status:           m.Status.String(),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

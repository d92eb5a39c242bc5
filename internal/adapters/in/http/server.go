// Package http implements the inbound JSON API.
// Handlers translate requests into commands and queries, and domain errors
// back into the status codes and messages the frontend expects.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/commands"
	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/queries"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	signer ports.TokenSigner

	// Command handlers
	registerAccountHandler      commands.RegisterAccountCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	authenticateAccountHandler queries.AuthenticateAccountQueryHandler
	trackShipmentHandler       queries.TrackShipmentQueryHandler
	listShipmentsHandler       queries.ListShipmentsQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	signer ports.TokenSigner,
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	authenticateAccountHandler queries.AuthenticateAccountQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
) *Server {
	return &Server{
		signer:                      signer,
		registerAccountHandler:      registerAccountHandler,
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		authenticateAccountHandler:  authenticateAccountHandler,
		trackShipmentHandler:        trackShipmentHandler,
		listShipmentsHandler:        listShipmentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// GET /api/shipments/:trackingNumber is deliberately public; everything
// else under /api/shipments requires a verified token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)

	e.GET("/api/shipments/:trackingNumber", s.TrackShipment)

	shipments := e.Group("/api/shipments", requireAuth(s.signer))
	shipments.POST("", s.CreateShipment)
	shipments.GET("", s.ListShipments)
	shipments.PUT("/:id", s.UpdateShipmentStatus)
}

// Register handles POST /api/auth/register.
// A successful registration logs the account in immediately: the response
// carries a fresh token alongside the created account.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewRegisterAccountCommand(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Name, email, and password are required",
		})
	}

	created, err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
		}
		return writeError(ctx, err)
	}

	token, err := s.signer.Sign(ports.AccessClaims{
		AccountID: created.ID(),
		Email:     created.Email(),
		Role:      created.Role(),
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User: AccountResponse{
			ID:    created.ID().Bytes(),
			Name:  created.Name(),
			Email: created.Email(),
			Role:  created.Role().String(),
		},
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	query, err := queries.NewAuthenticateAccountQuery(req.Email, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Please provide both email and password",
		})
	}

	identity, err := s.authenticateAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.signer.Sign(ports.AccessClaims{
		AccountID: identity.AccountID,
		Email:     identity.Email,
		Role:      identity.Role,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: AccountResponse{
			ID:    identity.AccountID.Bytes(),
			Name:  identity.Name,
			Email: identity.Email,
			Role:  identity.Role.String(),
		},
	})
}

// CreateShipment handles POST /api/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required. Please log in."})
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		claims.AccountID, claims.Role,
		req.RecipientName, req.RecipientAddress, req.ShipmentDetails,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Recipient name, address, and shipment details are required",
		})
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ShipmentMessageResponse{
		Message:  "Shipment created successfully",
		Shipment: shipmentResponseFromAggregate(created),
	})
}

// TrackShipment handles GET /api/shipments/:trackingNumber.
// Public by design: recipients track parcels without an account.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Please enter a valid tracking number (e.g., TRK-ABC12345)",
		})
	}

	result, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: fmt.Sprintf(
					"Tracking number %q not found. Please verify the tracking number and try again.",
					query.TrackingNumber().String(),
				),
			})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(result))
}

// ListShipments handles GET /api/shipments.
// Clients receive their own shipments, admins the full set.
func (s *Server) ListShipments(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required. Please log in."})
	}

	query, err := queries.NewListShipmentsQuery(claims.AccountID, claims.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentResponse, len(results))
	for i, m := range results {
		response[i] = shipmentResponseFromReadModel(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipmentStatus handles PUT /api/shipments/:id.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required. Please log in."})
	}

	policy := services.NewAccessPolicy()
	if err := policy.Authorize(claims.Role, services.OperationUpdateShipmentStatus); err != nil {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Error: "You do not have permission to perform this action",
		})
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Shipment not found"})
	}

	var req UpdateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, claims.Role, req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Valid status is required"})
	}

	updated, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Shipment not found"})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentMessageResponse{
		Message:  "Shipment updated successfully",
		Shipment: shipmentResponseFromAggregate(updated),
	})
}

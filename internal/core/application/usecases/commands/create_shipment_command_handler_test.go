package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/commands"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/shipment"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(_ context.Context, _ shipment.TrackingNumber) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func restoredTestAccount(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	acct, err := account.NewAccount(id, "Jane Doe", "jane@example.com", "$2a$10$hash", account.RoleClient)
	require.NoError(t, err)
	return acct
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(requesterID, account.RoleClient, "Bob", "12 Elm St", "Books, 2kg")

	acct := restoredTestAccount(t, requesterID)

	accountRepo := new(MockAccountRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, requesterID).Return(acct, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewAccessPolicy())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Jane Doe", created.SenderName())
	assert.Equal(t, "jane@example.com", created.SenderAddress())
	assert.Equal(t, requesterID, created.OwnerID())
	assert.Equal(t, shipment.StatusPending, created.Status())
	accountRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AdminDenied(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(kernel.NewUUID(), account.RoleAdmin, "Bob", "12 Elm St", "Books")

	factory := new(MockUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, services.NewAccessPolicy())
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, services.NewAccessPolicy())
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
}

func TestCreateShipmentCommandHandler_Handle_AccountNotFound(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(requesterID, account.RoleClient, "Bob", "12 Elm St", "Books")

	notFound := errs.NewObjectNotFoundError("userId", requesterID.String())

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, requesterID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewAccessPolicy())
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(requesterID, account.RoleClient, "Bob", "12 Elm St", "Books")

	acct := restoredTestAccount(t, requesterID)

	accountRepo := new(MockAccountRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, requesterID).Return(acct, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewAccessPolicy())
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(requesterID, account.RoleClient, "Bob", "12 Elm St", "Books")

	acct := restoredTestAccount(t, requesterID)

	accountRepo := new(MockAccountRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, requesterID).Return(acct, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewAccessPolicy())
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
}

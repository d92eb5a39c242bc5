package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/commands"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}
func (m *MockAccountRepository) GetByEmail(_ context.Context, _ string) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Verify(password, encodedHash string) bool {
	args := m.Called(password, encodedHash)
	return args.Bool(0)
}

func TestRegisterAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "jane@example.com", created.Email())
	require.Equal(t, account.RoleClient, created.Role())
	hasher.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_AdminHint(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand("Root", "root@example.com", "s3cret", "admin")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, account.RoleAdmin, created.Role())
}

func TestRegisterAccountCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterAccountCommand{} // not constructed properly
	factory := new(MockAccountUoWFactory)
	hasher := new(MockPasswordHasher)
	h := commands.NewRegisterAccountCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
}

func TestRegisterAccountCommandHandler_Handle_HashError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("", errors.New("hash error")).Once()

	factory := new(MockAccountUoWFactory)
	h := commands.NewRegisterAccountCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	hasher.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
}

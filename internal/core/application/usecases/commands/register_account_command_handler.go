package commands

import (
	"context"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"
)

// RegisterAccountCommandHandler handles the business logic for account registration.
// Hashes the credential, creates the aggregate, and persists it inside a
// transaction. The storage layer's unique index on the email makes a
// duplicate registration surface as an already-exists error.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
// Requires an AccountUoWFactory for transactional persistence and a
// PasswordHasher for credential hashing.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the created account.
// The plaintext password never leaves this method unhashed.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	newAccount, err := account.NewAccount(kernel.NewUUID(), cmd.Name(), cmd.Email(), passwordHash, cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAccount, nil
}

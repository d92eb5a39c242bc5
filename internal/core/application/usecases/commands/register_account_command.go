package commands

import (
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
)

// RegisterAccountCommand represents a request to register a new account.
// Carries the plaintext password only as far as the handler, which hashes it
// before anything touches persistence.
//
// Example:
//
//	cmd, err := NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterAccountCommandHandler(uowFactory, hasher)
//	created, err := handler.Handle(ctx, cmd)
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Name, email, and password are required. The role hint is optional: only
// the literal "admin" produces an admin account, everything else (including
// the empty string) defaults to client.
func NewRegisterAccountCommand(name, email, password, roleHint string) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		role:  account.RoleFromHint(roleHint),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAccountCommandIsNotConstructed if validation fails.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// Name returns the display name for the new account.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the email address for the new account.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Role returns the resolved role for the new account.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

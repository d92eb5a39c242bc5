package queries

import (
	"errors"
	"strings"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/guard"
)

var (
	ErrAuthenticateAccountQueryIsNotConstructed = errors.New(
		"AuthenticateAccountQuery must be created via NewAuthenticateAccountQuery constructor",
	)
)

// AuthenticateAccountQuery carries the login credentials.
// Authentication lives on the query side because it never mutates state; it
// reads the stored hash and compares.
//
// Example:
//
//	query, err := NewAuthenticateAccountQuery("jane@example.com", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid credentials format: %w", err)
//	}
//
//	handler := NewAuthenticateAccountQueryHandler(db, hasher)
//	identity, err := handler.Handle(ctx, query)
type AuthenticateAccountQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateAccountQuery creates an authentication query.
// The email is normalized the same way registration normalizes it, so a
// login with mixed casing still finds the account.
func NewAuthenticateAccountQuery(email, password string) (AuthenticateAccountQuery, error) {
	q := AuthenticateAccountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setEmail(email),
		q.setPassword(password),
	); err != nil {
		return AuthenticateAccountQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateAccountQueryIsNotConstructed if validation fails.
func (q AuthenticateAccountQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAccountQueryIsNotConstructed)
}

// Email returns the normalized email address.
func (q AuthenticateAccountQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify against the stored hash.
func (q AuthenticateAccountQuery) Password() string {
	return q.password
}

func (q *AuthenticateAccountQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = strings.ToLower(strings.TrimSpace(email))
	return nil
}

func (q *AuthenticateAccountQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// AuthenticateAccountQueryResponse is the verified identity of the caller.
// Carries exactly what the token signer needs plus the display name for the
// login response body.
type AuthenticateAccountQueryResponse struct {
	AccountID kernel.UUID
	Name      string
	Email     string
	Role      account.Role
}

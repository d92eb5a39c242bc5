package account

import (
	"errors"
	"strings"
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not created
	// through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// Account represents a registered identity in the system. It is the sole
// source of truth for authorization decisions: the caller's role and the
// ownership of shipments both resolve against it.
//
// Account follows these invariants:
//   - Must have a valid unique identifier
//   - Email is non-empty, stored lower-cased, and unique (the uniqueness
//     constraint itself lives in the storage schema)
//   - The password credential is a hash, never plaintext
//   - Role is fixed at creation; there is no elevation flow
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewAccount creates a new Account at registration time.
// The email is normalized (trimmed, lower-cased) so uniqueness is
// case-insensitive. The password must already be hashed by the caller;
// this constructor never sees a plaintext credential.
//
// Returns a validation error if the id is invalid or any field is empty.
func NewAccount(id kernel.UUID, name, email, passwordHash string, role Role) (*Account, error) {
	account := &Account{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setEmail(email),
		account.setPasswordHash(passwordHash),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account from persistence.
// Applies the same field validation as NewAccount but keeps the stored
// creation timestamp instead of assigning a new one.
func RestoreAccount(id kernel.UUID, name, email, passwordHash string, role Role, createdAt time.Time) (*Account, error) {
	account, err := NewAccount(id, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	account.createdAt = createdAt
	return account, nil
}

// Validate ensures the Account instance was properly constructed through a factory method.
// Returns ErrAccountIsNotConstructed otherwise.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}

	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the account holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the normalized (lower-case) email address.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored password hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's fixed role.
func (a *Account) Role() Role {
	return a.role
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = normalized
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

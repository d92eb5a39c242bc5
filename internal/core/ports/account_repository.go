// Package ports defines the contracts between the domain core and
// infrastructure: repositories, the unit of work, and the security
// collaborators (password hashing, token signing). These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid. Returns an already-exists error if the
	// email is already registered; the storage layer's unique index on the
	// lower-cased email is the authoritative uniqueness check.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by email address.
	// Matching is case-insensitive; the stored email is lower-cased.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

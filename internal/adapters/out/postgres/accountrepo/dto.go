// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. Implements the repository pattern for the account
// aggregate, converting between domain entities and database rows.
package accountrepo

import (
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
// The unique index on the lower-cased email is what makes duplicate
// registration detection authoritative; application-level lookups would
// race.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		account.Role(dto.Role),
		dto.CreatedAt,
	)
}

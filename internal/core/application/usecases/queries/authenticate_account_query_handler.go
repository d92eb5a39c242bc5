package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateAccountQueryHandler verifies login credentials against the
// stored account record.
//
// The two failure messages are deliberately distinct: an unknown email and a
// wrong password tell the user different things, matching the product's
// login experience.
type AuthenticateAccountQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewAuthenticateAccountQueryHandler creates a handler for login queries.
// Requires a GORM database connection and the hasher that registration uses.
func NewAuthenticateAccountQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateAccountQueryHandler {
	return AuthenticateAccountQueryHandler{db: db, hasher: hasher}
}

// Handle verifies the credentials and returns the caller's identity.
// Returns an authentication error when the email is unknown or the password
// does not match the stored hash.
func (h AuthenticateAccountQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAccountQuery,
) (AuthenticateAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			password_hash,
			role
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	var id uuid.UUID
	var name, email, passwordHash string
	var role int

	err := row.Scan(&id, &name, &email, &passwordHash, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateAccountQueryResponse{}, errs.NewAuthenticationError(
			"No account found with this email address. Please check your email or create a new account.",
		)
	}
	if err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	if !h.hasher.Verify(query.Password(), passwordHash) {
		return AuthenticateAccountQueryResponse{}, errs.NewAuthenticationError(
			"Incorrect password. Please try again.",
		)
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	return AuthenticateAccountQueryResponse{
		AccountID: accountID,
		Name:      name,
		Email:     email,
		Role:      account.Role(role),
	}, nil
}

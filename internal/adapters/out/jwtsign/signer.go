// Package jwtsign implements the TokenSigner port with HS256 JSON Web
// Tokens.
package jwtsign

import (
	"time"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/core/ports"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL matches the product's seven day session length.
const DefaultTokenTTL = 7 * 24 * time.Hour

// claims carries the identity triple alongside the registered JWT claims.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Signer issues and verifies HS256 tokens.
// The zero value is not usable; construct with NewSigner.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a token signer with the given secret and token
// lifetime. A zero lifetime falls back to DefaultTokenTTL.
func NewSigner(secret []byte, ttl time.Duration) Signer {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return Signer{secret: secret, ttl: ttl}
}

// Sign issues a signed token carrying the caller's identity.
func (s Signer) Sign(accessClaims ports.AccessClaims) (string, error) {
	if err := accessClaims.AccountID.Validate(); err != nil {
		return "", err
	}
	if err := accessClaims.Role.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: accessClaims.AccountID.String(),
		Email:  accessClaims.Email,
		Role:   accessClaims.Role.String(),
	})

	return token.SignedString(s.secret)
}

// Verify validates a raw token and recovers the caller's identity.
// Fails closed: any parse failure, an unexpected signing method, an expired
// token, or claims that do not reconstruct into a valid identity all yield
// an authentication error.
func (s Signer) Verify(raw string) (ports.AccessClaims, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(raw, parsed,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return ports.AccessClaims{}, errs.NewAuthenticationErrorWithCause("invalid or expired token", err)
	}
	if !token.Valid {
		return ports.AccessClaims{}, errs.NewAuthenticationError("invalid or expired token")
	}

	accountID, err := kernel.UUIDFromString(parsed.UserID)
	if err != nil {
		return ports.AccessClaims{}, errs.NewAuthenticationErrorWithCause("invalid or expired token", err)
	}

	role, err := account.RoleFromString(parsed.Role)
	if err != nil {
		return ports.AccessClaims{}, errs.NewAuthenticationErrorWithCause("invalid or expired token", err)
	}

	return ports.AccessClaims{
		AccountID: accountID,
		Email:     parsed.Email,
		Role:      role,
	}, nil
}

package ports

import (
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
)

// AccessClaims is the identity triple baked into issued tokens.
// Verification recovers exactly this triple or fails closed.
type AccessClaims struct {
	AccountID kernel.UUID
	Email     string
	Role      account.Role
}

// TokenSigner defines the contract for issuing and verifying the signed
// credential that carries a caller's identity between requests. The token
// is opaque to the rest of the application; only the claims matter.
type TokenSigner interface {
	// Sign issues a signed token for the given claims with the
	// implementation's configured expiry.
	Sign(claims AccessClaims) (string, error)

	// Verify validates a raw token and recovers its claims.
	// Fails closed: expiry, tampering, an unexpected signing method, and
	// malformed input all yield an authentication error, never a partial
	// result.
	Verify(raw string) (AccessClaims, error)
}

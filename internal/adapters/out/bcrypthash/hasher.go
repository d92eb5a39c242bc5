// Package bcrypthash implements the PasswordHasher port with bcrypt.
package bcrypthash

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the configured cost is
// out of bcrypt's valid range.
const DefaultCost = 10

// Hasher hashes and verifies passwords with bcrypt.
// The zero value is not usable; construct with NewHasher.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt hasher with the given work factor.
// Costs outside bcrypt's valid range fall back to DefaultCost.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash derives a bcrypt hash from the plaintext password.
func (h Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored bcrypt hash.
func (h Hasher) Verify(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}

package ports

// PasswordHasher defines the contract for password credential security.
// The domain never sees a plaintext credential beyond the boundary of these
// two calls, and never cares which algorithm produced the hash.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	Verify(password, encodedHash string) bool
}

// Package service defines interfaces for core, stateless domain logic and outbound ports.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes and verifies credential passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}

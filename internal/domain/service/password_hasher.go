// Package service defines capability interfaces for stateless domain logic
// that no single entity owns, such as credential handling.
package service

// PasswordHasher turns account passwords into stored hashes and verifies
// presented credentials against them. The concrete algorithm lives in the
// infra layer so the domain never depends on it.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}

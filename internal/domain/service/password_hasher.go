// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes the client-supplied credential for storage and
// verifies it in constant time. The credential arriving on the wire is
// already a client-side hash; this layer treats it as an opaque secret and
// salts it at rest so a database leak never exposes a directly comparable
// value.
type PasswordHasher interface {
	// Hash generates a salted at-rest hash from the opaque credential.
	Hash(credential string) (string, error)

	// Check compares an opaque credential with a stored hash in constant time.
	Check(credential, hash string) bool
}

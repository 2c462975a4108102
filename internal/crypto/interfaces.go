// Package crypto holds the server-side credential primitives.
//
// Plaintext passwords enter this package and never leave it: callers get
// back an irreversible salted digest that is safe to persist, and later ask
// whether a plaintext matches a stored digest.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns passwords into storable digests and verifies them.
//
// Implementations are stateless apart from their cost parameters and are
// safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Every call embeds a fresh
	// random salt, so hashing the same password twice yields two different
	// digests that both verify.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A malformed or
	// truncated digest is treated as a mismatch.
	Verify(password, digest string) bool
}

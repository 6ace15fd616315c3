// Package password provides one-way, salted password hashing behind a small
// pluggable interface. Exactly one scheme is configured per deployment and
// applied uniformly to every stored credential.
package password

import "fmt"

// Supported scheme names, as accepted by server configuration.
const (
	SchemeArgon2id = "argon2id"
	SchemeBcrypt   = "bcrypt"
)

// Hasher hashes plaintext passwords into self-describing blobs and verifies
// plaintexts against previously produced blobs.
//
// Hash must embed the salt and cost parameters into the returned string, so
// that Verify needs no external state. Two calls with the same plaintext
// produce different blobs (random salts), yet each verifies independently.
type Hasher interface {
	// Hash returns an encoded hash of the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the encoded hash. A blob that
	// cannot be parsed under this scheme yields an error wrapping
	// common.ErrMalformedHash; it never panics.
	Verify(plaintext, encoded string) (bool, error)
}

// New returns the Hasher for the given scheme name, with that scheme's
// default cost parameters.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeArgon2id:
		return NewArgon2Hasher(nil), nil
	case SchemeBcrypt:
		return NewBcryptHasher(nil), nil
	default:
		return nil, fmt.Errorf("unknown hash scheme: %q", scheme)
	}
}

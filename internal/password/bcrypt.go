package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkazarov/libkeeper/internal/common"
)

// BcryptConfig holds the cost factor for bcrypt hashing.
type BcryptConfig struct {
	// Cost is the bcrypt cost factor (4-31).
	Cost int
}

// DefaultBcryptConfig returns the cost used for new hashes.
func DefaultBcryptConfig() *BcryptConfig {
	return &BcryptConfig{Cost: 12}
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	config *BcryptConfig
}

// NewBcryptHasher creates a bcrypt hasher with the given configuration.
// If config is nil, DefaultBcryptConfig is used. Cost is clamped to the
// valid bcrypt range.
func NewBcryptHasher(config *BcryptConfig) *BcryptHasher {
	if config == nil {
		config = DefaultBcryptConfig()
	}
	if config.Cost < bcrypt.MinCost {
		config.Cost = bcrypt.MinCost
	}
	if config.Cost > bcrypt.MaxCost {
		config.Cost = bcrypt.MaxCost
	}
	return &BcryptHasher{config: config}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.config.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify treats a mismatch as a clean negative; any other comparison error
// (wrong prefix, truncated blob, unknown version) means the stored hash was
// not produced by bcrypt.
func (h *BcryptHasher) Verify(plaintext, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
}

var _ Hasher = (*BcryptHasher)(nil)

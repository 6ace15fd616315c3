package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dkazarov/libkeeper/internal/common"
)

// Argon2Config holds the cost parameters for Argon2id hashing.
type Argon2Config struct {
	// Memory is the amount of memory used in KiB.
	Memory uint32

	// Iterations is the number of passes over the memory.
	Iterations uint32

	// Parallelism is the number of threads to use.
	Parallelism uint8

	// SaltLength is the length of the random salt in bytes.
	SaltLength uint32

	// KeyLength is the length of the derived key in bytes.
	KeyLength uint32
}

// DefaultArgon2Config returns the parameters used for new hashes:
// 3 iterations over 64 MiB with parallelism 2.
func DefaultArgon2Config() *Argon2Config {
	return &Argon2Config{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Argon2Hasher implements Hasher using Argon2id.
type Argon2Hasher struct {
	config *Argon2Config
}

// NewArgon2Hasher creates an Argon2id hasher with the given configuration.
// If config is nil, DefaultArgon2Config is used.
func NewArgon2Hasher(config *Argon2Config) *Argon2Hasher {
	if config == nil {
		config = DefaultArgon2Config()
	}
	return &Argon2Hasher{config: config}
}

// Hash returns the hash in PHC string format:
// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
func (h *Argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.config.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey(
		[]byte(plaintext),
		salt,
		h.config.Iterations,
		h.config.Memory,
		h.config.Parallelism,
		h.config.KeyLength,
	)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.config.Memory,
		h.config.Iterations,
		h.config.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the key using the parameters embedded in the blob and
// compares in constant time.
func (h *Argon2Hasher) Verify(plaintext, encoded string) (bool, error) {
	config, salt, key, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
	}

	otherKey := argon2.IDKey(
		[]byte(plaintext),
		salt,
		config.Iterations,
		config.Memory,
		config.Parallelism,
		config.KeyLength,
	)

	return subtle.ConstantTimeCompare(key, otherKey) == 1, nil
}

// decodeArgon2Hash parses an Argon2id hash in PHC string format.
func decodeArgon2Hash(encoded string) (*Argon2Config, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, nil, nil, fmt.Errorf("invalid hash format")
	}

	if parts[1] != "argon2id" {
		return nil, nil, nil, fmt.Errorf("unsupported algorithm: %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, err
	}
	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("incompatible argon2 version: %d", version)
	}

	config := &Argon2Config{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&config.Memory, &config.Iterations, &config.Parallelism); err != nil {
		return nil, nil, nil, err
	}

	// argon2.IDKey panics on parameters below these bounds
	if config.Iterations < 1 {
		return nil, nil, nil, fmt.Errorf("invalid iteration count: %d", config.Iterations)
	}
	if config.Parallelism < 1 {
		return nil, nil, nil, fmt.Errorf("invalid parallelism degree: %d", config.Parallelism)
	}
	if config.Memory < 8*uint32(config.Parallelism) {
		return nil, nil, nil, fmt.Errorf("invalid memory size: %d", config.Memory)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, err
	}
	config.SaltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, err
	}
	config.KeyLength = uint32(len(key))

	return config, salt, key, nil
}

var _ Hasher = (*Argon2Hasher)(nil)

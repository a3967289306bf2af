package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2SaltLen = 16

	// Upper bounds accepted when reading a stored hash. A tampered
	// credential row must not make a login burn gigabytes of memory.
	maxArgon2Memory  = 256 * 1024 // KiB
	maxArgon2Time    = 10
	minArgon2KeyLen  = 16
	minArgon2SaltLen = 8
)

// Argon2Params are the cost settings of one hash.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params is used for guardian passwords in production.
var DefaultArgon2Params = Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// Argon2HashService implements ports.HashService with Argon2id in PHC
// string format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>.
type Argon2HashService struct {
	params Argon2Params
}

func NewArgon2HashService() *Argon2HashService {
	return &Argon2HashService{params: DefaultArgon2Params}
}

// NewArgon2HashServiceWithParams hashes with custom cost settings. Hashes
// written with other settings still verify.
func NewArgon2HashServiceWithParams(p Argon2Params) *Argon2HashService {
	return &Argon2HashService{params: p}
}

func (s *Argon2HashService) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	h := argon2Hash{params: s.params, salt: salt}
	h.key = h.derive(password)
	return h.String(), nil
}

// Verify reports whether password matches encoded. A malformed hash is an
// error, a wrong password is not.
func (s *Argon2HashService) Verify(password, encoded string) (bool, error) {
	h, err := parseArgon2Hash(encoded)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(h.key, h.derive(password)) == 1, nil
}

type argon2Hash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

func (h argon2Hash) derive(password string) []byte {
	p := h.params
	return argon2.IDKey([]byte(password), h.salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

func (h argon2Hash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

func parseArgon2Hash(encoded string) (*argon2Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}
	if parts[1] != "argon2id" {
		return nil, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("incompatible argon2 version %d", version)
	}

	h := &argon2Hash{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Time, &h.params.Threads); err != nil {
		return nil, fmt.Errorf("parsing params: %w", err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("decoding salt: %w", err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}
	h.params.KeyLen = uint32(len(h.key))

	if err := h.checkBounds(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *argon2Hash) checkBounds() error {
	p := h.params
	switch {
	case p.Memory == 0 || p.Memory > maxArgon2Memory:
		return fmt.Errorf("argon2 memory %d KiB out of range", p.Memory)
	case p.Time == 0 || p.Time > maxArgon2Time:
		return fmt.Errorf("argon2 time %d out of range", p.Time)
	case p.Threads == 0:
		return errors.New("argon2 threads must be positive")
	case len(h.salt) < minArgon2SaltLen:
		return errors.New("argon2 salt too short")
	case len(h.key) < minArgon2KeyLen:
		return errors.New("argon2 key too short")
	}
	return nil
}

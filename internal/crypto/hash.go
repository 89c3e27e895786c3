package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash      = errors.New("malformed argon2id hash")
	ErrUnsupportedVersion = errors.New("unsupported argon2 version")
)

// Argon2Params are the Argon2id cost settings used for account secrets.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns the cost settings used for new hashes.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// phcHash is a decoded $argon2id$v=..$m=..,t=..,p=..$salt$key string.
type phcHash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

func (h phcHash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

func derive(secret string, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey([]byte(secret), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// HashSecret derives an Argon2id hash of an account password in PHC format.
func HashSecret(secret string) (string, error) {
	params := DefaultArgon2Params()

	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}

	h := phcHash{params: params, salt: salt, key: derive(secret, salt, params)}
	return h.String(), nil
}

// VerifySecret reports whether secret matches an encoded hash from HashSecret.
func VerifySecret(secret, encoded string) (bool, error) {
	h, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	candidate := derive(secret, h.salt, h.params)
	return subtle.ConstantTimeCompare(h.key, candidate) == 1, nil
}

func parsePHC(encoded string) (phcHash, error) {
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" || fields[1] != "argon2id" {
		return phcHash{}, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return phcHash{}, ErrMalformedHash
	}
	if version != argon2.Version {
		return phcHash{}, ErrUnsupportedVersion
	}

	var h phcHash
	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Iterations, &h.params.Parallelism); err != nil {
		return phcHash{}, ErrMalformedHash
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(fields[4]); err != nil {
		return phcHash{}, ErrMalformedHash
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(fields[5]); err != nil {
		return phcHash{}, ErrMalformedHash
	}
	h.params.SaltLength = uint32(len(h.salt))
	h.params.KeyLength = uint32(len(h.key))

	return h, nil
}

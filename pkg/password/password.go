package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters and the "hexhash.hexsalt" storage format match what the
// production deployment already has on disk, so they must not change without
// a migration.
const (
	scryptN    = 16384
	scryptR    = 8
	scryptP    = 1
	keyLength  = 64
	saltLength = 16
)

var ErrMismatch = errors.New("password does not match")

// Hash derives a key from the password with a fresh random salt and encodes
// both as "hexhash.hexsalt".
func Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Compare re-derives the key for the supplied password and compares it against
// the stored hash in constant time.
func Compare(stored, supplied string) error {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return errors.New("invalid stored password format")
	}

	hash, err := hex.DecodeString(parts[0])
	if err != nil {
		return errors.New("invalid stored password hash")
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return errors.New("invalid stored password salt")
	}

	key, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}

	if subtle.ConstantTimeCompare(hash, key) != 1 {
		return ErrMismatch
	}
	return nil
}

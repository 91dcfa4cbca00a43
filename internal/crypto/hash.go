package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Raising it transparently upgrades new
// hashes; existing hashes keep the cost embedded in the digest.
const hashCost = 12

// HashPassword hashes a password using bcrypt with the configured cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
// A mismatch returns (false, nil); an error is returned only when the stored
// digest itself is malformed.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("malformed password hash: %w", err)
}

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("staff password must be at least 8 characters")
	ErrMalformedHash    = errors.New("staff password hash is not a bcrypt hash")
)

const (
	minStaffPasswordLength = 8
	staffHashCost          = 12
)

// HashStaffPassword produces the value operators put in STAFF_PASSWORD_HASH
// (see `api -hash-password`).
func HashStaffPassword(password string) (string, error) {
	if len(password) < minStaffPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), staffHashCost)
	if err != nil {
		return "", fmt.Errorf("hash staff password: %w", err)
	}
	return string(hash), nil
}

// CheckStaffHash rejects configured hashes bcrypt cannot read, so a typo in
// STAFF_PASSWORD_HASH fails at startup instead of on every login.
func CheckStaffHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	return nil
}

func verifyStaffPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

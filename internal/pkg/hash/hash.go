package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password hashes a plaintext password with a per-call random salt.
func Password(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hashed), nil
}

// Matches reports whether plain matches the stored bcrypt hash. A
// malformed or corrupt hash fails closed: the result is false, never an
// error surfaced to the caller.
func Matches(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

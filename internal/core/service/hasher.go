package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

// PasswordHasher wraps bcrypt. Each Hash call generates a fresh salt which is
// embedded in the returned digest; Verify compares in constant time.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A well-formed mismatch is
// (false, nil); only a digest bcrypt cannot parse yields an error.
func (h *PasswordHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.ErrHashFormat
	}
}

package utils

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt cost used when none is configured.
const DefaultPasswordHashCost = 10

// PasswordHasher hashes and verifies user passwords with bcrypt.
//
// Example usage:
//
//	hasher := utils.NewPasswordHasher(utils.DefaultPasswordHashCost)
//	digest, err := hasher.Hash("Abcd123!")
//	ok := hasher.Compare(digest, "Abcd123!")
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost. Values outside the range
// accepted by bcrypt fall back to DefaultPasswordHashCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt digest of plain.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("empty password")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Compare reports whether plain matches digest. Malformed digests never
// match.
func (h *PasswordHasher) Compare(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// UnusableHash returns the digest of random material nobody knows. It fills
// password_hash for accounts that only sign in through the external
// identity provider.
func (h *PasswordHasher) UnusableHash() (string, error) {
	return h.Hash(uuid.NewString() + uuid.NewString())
}

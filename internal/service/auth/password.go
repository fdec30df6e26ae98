package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pzaichkin/taskdeck/internal/domain"
)

// PasswordHasher turns a validated plaintext password into the hashed form
// that may be persisted.
type PasswordHasher interface {
	// Hash derives a storable digest from the plaintext password.
	Hash(password domain.Password) (domain.HashedPassword, error)
}

// PasswordVerifier compares a stored hash with a plaintext candidate.
type PasswordVerifier interface {
	// Compare returns nil when the plaintext matches the hash, an error
	// otherwise.
	Compare(hashed domain.HashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost. A cost of 0
// selects bcrypt's default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(password domain.Password) (domain.HashedPassword, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password.Raw()), h.cost)
	if err != nil {
		return domain.HashedPassword{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return domain.NewHashedPassword(string(digest)), nil
}

// Compare implements PasswordVerifier.
func (h *BcryptHasher) Compare(hashed domain.HashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed.String()), []byte(password))
}

package mocks

import (
	"errors"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. By default
// it "hashes" by prefixing the plaintext, which keeps assertions readable.
type MockPasswordHasher struct {
	HashFn func(password domain.Password) (domain.HashedPassword, error)
	Err    error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password domain.Password) (domain.HashedPassword, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Err != nil {
		return domain.HashedPassword{}, m.Err
	}
	return domain.NewHashedPassword("hashed:" + password.Raw()), nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareFn func(hashed domain.HashedPassword, password string) error

	// ShouldSucceed controls the default behavior.
	ShouldSucceed bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashed domain.HashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashed, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

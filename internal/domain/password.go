package domain

import "unicode"

// Secret is the credential a User carries: either a plaintext Password that
// was just provided and is pending hashing, or a HashedPassword reconstructed
// from storage. Only a HashedPassword may ever be persisted; the closed
// interface makes that distinction explicit at compile time.
type Secret interface {
	secret()
}

// Password is a validated plaintext password. It exists only between user
// input and hashing; it is never stored.
type Password struct {
	value string
}

// NewPassword validates the raw password and wraps it. A valid password
// contains at least one lowercase letter, one uppercase letter, one digit,
// one special character, and is at least 6 characters long.
func NewPassword(raw string) (Password, error) {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	runes := []rune(raw)
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_':
			// Anything that is not a letter, digit, or underscore counts
			// as a special character. Caseless letters fall through the
			// lower/upper cases above and must not count.
			hasSpecial = true
		}
	}
	switch {
	case !hasLower:
		return Password{}, ErrPasswordNoLower
	case !hasUpper:
		return Password{}, ErrPasswordNoUpper
	case !hasDigit:
		return Password{}, ErrPasswordNoDigit
	case !hasSpecial:
		return Password{}, ErrPasswordNoSpecial
	case len(runes) < 6:
		return Password{}, ErrPasswordTooShort
	}
	return Password{value: raw}, nil
}

// Raw returns the plaintext. Callers must hash it before persisting.
func (p Password) Raw() string {
	return p.value
}

func (Password) secret() {}

// HashedPassword is an opaque stored password digest. It carries no
// validation; it is only ever produced by the password hasher or by
// reconstruction from a persisted row.
type HashedPassword struct {
	value string
}

// NewHashedPassword wraps an already-hashed digest.
func NewHashedPassword(digest string) HashedPassword {
	return HashedPassword{value: digest}
}

// String returns the stored digest.
func (h HashedPassword) String() string {
	return h.value
}

func (HashedPassword) secret() {}

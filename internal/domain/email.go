package domain

import "github.com/go-playground/validator/v10"

// emailValidate is the shared validator instance used for email format
// checks. validator.Validate is safe for concurrent use.
var emailValidate = validator.New()

// Email is a validated email address. The zero value is invalid; construct
// one with NewEmail.
type Email struct {
	value string
}

// NewEmail validates the raw address and returns it as an Email value object.
// The format check is delegated to go-playground/validator's "email" rule.
func NewEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, ErrEmptyEmail
	}
	if err := emailValidate.Var(raw, "email"); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

// String returns the underlying address.
func (e Email) String() string {
	return e.value
}

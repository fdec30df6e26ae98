package domain

// AccessToken is an opaque signed token string issued at sign-in. The
// signature and claims are the auth service's concern; the domain treats it
// as a value.
type AccessToken struct {
	value string
}

// NewAccessToken wraps a signed token string.
func NewAccessToken(signed string) AccessToken {
	return AccessToken{value: signed}
}

// String returns the signed token string.
func (t AccessToken) String() string {
	return t.value
}

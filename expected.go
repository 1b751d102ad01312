package jwt

import (
	"errors"
	"fmt"
)

// ErrExpected indicates that a standard claim did not match the
// expected value. Use `errors.Is` to check for it.
var ErrExpected = errors.New("jwt: field not match")

// Expected is a TokenValidator which checks the standard claims of a
// verified token against expected values. Only non-zero fields are
// checked, allowing partial validation.
//
// The Audience field is a membership check: every expected audience
// entry must be contained in the token's "aud" set, the token may
// address further audiences.
//
// Example:
//
//	expected := jwt.Expected{Issuer: "my-auth-server"}
//	verifiedToken, err := jwt.Verify(alg, key, token, expected)
type Expected Claims // separate type for conceptual clarity, same shape as Claims.

var _ TokenValidator = Expected{}

// ValidateToken completes the TokenValidator interface.
func (e Expected) ValidateToken(token []byte, c Claims, err error) error {
	if err != nil {
		return err
	}

	if v := e.NotBefore; v > 0 && v != c.NotBefore {
		return fmt.Errorf("%w: nbf", ErrExpected)
	}

	if v := e.IssuedAt; v > 0 && v != c.IssuedAt {
		return fmt.Errorf("%w: iat", ErrExpected)
	}

	if v := e.Expiry; v > 0 && v != c.Expiry {
		return fmt.Errorf("%w: exp", ErrExpected)
	}

	if v := e.ID; v != "" && v != c.ID {
		return fmt.Errorf("%w: jti", ErrExpected)
	}

	if v := e.Issuer; v != "" && v != c.Issuer {
		return fmt.Errorf("%w: iss", ErrExpected)
	}

	if v := e.Subject; v != "" && v != c.Subject {
		return fmt.Errorf("%w: sub", ErrExpected)
	}

	for _, v := range e.Audience {
		if !c.Audience.Contains(v) {
			return fmt.Errorf("%w: aud (%q)", ErrExpected, v)
		}
	}

	return nil
}

package jwt

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrExpired indicates that a token is used on or after the exact
	// moment of its "exp" claim (the boundary itself counts as expired).
	ErrExpired = errors.New("jwt: token expired")
	// ErrNotValidYet indicates that a token is used before the time of its "nbf" claim.
	ErrNotValidYet = errors.New("jwt: token not valid yet")
	// ErrIssuedInTheFuture indicates that the "iat" claim is in the future.
	ErrIssuedInTheFuture = errors.New("jwt: token issued in the future")
)

// Audience is the "aud" claim value set. RFC 7519 permits the wire form
// to be either a single JSON string or an array of strings; both decode
// into this type.
type Audience []string

// UnmarshalJSON accepts a single string or an array of strings.
func (aud *Audience) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var single string
		if err := json.Unmarshal(b, &single); err != nil {
			return err
		}

		*aud = Audience{single}
		return nil
	case 'n': // null.
		return nil
	default:
		var many []string
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}

		*aud = many
		return nil
	}
}

// Contains reports whether "v" is a member of the audience set.
func (aud Audience) Contains(v string) bool {
	for _, a := range aud {
		if a == v {
			return true
		}
	}

	return false
}

// Claims holds the standard JWT claims (payload fields).
// Every point in time is an RFC 7519 NumericDate: the JSON number of
// whole seconds since the Unix epoch. Seconds, never milliseconds.
type Claims struct {
	// NotBefore ("nbf") is the exact moment from which the token
	// is considered valid. The current time must be equal to or
	// later than it.
	NotBefore int64 `json:"nbf,omitempty"`
	// IssuedAt ("iat") is the moment the token was issued at.
	// Informational; it only fails validation when it's in the
	// future (see the `Future` validator to relax that for clock skew).
	IssuedAt int64 `json:"iat,omitempty"`
	// Expiry ("exp") is the exact moment from which the token is
	// considered invalid, the boundary included.
	Expiry int64 `json:"exp,omitempty"`
	// ID ("jti") is a unique identifier for the token,
	// useful to differentiate tokens with otherwise equal content.
	// See the `WithGeneratedID` sign option.
	ID string `json:"jti,omitempty"`
	// Issuer ("iss") identifies the party that issued the token.
	Issuer string `json:"iss,omitempty"`
	// Subject ("sub") identifies the party the claims are about.
	Subject string `json:"sub,omitempty"`
	// Audience ("aud") identifies the intended recipients.
	// A verifier must find itself in this set, see `Expected`.
	Audience Audience `json:"aud,omitempty"`

	// MaxAge is not part of the JSON result.
	// If set, the `Sign` function fills "exp" and "iat" from it.
	MaxAge time.Duration `json:"-"`
}

// ClaimsValidator validates the standard claims of a verified token.
// Register it on a Keys registry with the `WithValidate` option to run
// it on every token the registry verifies.
type ClaimsValidator func(Claims) error

// validateClaims checks the time-based standard claims against "t".
// It runs only after the signature has been verified.
func validateClaims(t time.Time, claims Claims, validators ...ClaimsValidator) error {
	now := t.Round(time.Second).Unix()

	if claims.NotBefore > 0 {
		if now < claims.NotBefore {
			return ErrNotValidYet
		}
	}

	if claims.IssuedAt > 0 {
		if now < claims.IssuedAt {
			return ErrIssuedInTheFuture
		}
	}

	if claims.Expiry > 0 {
		// The boundary is exclusive: a token with exp == now is expired.
		if now >= claims.Expiry {
			return ErrExpired
		}
	}

	for _, validator := range validators {
		if err := validator(claims); err != nil {
			return err
		}
	}

	return nil
}

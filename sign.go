package jwt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sign signs and generates a new token based on the algorithm and a
// private (or shared) key. The "claims" is the payload, it can be a
// custom struct, a Map, a Claims value or raw JSON bytes. Note that
// the payload is encoded, not encrypted: it must NOT contain secrets.
//
// See the `Verify` function to decode and verify the result token.
//
// Example Code:
//
//	token, err := jwt.Sign(jwt.HS256, []byte("secret"), jwt.Map{
//		"foo": "bar",
//	}, jwt.MaxAge(15*time.Minute))
func Sign(alg Alg, key PrivateKey, claims any, opts ...SignOption) ([]byte, error) {
	return SignWithHeader(alg, key, claims, Header{}, opts...)
}

// SignWithHeader is like `Sign` but it also accepts extra header
// fields, most commonly the "kid" of the signing key.
//
// The "alg" header field is always stamped from the algorithm which
// performs the signing; any value the caller may have set is
// overwritten, so a header can never claim an algorithm other than
// the one that produced the signature.
func SignWithHeader(alg Alg, key PrivateKey, claims any, header Header, opts ...SignOption) ([]byte, error) {
	if c, ok := claims.(Claims); ok && c.MaxAge > 0 {
		opts = append(opts, MaxAge(c.MaxAge))
	}

	if len(opts) > 0 {
		var standardClaims Claims
		for _, opt := range opts {
			opt(&standardClaims)
		}

		// A MaxAge carried inside the claims themselves
		// (e.g. through WithClaims) behaves like the option.
		if standardClaims.MaxAge > 0 {
			MaxAge(standardClaims.MaxAge)(&standardClaims)
		}

		claims = json.RawMessage(Merge(claims, standardClaims))
	}

	payload, err := Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("sign: marshal claims: %w", err)
	}

	var headerB64 []byte
	if header != (Header{}) {
		header.Alg = alg.Name()
		if header.Typ == "" {
			header.Typ = "JWT"
		}

		headerJSON, err := Marshal(header)
		if err != nil {
			return nil, fmt.Errorf("sign: marshal header: %w", err)
		}

		headerB64 = Base64Encode(headerJSON)
	}

	return encodeToken(alg, key, payload, headerB64)
}

// SignOption sets standard claims at the `Sign` function.
type SignOption func(c *Claims)

// WithClaims sets multiple standard claims at once.
func WithClaims(standardClaims Claims) SignOption {
	return func(c *Claims) {
		*c = standardClaims
	}
}

// MaxAge sets the "exp" and "iat" standard claims from the current time.
// Values of a second or less are ignored.
//
// See the `Clock` package-level variable to modify
// the current time function.
func MaxAge(maxAge time.Duration) SignOption {
	return func(c *Claims) {
		if maxAge <= time.Second {
			return
		}

		now := Clock()
		c.Expiry = now.Add(maxAge).Unix()
		c.IssuedAt = now.Unix()
	}
}

// WithGeneratedID sets a fresh universally-unique "jti" claim,
// useful to differentiate tokens with otherwise equal content.
func WithGeneratedID() SignOption {
	return func(c *Claims) {
		c.ID = uuid.NewString()
	}
}

// MaxAgeMap is a helper to set the "exp" and "iat" claims of map claims
// before signing, when the SignOption form is not convenient.
//
// Usage:
//
//	claims := jwt.Map{"foo": "bar"}
//	jwt.MaxAgeMap(15*time.Minute, claims)
//	token, err := jwt.Sign(alg, key, claims)
func MaxAgeMap(maxAge time.Duration, claims Map) {
	if claims == nil || maxAge <= time.Second {
		return
	}

	now := Clock()
	if claims["exp"] == nil {
		claims["exp"] = now.Add(maxAge).Unix()
		claims["iat"] = now.Unix()
	}
}

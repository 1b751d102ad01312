package jwt

import (
	"errors"
)

// HeaderValidator selects the algorithm and the public key a token is
// verified with, based on its decoded header segment (multi-key mode).
// The given "alg" is the caller's expected algorithm name or empty.
//
// The `Keys.ValidateHeader` method implements this contract.
type HeaderValidator func(alg string, headerDecoded []byte) (Alg, PublicKey, error)

// Verify decodes, verifies and validates a token:
// wire form, signature (with the given algorithm and key, never the
// token's own header), then the standard time claims, then the given
// optional validators, in that strict order. Any failure aborts and
// nothing of the token should be trusted.
//
// Example Code:
//
//	verifiedToken, err := jwt.Verify(jwt.HS256, []byte("secret"), token)
//	if err != nil { ... }
//	var claims map[string]any
//	verifiedToken.Claims(&claims)
func Verify(alg Alg, key PublicKey, token []byte, validators ...TokenValidator) (*VerifiedToken, error) {
	return verifyToken(alg, key, token, nil, nil, validators...)
}

// VerifyWithHeaderValidator is like `Verify` but the algorithm and key
// are selected per token by the given "headerValidator", e.g. a `Keys`
// registry dispatching on the "kid" header field. "alg" and "key" may
// be nil in that mode.
func VerifyWithHeaderValidator(alg Alg, key PublicKey, token []byte, headerValidator HeaderValidator, validators ...TokenValidator) (*VerifiedToken, error) {
	return verifyToken(alg, key, token, headerValidator, nil, validators...)
}

func verifyToken(alg Alg, key PublicKey, token []byte, headerValidator HeaderValidator, claimsValidators []ClaimsValidator, validators ...TokenValidator) (*VerifiedToken, error) {
	if len(token) == 0 {
		return nil, ErrMissing
	}

	header, payload, signature, err := decodeToken(alg, key, token, headerValidator)
	if err != nil {
		return nil, err
	}

	// Signature is valid from this point on;
	// claims validation follows, all-or-nothing.
	var standardClaims Claims
	if jsonErr := Unmarshal(payload, &standardClaims); jsonErr != nil {
		err = errPayloadNotJSON // allow the Plain validator to catch this one.
	}

	if err == nil {
		err = validateClaims(Clock(), standardClaims, claimsValidators...)
	}

	for _, validator := range validators {
		if validator == nil {
			continue
		}

		// A validator can turn a nil error into a rejection
		// or clear a specific error it chooses to tolerate.
		if err = validator.ValidateToken(token, standardClaims, err); err != nil {
			break
		}
	}

	if err != nil {
		return nil, err
	}

	verifiedTok := &VerifiedToken{
		Token:          token,
		Header:         header,
		Payload:        payload,
		Signature:      signature,
		StandardClaims: standardClaims,
	}
	return verifiedTok, nil
}

// VerifiedToken holds the decoded segments and the parsed standard
// claims of a token whose signature and claims have been verified.
type VerifiedToken struct {
	Token          []byte // the original token bytes.
	Header         []byte // the decoded header segment (JSON).
	Payload        []byte // the decoded payload segment (JSON).
	Signature      []byte // the decoded signature bytes.
	StandardClaims Claims
}

// Claims binds the verified payload to "dest", which is usually a
// pointer to a custom claims struct or a Map.
func (t *VerifiedToken) Claims(dest any) error {
	return Unmarshal(t.Payload, dest)
}

// malformed JSON or not JSON at all, after a valid signature.
var errPayloadNotJSON = errors.New("jwt: payload is not a type of JSON")

type (
	// TokenValidator performs further validation of an already
	// signature-verified token. Implementations receive the error of
	// the previous validation stage and may keep, replace or (for
	// errors they explicitly tolerate) clear it.
	TokenValidator interface {
		ValidateToken(token []byte, standardClaims Claims, err error) error
	}

	// TokenValidatorFunc is the functional form of TokenValidator.
	TokenValidatorFunc func(token []byte, standardClaims Claims, err error) error
)

// ValidateToken completes the TokenValidator interface.
func (fn TokenValidatorFunc) ValidateToken(token []byte, standardClaims Claims, err error) error {
	return fn(token, standardClaims, err)
}

// Plain is a TokenValidator which accepts tokens whose payload is not
// JSON at all (the signature is still required to verify). Useful when
// tokens carry opaque application bytes instead of claim sets.
var Plain = TokenValidatorFunc(func(token []byte, standardClaims Claims, err error) error {
	if errors.Is(err, errPayloadNotJSON) {
		return nil
	}

	return err
})

/*
Package jwt signs and verifies JSON Web Tokens (RFC 7519) with the
standard JSON Web Algorithms of RFC 7518.

Sign a token:

	token, err := jwt.Sign(jwt.HS256, []byte("secret"), jwt.Map{
		"foo": "bar",
	}, jwt.MaxAge(15*time.Minute))

Verify a token:

	verifiedToken, err := jwt.Verify(jwt.HS256, []byte("secret"), token)
	if err != nil {
		// invalid signature, expired, malformed...
	}

	var claims map[string]any
	err = verifiedToken.Claims(&claims)

The algorithm a token is verified with is always the one the caller
(or the Keys registry, by the "kid" header field) selected, never the
one the token's own header asks for: a token asserting a different
"alg" than expected is rejected with ErrTokenAlg and the unsecured
"none" algorithm is unreachable unless explicitly enabled.

For multiple keys and key rotation use the Keys registry:

	keys := jwt.NewKeys()
	keys.Register(jwt.RS256, "api", pubKey, privKey)

	token, err := keys.SignToken("api", claims, jwt.MaxAge(time.Hour))
	err = keys.VerifyToken(token, &claims)

The `Decode` function splits and decodes a token without any
verification, for introspection (e.g. reading the "kid" before the
verification key is known); its result is explicitly untrusted.

All failures are typed sentinel errors (ErrTokenForm, ErrTokenAlg,
ErrTokenSignature, ErrExpired, ErrUnknownKid, ...) matchable with
errors.Is. Verification is all-or-nothing and strictly ordered:
form, signature, then claims.
*/
package jwt

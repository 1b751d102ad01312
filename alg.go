package jwt

import (
	"crypto"
	"crypto/rsa"
	_ "crypto/sha256" // link the hashers every builtin algorithm needs.
	_ "crypto/sha512"
	"errors"
)

var (
	// ErrTokenSignature indicates that the signature check failed.
	// The reason is deliberately not reported any further:
	// a tampered token, a wrong key and a corrupted signature
	// are indistinguishable to the caller.
	ErrTokenSignature = errors.New("jwt: invalid token signature")
	// ErrInvalidKey indicates that the given key does not have
	// the shape the algorithm expects, e.g. a string instead of
	// a []byte for the HMAC family or an RSA key for ECDSA.
	ErrInvalidKey = errors.New("jwt: invalid key")
)

// Alg is a signature algorithm of the closed set this package ships
// (NONE, HS256-512, RS256-512, PS256-512, ES256-512 and EdDSA).
//
// An Alg signs and verifies the raw base64url-encoded
// "header.payload" bytes of a token. Which Alg verifies a token is
// always decided by the caller or by a registered Key, never by the
// attacker-controlled "alg" header field.
//
// Implementations must be safe for concurrent use and must reject
// foreign key shapes with ErrInvalidKey.
type Alg interface {
	// Name returns the RFC 7518 algorithm identifier,
	// the value of the "alg" header field. Case-sensitive.
	Name() string
	// Sign returns the raw (not base64url-encoded) signature
	// of "headerAndPayload".
	Sign(key PrivateKey, headerAndPayload []byte) ([]byte, error)
	// Verify reports through its error whether "signature" is a valid
	// signature of "headerAndPayload". Symmetric implementations must
	// compare in constant time.
	Verify(key PublicKey, headerAndPayload []byte, signature []byte) error
}

// AlgParser is an optional interface an Alg can implement to parse
// raw (PEM or other binary form) key data into its Go key types.
// It is used by the Keys registry helpers to load keys from files.
type AlgParser interface {
	Parse(private, public []byte) (PrivateKey, PublicKey, error)
}

var (
	// NONE is the unsecured "none" algorithm of RFC 7518 section 3.6.
	// Sign produces an empty signature and Verify accepts only an
	// empty one. It exists for interoperability testing; a Keys
	// registry refuses it unless built with the AllowNone option.
	NONE Alg = &algNONE{}
	// HS256 is HMAC using SHA-256. Shared []byte secret of at least 32 bytes.
	HS256 Alg = &algHMAC{"HS256", crypto.SHA256}
	// HS384 is HMAC using SHA-384. Shared []byte secret of at least 48 bytes.
	HS384 Alg = &algHMAC{"HS384", crypto.SHA384}
	// HS512 is HMAC using SHA-512. Shared []byte secret of at least 64 bytes.
	HS512 Alg = &algHMAC{"HS512", crypto.SHA512}
	// RS256 is RSASSA-PKCS1-v1.5 using SHA-256.
	RS256 Alg = &algRSA{"RS256", crypto.SHA256}
	// RS384 is RSASSA-PKCS1-v1.5 using SHA-384.
	RS384 Alg = &algRSA{"RS384", crypto.SHA384}
	// RS512 is RSASSA-PKCS1-v1.5 using SHA-512.
	RS512 Alg = &algRSA{"RS512", crypto.SHA512}
	// PS256 is RSASSA-PSS using SHA-256.
	PS256 Alg = &algRSAPSS{"PS256", &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA256}}
	// PS384 is RSASSA-PSS using SHA-384.
	PS384 Alg = &algRSAPSS{"PS384", &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA384}}
	// PS512 is RSASSA-PSS using SHA-512.
	PS512 Alg = &algRSAPSS{"PS512", &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA512}}
	// ES256 is ECDSA using the P-256 curve and SHA-256.
	ES256 Alg = &algECDSA{"ES256", crypto.SHA256, 32, 256}
	// ES384 is ECDSA using the P-384 curve and SHA-384.
	ES384 Alg = &algECDSA{"ES384", crypto.SHA384, 48, 384}
	// ES512 is ECDSA using the P-521 curve and SHA-512.
	ES512 Alg = &algECDSA{"ES512", crypto.SHA512, 66, 521}
	// EdDSA is the Edwards-curve signature algorithm over Ed25519.
	EdDSA Alg = &algEdDSA{"EdDSA"}

	allAlgs = []Alg{
		NONE,
		HS256,
		HS384,
		HS512,
		RS256,
		RS384,
		RS512,
		PS256,
		PS384,
		PS512,
		ES256,
		ES384,
		ES512,
		EdDSA,
	}
)

// parseAlg returns the builtin algorithm of the given case-sensitive
// name or nil. A nil result must be treated as a verification error,
// never as a fallback to some other algorithm.
func parseAlg(name string) Alg {
	for _, alg := range allAlgs {
		if alg.Name() == name {
			return alg
		}
	}

	return nil
}

package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrEmptyKid fires when a token without a "kid" header field is
	// verified against a Keys registry that has no default key.
	// There is deliberately no fallback to "any registered key".
	ErrEmptyKid = errors.New("jwt: kid is empty")
	// ErrUnknownKid fires when the "kid" header field does not match
	// any of the registered keys.
	ErrUnknownKid = errors.New("jwt: unknown kid")
	// ErrAlgNone fires when a token resolves to the unsecured "none"
	// algorithm and the registry was not built with `AllowNone`.
	ErrAlgNone = errors.New(`jwt: "none" algorithm is not allowed`)
)

// Key pairs one algorithm instance with its key material and a stable
// identifier, the registry key carried by the "kid" header field.
type Key struct {
	ID      string
	Alg     Alg
	Public  PublicKey
	Private PrivateKey
	// MaxAge, when positive, is the default lifetime of tokens
	// signed with this key through `SignToken`.
	MaxAge time.Duration
}

// Keys is a registry of verification/signing keys addressed by kid,
// the defense against key confusion during multi-key verification:
// a token is only ever verified with the algorithm and key registered
// under its kid (or the explicit default), never with whatever its
// header claims.
//
// It is safe for concurrent use; lookups take a read lock and
// registration replaces entries atomically from the perspective of
// concurrent lookups. Typical usage registers everything at startup
// and re-registers a kid on key rotation.
//
// Usage:
//
//	keys := jwt.NewKeys()
//	keys.Register(jwt.RS256, "api", apiPubKey, apiPrivKey)
//	keys.Register(jwt.ES256, "web", webPubKey, nil)
//	...
//	token, err := keys.SignToken("api", myClaims{...}, jwt.MaxAge(15*time.Minute))
//	...
//	var claims myClaims
//	err := keys.VerifyToken(token, &claims)
type Keys struct {
	mu         sync.RWMutex
	entries    map[string]*Key
	defaultKey *Key
	allowNone  bool

	claimsValidators []ClaimsValidator
}

// KeysOption configures a Keys registry at construction time.
type KeysOption func(*Keys)

// AllowNone permits registration and dispatch of the unsecured NONE
// algorithm. Without it any path resolving to NONE is rejected with
// ErrAlgNone. Interoperability testing only.
func AllowNone() KeysOption {
	return func(keys *Keys) {
		keys.allowNone = true
	}
}

// WithValidate registers claims validation policy for every token the
// registry verifies, e.g. a required issuer. The validators run after
// the signature and the standard time claims have been checked.
func WithValidate(validators ...ClaimsValidator) KeysOption {
	return func(keys *Keys) {
		keys.claimsValidators = append(keys.claimsValidators, validators...)
	}
}

// NewKeys returns an empty Keys registry.
func NewKeys(opts ...KeysOption) *Keys {
	keys := &Keys{entries: make(map[string]*Key)}
	for _, opt := range opts {
		opt(keys)
	}

	return keys
}

// Register registers a key pair under a unique identifier.
// Registering an existing kid replaces it; the replacement becomes
// visible to subsequent lookups as a whole, never partially.
func (keys *Keys) Register(alg Alg, kid string, pubKey PublicKey, privKey PrivateKey) error {
	return keys.RegisterKey(&Key{
		ID:      kid,
		Alg:     alg,
		Public:  pubKey,
		Private: privKey,
	})
}

// RegisterKey registers a prepared Key under its ID.
func (keys *Keys) RegisterKey(k *Key) error {
	if k.ID == "" {
		return ErrEmptyKid
	}

	if k.Alg == NONE && !keys.allowNone {
		return ErrAlgNone
	}

	keys.mu.Lock()
	keys.entries[k.ID] = k
	keys.mu.Unlock()
	return nil
}

// RegisterRaw parses raw (e.g. PEM-encoded) key material through the
// algorithm's own parser and registers the result.
func (keys *Keys) RegisterRaw(alg Alg, kid string, private, public []byte) error {
	parser, ok := alg.(AlgParser)
	if !ok {
		return fmt.Errorf("jwt: algorithm %q does not support key parsing", alg.Name())
	}

	privKey, pubKey, err := parser.Parse(private, public)
	if err != nil {
		return err
	}

	return keys.Register(alg, kid, pubKey, privKey)
}

// SetDefault marks an already registered key as the default one,
// used for tokens which carry no "kid" header field.
func (keys *Keys) SetDefault(kid string) error {
	keys.mu.Lock()
	defer keys.mu.Unlock()

	k, ok := keys.entries[kid]
	if !ok {
		return ErrUnknownKid
	}

	keys.defaultKey = k
	return nil
}

// Get returns the registered key of the given kid.
func (keys *Keys) Get(kid string) (*Key, bool) {
	keys.mu.RLock()
	k, ok := keys.entries[kid]
	keys.mu.RUnlock()
	return k, ok
}

// requireKey resolves the key a token maps to: by kid when present,
// by the default key when absent. No other fallback exists.
func (keys *Keys) requireKey(kid string) (*Key, error) {
	keys.mu.RLock()
	defer keys.mu.RUnlock()

	if kid == "" {
		if keys.defaultKey == nil {
			return nil, ErrEmptyKid
		}

		return keys.defaultKey, nil
	}

	k, ok := keys.entries[kid]
	if !ok {
		return nil, ErrUnknownKid
	}

	return k, nil
}

// ValidateHeader resolves the algorithm and public key of a decoded
// token header. Keys completes the `HeaderValidator` interface.
//
// The registered algorithm decides how the token is verified; the
// header's "alg" field may only confirm it, a mismatch is rejected.
func (keys *Keys) ValidateHeader(alg string, headerDecoded []byte) (Alg, PublicKey, error) {
	header, err := parseHeader(headerDecoded)
	if err != nil {
		return nil, nil, err
	}

	// Reject unknown algorithm names before any key lookup,
	// so the error does not depend on the registry contents.
	if parseAlg(header.Alg) == nil {
		return nil, nil, ErrTokenAlg
	}

	key, err := keys.requireKey(header.Kid)
	if err != nil {
		return nil, nil, err
	}

	if header.Alg != key.Alg.Name() {
		return nil, nil, ErrTokenAlg
	}

	// If a specific alg was given by the caller then check that as well.
	if alg != "" && alg != header.Alg {
		return nil, nil, ErrTokenAlg
	}

	if key.Alg == NONE && !keys.allowNone {
		return nil, nil, ErrAlgNone
	}

	return key.Alg, key.Public, nil
}

// SignToken signs "claims" with the key registered under "kid"
// (or the default key when "kid" is empty), stamping the kid and the
// key's algorithm into the token header.
func (keys *Keys) SignToken(kid string, claims any, opts ...SignOption) ([]byte, error) {
	k, err := keys.requireKey(kid)
	if err != nil {
		return nil, err
	}

	if k.MaxAge > 0 {
		opts = append([]SignOption{MaxAge(k.MaxAge)}, opts...)
	}

	return SignWithHeader(k.Alg, k.Private, claims, Header{Kid: k.ID}, opts...)
}

// VerifyToken verifies "token" against the registered key its header
// maps to and binds the verified payload to "claimsPtr". Claims
// validators registered through `WithValidate` run on every token.
func (keys *Keys) VerifyToken(token []byte, claimsPtr any, validators ...TokenValidator) error {
	verifiedToken, err := verifyToken(nil, nil, token, keys.ValidateHeader, keys.claimsValidators, validators...)
	if err != nil {
		return err
	}

	return verifiedToken.Claims(claimsPtr)
}

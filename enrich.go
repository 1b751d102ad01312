package jwt

import (
	"encoding/json"
	"fmt"
)

// Enrich re-signs an existing token with "extraClaims" merged into its
// payload, preserving the original claims and the "kid" header field.
// The algorithm and key are the caller's choice, as with `Sign`; the
// original token's header never decides how the result is signed.
//
// The original token's signature is NOT verified here; enrich tokens
// you just produced or already verified.
func Enrich(alg Alg, key PrivateKey, token []byte, extraClaims any) ([]byte, error) {
	tok, err := Decode(token)
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}

	merged := Merge(json.RawMessage(tok.Payload), extraClaims)
	if merged == nil {
		return nil, fmt.Errorf("enrich: claims are not mergeable")
	}

	return SignWithHeader(alg, key, json.RawMessage(merged), Header{Kid: tok.StandardHeader.Kid})
}

package jwt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissing indicates that an empty token was given to `Verify`.
	ErrMissing = errors.New("jwt: token is empty")
	// ErrTokenForm indicates that the token does not consist of
	// exactly three dot-separated segments (it's not a JWT).
	ErrTokenForm = errors.New("jwt: invalid token form")
	// ErrTokenAlg indicates that the token's "alg" header field does
	// not match the algorithm the verifier was configured with, or
	// that it names an unknown algorithm.
	ErrTokenAlg = errors.New("jwt: unexpected token algorithm")
	// ErrTokenHeader indicates that the header segment is not valid
	// base64url or not a valid JSON header object.
	ErrTokenHeader = errors.New("jwt: invalid token header encoding")
	// ErrTokenPayload indicates that the payload segment is not valid base64url.
	ErrTokenPayload = errors.New("jwt: invalid token payload encoding")
)

// Header is the JOSE header narrowed down to the fields of RFC 7519
// this package produces and reads. Unknown fields of incoming tokens
// are ignored. The "alg" field of outgoing tokens is always stamped
// from the algorithm which actually signs, see `SignWithHeader`.
type Header struct {
	Alg string `json:"alg"`
	Kid string `json:"kid,omitempty"`
	Typ string `json:"typ,omitempty"`
}

var (
	sep = []byte(".")
	pad = []byte("=")
)

// A builtin list of fixed headers for builtin algorithms (to boost the performance a bit).
// key = alg, value = the base64-encoded full header
// (when kid or any other extra headers are not set).
var fixedHeaders = make(map[string][]byte, len(allAlgs))

func init() {
	for _, alg := range allAlgs {
		fixedHeaders[alg.Name()] = Base64Encode(createHeaderRaw(alg.Name()))
	}
}

func joinParts(parts ...[]byte) []byte {
	return bytes.Join(parts, sep)
}

func createHeaderRaw(alg string) []byte {
	return []byte(`{"alg":"` + alg + `","typ":"JWT"}`)
}

func createHeader(alg string) []byte {
	if header, ok := fixedHeaders[alg]; ok {
		return header
	}

	return Base64Encode(createHeaderRaw(alg))
}

// parseHeader deserializes a base64url-decoded header segment.
// Field names are matched case-sensitively ("ALG" is not "alg") and
// unknown fields are ignored for forward compatibility, never rejected.
func parseHeader(headerDecoded []byte) (Header, error) {
	var fields map[string]json.RawMessage

	if err := Unmarshal(headerDecoded, &fields); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrTokenHeader, err)
	}

	var header Header
	for name, dest := range map[string]*string{
		"alg": &header.Alg,
		"kid": &header.Kid,
		"typ": &header.Typ,
	} {
		if raw, ok := fields[name]; ok {
			if err := Unmarshal(raw, dest); err != nil {
				return Header{}, fmt.Errorf("%w: %q: %v", ErrTokenHeader, name, err)
			}
		}
	}

	return header, nil
}

// compareHeader validates that the decoded header segment declares the
// expected algorithm. The header is never trusted to select how a token
// is verified; it may only confirm what the caller already chose.
func compareHeader(alg string, headerDecoded []byte) (Header, error) {
	// Fast path: the exact header this package produces.
	if len(headerDecoded) > 0 && headerDecoded[0] == '{' &&
		bytes.Equal(headerDecoded, createHeaderRaw(alg)) {
		return Header{Alg: alg, Typ: "JWT"}, nil
	}

	header, err := parseHeader(headerDecoded)
	if err != nil {
		return Header{}, err
	}

	if header.Alg != alg {
		return Header{}, ErrTokenAlg
	}

	return header, nil
}

// encodeToken produces the final three-segment token over an already
// JSON-serialized payload. The "headerB64" must be a base64url-encoded
// header or nil for the algorithm's fixed header.
func encodeToken(alg Alg, key PrivateKey, payload []byte, headerB64 []byte) ([]byte, error) {
	if headerB64 == nil {
		headerB64 = createHeader(alg.Name())
	}

	payloadB64 := Base64Encode(payload)
	headerPayload := joinParts(headerB64, payloadB64)

	signature, err := alg.Sign(key, headerPayload)
	if err != nil {
		return nil, err
	}

	// header.payload.signature
	return joinParts(headerPayload, Base64Encode(signature)), nil
}

// decodeToken splits, decodes and cryptographically verifies a token.
// It returns the decoded header, payload and signature bytes.
//
// The signature is verified over the raw, undecoded first two segments
// (the exact bytes which were signed), never over re-serialized JSON.
// When a headerValidator is given (multi-key mode) it selects the
// algorithm and key; otherwise the caller's explicit "alg" and "key"
// are used and the header may only confirm them.
func decodeToken(alg Alg, key PublicKey, token []byte, headerValidator HeaderValidator) ([]byte, []byte, []byte, error) {
	parts := bytes.Split(token, sep)
	if len(parts) != 3 {
		return nil, nil, nil, ErrTokenForm
	}

	header, payload, signature := parts[0], parts[1], parts[2]

	headerDecoded, err := Base64Decode(header)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrTokenHeader, err)
	}

	if headerValidator != nil {
		algName := ""
		if alg != nil {
			algName = alg.Name()
		}

		alg, key, err = headerValidator(algName, headerDecoded)
		if err != nil {
			return nil, nil, nil, err
		}
	} else {
		if _, err = compareHeader(alg.Name(), headerDecoded); err != nil {
			return nil, nil, nil, err
		}
	}

	signatureDecoded, err := Base64Decode(signature)
	if err != nil {
		return nil, nil, nil, ErrTokenSignature
	}

	headerPayload := joinParts(header, payload)
	if err = alg.Verify(key, headerPayload, signatureDecoded); err != nil {
		return nil, nil, nil, err
	}

	payloadDecoded, err := Base64Decode(payload)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrTokenPayload, err)
	}

	return headerDecoded, payloadDecoded, signatureDecoded, nil
}

// UnverifiedToken is the result of `Decode`: a split and decoded but
// NOT verified token. Nothing in it can be trusted; it exists for
// introspection only, e.g. reading the "kid" before the key is known.
type UnverifiedToken struct {
	Token          []byte // the original token bytes.
	Header         []byte // the base64url-decoded header segment (JSON).
	Payload        []byte // the base64url-decoded payload segment (JSON).
	StandardHeader Header // the parsed "alg", "kid" and "typ" fields.
}

// Claims binds the unverified payload to "dest".
func (t *UnverifiedToken) Claims(dest any) error {
	return Unmarshal(t.Payload, dest)
}

// Decode splits and decodes a token WITHOUT verifying its signature or
// its claims. The result must never be used as a trust decision; use
// `Verify` (or `Keys.VerifyToken`) for that.
func Decode(token []byte) (*UnverifiedToken, error) {
	parts := bytes.Split(token, sep)
	if len(parts) != 3 {
		return nil, ErrTokenForm
	}

	headerDecoded, err := Base64Decode(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenHeader, err)
	}

	header, err := parseHeader(headerDecoded)
	if err != nil {
		return nil, err
	}

	payloadDecoded, err := Base64Decode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenPayload, err)
	}

	return &UnverifiedToken{
		Token:          token,
		Header:         headerDecoded,
		Payload:        payloadDecoded,
		StandardHeader: header,
	}, nil
}

// Base64Encode encodes "src" to the unpadded base64url form JWT segments use.
func Base64Encode(src []byte) []byte {
	buf := make([]byte, base64.URLEncoding.EncodedLen(len(src)))
	base64.URLEncoding.Encode(buf, src)

	return bytes.TrimRight(buf, string(pad)) // JWT: no trailing '='.
}

// base64Strict rejects encodings with non-zero trailing padding bits,
// so every byte sequence has exactly one accepted encoding and a
// flipped slack bit can never still decode to the signed bytes.
var base64Strict = base64.URLEncoding.Strict()

// Base64Decode decodes an unpadded base64url "src".
func Base64Decode(src []byte) ([]byte, error) {
	if n := len(src) % 4; n > 0 {
		// JWT: the trailing '=' were stripped, suffix the correct
		// number of them back before decoding.
		src = append(src[:len(src):len(src)], bytes.Repeat(pad, 4-n)...)
	}

	buf := make([]byte, base64Strict.DecodedLen(len(src)))
	n, err := base64Strict.Decode(buf, src)
	return buf[:n], err
}

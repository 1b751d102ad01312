package jwt

import "bytes"

// Merge serializes "claims" and "other" and returns a flat JSON object
// containing the fields of both. It's a byte-level splice, no duplicate
// key detection is performed; the `Sign` function uses it to mix the
// standard claims of its options into custom payload structs or maps.
//
// Usage:
//
//	claims := Map{"foo": "bar"}
//	payload := jwt.Merge(claims, jwt.Claims{Issuer: "api"})
//	token, err := jwt.Sign(jwt.HS256, secret, json.RawMessage(payload))
func Merge(claims any, other any) []byte {
	claimsB, err := Marshal(claims)
	if err != nil {
		return nil
	}

	otherB, err := Marshal(other)
	if err != nil {
		return nil
	}

	return mergeJSONObjects(claimsB, otherB)
}

func mergeJSONObjects(a, b []byte) []byte {
	a, b = bytes.TrimSpace(a), bytes.TrimSpace(b)

	if !isJSONObject(a) {
		return b
	}

	if !isJSONObject(b) || bytes.Equal(b, emptyJSONObject) {
		return a
	}

	if bytes.Equal(a, emptyJSONObject) {
		return b
	}

	raw := make([]byte, 0, len(a)+len(b))
	raw = append(raw, a[:len(a)-1]...) // without the trailing '}'.
	raw = append(raw, ',')
	raw = append(raw, b[1:]...) // without the leading '{'.
	return raw
}

var emptyJSONObject = []byte("{}")

func isJSONObject(b []byte) bool {
	return len(b) >= 2 && b[0] == '{' && b[len(b)-1] == '}'
}

package jwt

import "encoding/json"

// TokenPair is the standard JSON envelope of an access and a refresh
// token, as sent to clients after authentication. The tokens are kept
// as json.RawMessage to preserve their exact byte representation.
type TokenPair struct {
	AccessToken  json.RawMessage `json:"access_token,omitempty"`
	RefreshToken json.RawMessage `json:"refresh_token,omitempty"`
}

// NewTokenPair wraps raw access and refresh token bytes into a
// TokenPair. Either token can be empty, the omitempty tags exclude it
// from the JSON output then.
//
// Example:
//
//	accessToken, _ := jwt.Sign(alg, key, accessClaims, jwt.MaxAge(15*time.Minute))
//	refreshToken, _ := jwt.Sign(alg, key, refreshClaims, jwt.MaxAge(7*24*time.Hour))
//	pair := jwt.NewTokenPair(accessToken, refreshToken)
func NewTokenPair(accessToken, refreshToken []byte) TokenPair {
	return TokenPair{
		AccessToken:  BytesQuote(accessToken),
		RefreshToken: BytesQuote(refreshToken),
	}
}

// BytesQuote wraps a byte slice in double quotes,
// making it a valid JSON string value.
func BytesQuote(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	dst := make([]byte, len(b)+2)
	dst[0] = '"'
	copy(dst[1:], b)
	dst[len(dst)-1] = '"'
	return dst
}

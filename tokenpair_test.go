package jwt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenPair(t *testing.T) {
	accessToken, err := Sign(HS256, testSecret, Map{"username": "kataras"})
	require.NoError(t, err)

	refreshToken, err := Sign(HS256, testSecret, Map{"username": "kataras", "scope": "refresh"})
	require.NoError(t, err)

	pair := NewTokenPair(accessToken, refreshToken)

	b, err := json.Marshal(pair)
	require.NoError(t, err)

	var got struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, string(accessToken), got.AccessToken)
	require.Equal(t, string(refreshToken), got.RefreshToken)

	// Empty halves are omitted entirely.
	b, err = json.Marshal(NewTokenPair(accessToken, nil))
	require.NoError(t, err)
	require.NotContains(t, string(b), "refresh_token")
}

func TestBytesQuote(t *testing.T) {
	require.Nil(t, BytesQuote(nil))
	require.Equal(t, []byte(`"abc"`), BytesQuote([]byte("abc")))
}

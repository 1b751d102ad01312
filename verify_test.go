package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVerifyMissingToken(t *testing.T) {
	_, err := Verify(HS256, testSecret, nil)
	require.ErrorIs(t, err, ErrMissing)

	_, err = Verify(HS256, testSecret, []byte{})
	require.ErrorIs(t, err, ErrMissing)
}

func TestVerifyKeyIsolation(t *testing.T) {
	token, err := Sign(HS256, testSecret, Map{"username": "makis"})
	require.NoError(t, err)

	// Same algorithm family, different secret.
	otherSecret := []byte("another secret of enough length!")
	_, err = Verify(HS256, otherSecret, token)
	require.ErrorIs(t, err, ErrTokenSignature)

	// Same secret, different hash width.
	_, err = Verify(HS384, testSecret, token)
	require.ErrorIs(t, err, ErrTokenAlg)
}

func TestVerifyAlgorithmIsolation(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := Sign(RS256, rsaKey, Map{"username": "makis"})
	require.NoError(t, err)

	// A different algorithm family never verifies, whatever the key.
	_, err = Verify(HS256, testSecret, token)
	require.ErrorIs(t, err, ErrTokenAlg)

	_, err = Verify(PS256, &rsaKey.PublicKey, token)
	require.ErrorIs(t, err, ErrTokenAlg)
}

func TestVerifyNoneIsOptIn(t *testing.T) {
	token, err := Sign(NONE, nil, Map{"username": "makis"})
	require.NoError(t, err)

	// An unsigned token is rejected by any real verifier...
	_, err = Verify(HS256, testSecret, token)
	require.ErrorIs(t, err, ErrTokenAlg)

	// ...and verifies only when the caller explicitly asked for NONE.
	verifiedToken, err := Verify(NONE, nil, token)
	require.NoError(t, err)
	require.Empty(t, verifiedToken.Signature)

	// A "none" token carrying a signature anyway is invalid.
	withSignature := append(append([]byte{}, token...), []byte("c2ln")...)
	_, err = Verify(NONE, nil, withSignature)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	withClock(t, now)

	token, err := Sign(HS256, testSecret, Claims{Expiry: now.Add(time.Hour).Unix()})
	require.NoError(t, err)

	_, err = Verify(HS256, testSecret, token)
	require.NoError(t, err)

	withClock(t, now.Add(2*time.Hour))
	_, err = Verify(HS256, testSecret, token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyPlainPayload(t *testing.T) {
	payload := []byte("just some plain bytes")
	token, err := encodeToken(HS256, testSecret, payload, nil)
	require.NoError(t, err)

	// A non-JSON payload fails by default, even with a valid signature.
	_, err = Verify(HS256, testSecret, token)
	require.Error(t, err)

	// The Plain validator opts in to it; the signature is still required.
	verifiedToken, err := Verify(HS256, testSecret, token, Plain)
	require.NoError(t, err)
	require.Equal(t, payload, verifiedToken.Payload)

	tampered := append([]byte{}, token...)
	tampered[len(tampered)-3] ^= 1
	_, err = Verify(HS256, testSecret, tampered, Plain)
	require.Error(t, err)
}

func TestTokenValidatorChain(t *testing.T) {
	token, err := Sign(HS256, testSecret, Map{"username": "makis"})
	require.NoError(t, err)

	rejected := TokenValidatorFunc(func(token []byte, standardClaims Claims, err error) error {
		if err != nil {
			return err
		}

		return ErrExpected
	})

	_, err = Verify(HS256, testSecret, token, rejected)
	require.ErrorIs(t, err, ErrExpected)

	// A nil validator is skipped.
	_, err = Verify(HS256, testSecret, token, nil, TokenValidatorFunc(func(_ []byte, _ Claims, err error) error {
		return err
	}))
	require.NoError(t, err)

	// Claim failures surface before validators run, and a validator
	// sees (and may keep) them.
	expired, err := Sign(HS256, testSecret, Claims{Expiry: Clock().Add(-time.Hour).Unix()})
	require.NoError(t, err)

	var seen error
	_, err = Verify(HS256, testSecret, expired, TokenValidatorFunc(func(_ []byte, _ Claims, err error) error {
		seen = err
		return err
	}))
	require.ErrorIs(t, err, ErrExpired)
	require.ErrorIs(t, seen, ErrExpired)
}

package jwt

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyEdDSA(t *testing.T) {
	pub, priv, err := GenerateEdDSA()
	require.NoError(t, err)

	token, err := Sign(EdDSA, priv, Map{"username": "kataras"})
	require.NoError(t, err)

	_, err = Verify(EdDSA, pub, token)
	require.NoError(t, err)

	// The private key alone can verify too.
	_, err = Verify(EdDSA, priv, token)
	require.NoError(t, err)

	otherPub, _, err := GenerateEdDSA()
	require.NoError(t, err)
	_, err = Verify(EdDSA, otherPub, token)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestEdDSAInvalidKey(t *testing.T) {
	_, err := EdDSA.Sign([]byte("secret"), []byte("header.payload"))
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = EdDSA.Sign(ed25519.PrivateKey("short"), []byte("header.payload"))
	require.ErrorIs(t, err, ErrInvalidKey)

	err = EdDSA.Verify([]byte("secret"), []byte("header.payload"), nil)
	require.ErrorIs(t, err, ErrInvalidKey)

	err = EdDSA.Verify(ed25519.PublicKey("short"), []byte("header.payload"), nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestParseKeysEdDSA(t *testing.T) {
	pub, priv, err := GenerateEdDSA()
	require.NoError(t, err)

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})

	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	parsedPriv, err := ParsePrivateKeyEdDSA(privPEM)
	require.NoError(t, err)
	require.True(t, priv.Equal(parsedPriv))

	parsedPub, err := ParsePublicKeyEdDSA(pubPEM)
	require.NoError(t, err)
	require.True(t, pub.Equal(parsedPub))

	parsedPrivAny, parsedPubAny, err := EdDSA.(AlgParser).Parse(privPEM, pubPEM)
	require.NoError(t, err)
	require.True(t, priv.Equal(parsedPrivAny.(ed25519.PrivateKey)))
	require.True(t, pub.Equal(parsedPubAny.(ed25519.PublicKey)))
}

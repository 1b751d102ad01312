package jwt

import (
	"encoding/json"
	"os"
	"time"
)

type (
	// PrivateKey is the key material an algorithm signs with.
	// Its concrete type depends on the algorithm:
	// []byte for the HMAC family, *rsa.PrivateKey for RSA and RSA-PSS,
	// *ecdsa.PrivateKey for ECDSA and ed25519.PrivateKey for EdDSA.
	PrivateKey = any
	// PublicKey is the key material an algorithm verifies with.
	// For the HMAC family it is the same shared secret as the PrivateKey.
	PublicKey = any

	// Map is a shortcut of map[string]any, common for custom claims.
	Map = map[string]any
)

// Clock is the time source used to validate the "exp", "nbf" and "iat"
// claims. It can be overridden, useful for testing.
//
// Usage: now := Clock()
var Clock = time.Now

var (
	// Marshal is the function which serializes headers and claims to JSON.
	// It can be replaced to plug a custom serializer for the whole package.
	Marshal = json.Marshal
	// Unmarshal is the function which deserializes headers and claims from JSON.
	// Set it to UnmarshalWithRequired to enforce `json:",required"` tags.
	Unmarshal = json.Unmarshal
)

// ReadFile reads key material from the filesystem for the Load helpers.
// It can be overridden to read from any other medium.
var ReadFile = os.ReadFile

package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpected(t *testing.T) {
	claims := Claims{
		NotBefore: 1700000000,
		IssuedAt:  1700000000,
		Expiry:    1700003600,
		ID:        "jti-1",
		Issuer:    "api",
		Subject:   "user-42",
		Audience:  Audience{"api", "web"},
	}

	var tests = []struct {
		name     string
		expected Expected
		ok       bool
	}{
		{"empty matches anything", Expected{}, true},
		{"all fields match", Expected(claims), true},
		{"issuer match", Expected{Issuer: "api"}, true},
		{"issuer mismatch", Expected{Issuer: "other"}, false},
		{"subject mismatch", Expected{Subject: "user-43"}, false},
		{"id mismatch", Expected{ID: "jti-2"}, false},
		{"nbf mismatch", Expected{NotBefore: 1}, false},
		{"iat mismatch", Expected{IssuedAt: 1}, false},
		{"exp mismatch", Expected{Expiry: 1}, false},
		// The audience is a membership check, not set equality.
		{"audience member", Expected{Audience: Audience{"api"}}, true},
		{"audience members", Expected{Audience: Audience{"web", "api"}}, true},
		{"audience non-member", Expected{Audience: Audience{"mobile"}}, false},
	}

	for _, tt := range tests {
		err := tt.expected.ValidateToken(nil, claims, nil)
		if tt.ok {
			require.NoError(t, err, tt.name)
		} else {
			require.ErrorIs(t, err, ErrExpected, tt.name)
		}
	}

	// A previous failure passes through untouched.
	err := Expected{Issuer: "api"}.ValidateToken(nil, claims, ErrExpired)
	require.ErrorIs(t, err, ErrExpired)
}

func TestExpectedEndToEnd(t *testing.T) {
	token, err := Sign(HS256, testSecret, Claims{
		Issuer:   "api",
		Audience: Audience{"api", "web"},
	})
	require.NoError(t, err)

	_, err = Verify(HS256, testSecret, token, Expected{Issuer: "api", Audience: Audience{"web"}})
	require.NoError(t, err)

	_, err = Verify(HS256, testSecret, token, Expected{Audience: Audience{"mobile"}})
	require.ErrorIs(t, err, ErrExpected)
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLeeway(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	withClock(t, now)

	claims := Claims{Expiry: now.Add(10 * time.Second).Unix()}

	require.NoError(t, Leeway(5*time.Second)(nil, claims, nil))
	require.ErrorIs(t, Leeway(30*time.Second)(nil, claims, nil), ErrExpired)
	// The boundary stays exclusive under leeway too.
	require.ErrorIs(t, Leeway(10*time.Second)(nil, claims, nil), ErrExpired)

	// No "exp": unaffected.
	require.NoError(t, Leeway(30*time.Second)(nil, Claims{}, nil))

	// A previous failure passes through untouched.
	require.ErrorIs(t, Leeway(5*time.Second)(nil, claims, ErrTokenSignature), ErrTokenSignature)
}

func TestFuture(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	withClock(t, now)

	skewed := Claims{IssuedAt: now.Add(30 * time.Second).Unix()}

	// Only the issued-in-the-future rejection is reconsidered.
	require.NoError(t, Future(time.Minute)(nil, skewed, ErrIssuedInTheFuture))
	require.ErrorIs(t, Future(10*time.Second)(nil, skewed, ErrIssuedInTheFuture), ErrIssuedInTheFuture)
	require.ErrorIs(t, Future(time.Minute)(nil, skewed, ErrExpired), ErrExpired)
	require.NoError(t, Future(time.Minute)(nil, skewed, nil))
}

func TestFutureEndToEnd(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	withClock(t, now)

	token, err := Sign(HS256, testSecret, Claims{IssuedAt: now.Add(30 * time.Second).Unix()})
	require.NoError(t, err)

	_, err = Verify(HS256, testSecret, token)
	require.ErrorIs(t, err, ErrIssuedInTheFuture)

	_, err = Verify(HS256, testSecret, token, Future(time.Minute))
	require.NoError(t, err)
}

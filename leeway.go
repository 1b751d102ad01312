package jwt

import (
	"errors"
	"time"
)

// Leeway returns a TokenValidator which rejects tokens that expire
// within the given duration, even when they are technically still
// valid. Useful when the verified token will still be in use for a
// while, e.g. during a slow downstream call.
//
// Tokens without an "exp" claim are unaffected.
func Leeway(leeway time.Duration) TokenValidatorFunc {
	return func(_ []byte, standardClaims Claims, err error) error {
		if err == nil && standardClaims.Expiry > 0 {
			if Clock().Add(leeway).Round(time.Second).Unix() >= standardClaims.Expiry {
				return ErrExpired
			}
		}

		return err
	}
}

// Future returns a TokenValidator which tolerates tokens issued up to
// the given duration in the future, compensating clock skew between
// the issuing and the verifying machine.
//
// Only the ErrIssuedInTheFuture rejection is affected.
func Future(dur time.Duration) TokenValidatorFunc {
	return func(_ []byte, standardClaims Claims, err error) error {
		if errors.Is(err, ErrIssuedInTheFuture) {
			if Clock().Add(dur).Round(time.Second).Unix() < standardClaims.IssuedAt {
				return ErrIssuedInTheFuture
			}

			return nil
		}

		return err
	}
}

package jwt

// algNONE implements the unsecured "none" algorithm.
// Tokens carrying it can be forged by anyone; it is only reachable
// when the caller asks for it by name (see the AllowNone registry option).
type algNONE struct{}

func (a *algNONE) Name() string {
	return "none"
}

func (a *algNONE) Sign(key PrivateKey, headerAndPayload []byte) ([]byte, error) {
	return nil, nil
}

// Verify accepts only an empty signature, as RFC 7515 requires
// for unsecured JWTs.
func (a *algNONE) Verify(key PublicKey, headerAndPayload []byte, signature []byte) error {
	if len(signature) != 0 {
		return ErrTokenSignature
	}

	return nil
}

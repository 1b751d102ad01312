//go:build safe

package jwt

// BytesToString converts a slice of bytes to string by copying.
func BytesToString(b []byte) string {
	return string(b)
}

// StringToBytes converts a string into a slice of bytes by copying.
func StringToBytes(s string) []byte {
	return []byte(s)
}

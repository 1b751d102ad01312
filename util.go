//go:build !safe

package jwt

import "unsafe"

// BytesToString converts a byte slice to a string without allocation.
// The input must not be mutated afterwards. Build with the "safe" tag
// for a copying implementation.
func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes converts a string to a byte slice without allocation.
// The result must not be mutated.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

package objects

import (
	"crypto/sha1"
	"encoding/hex"
)

// Sha1Hex returns the 40-hex-lowercase SHA-1 digest of data.
func Sha1Hex(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// HexToBytes decodes a 40-hex string into its 20 raw bytes. Callers are
// expected to have already validated the string length; a malformed
// string surfaces the underlying hex.InvalidByteError unchanged.
func HexToBytes(shaHex string) ([]byte, error) {
	return hex.DecodeString(shaHex)
}

// BytesToHex encodes 20 raw bytes as a 40-hex-lowercase string.
func BytesToHex(raw []byte) string {
	return hex.EncodeToString(raw)
}

// IsValidSHA reports whether s is a well-formed 40-character lowercase
// hex string, the shape required of every object identifier.
func IsValidSHA(s string) bool {
	if len(s) != 40 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

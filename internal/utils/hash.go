package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of secret.
//
// Example usage:
//
//	digest := utils.SHA256Hex("my-api-key")
func SHA256Hex(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// MatchesSHA256 reports whether secret hashes to hexDigest. The digest may be
// upper or lower case. Comparison runs in constant time; an empty digest
// never matches.
func MatchesSHA256(secret, hexDigest string) bool {
	hexDigest = strings.ToLower(strings.TrimSpace(hexDigest))
	if hexDigest == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(SHA256Hex(secret)), []byte(hexDigest)) == 1
}

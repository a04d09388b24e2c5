package hibp

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

const (
	// DigestLength is the length of a hex-encoded SHA-1 digest.
	DigestLength = 40
	// PrefixLength is the number of leading digest characters sent to the
	// range API. Nothing beyond these 5 characters ever leaves the machine.
	PrefixLength = 5
)

// Digest returns the uppercase hex SHA-1 of password, the digest space the
// range API indexes by.
func Digest(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// SplitDigest splits a digest into the transmittable prefix and the local
// suffix. prefix + suffix == digest.
func SplitDigest(digest string) (prefix, suffix string) {
	return digest[:PrefixLength], digest[PrefixLength:]
}

package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// shortDigestLen is how many hex characters ShortDigest keeps.
const shortDigestLen = 8

// SHA256 returns the hex encoded SHA-256 of input.
func SHA256(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// ShortDigest returns the first eight hex characters of the SHA-256 of
// input. It names inline sources in logs and source URLs.
func ShortDigest(input string) string {
	return SHA256(input)[:shortDigestLen]
}

// SHA256Reader hashes everything read from r.
func SHA256Reader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

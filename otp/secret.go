package otp

import (
	"crypto/rand"
	"fmt"
)

// RandomSecret returns n cryptographically random bytes suitable for use as a
// shared secret. RFC 4226 recommends a secret at least as long as the HMAC
// digest: 20 bytes for SHA1, 32 for SHA256, 64 for SHA512.
func RandomSecret(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	return buf, nil
}

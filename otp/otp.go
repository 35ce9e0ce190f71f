// Package otp generates one-time passwords from a shared secret and a moving
// factor, implementing the HOTP (RFC 4226) and TOTP (RFC 6238) algorithms.
//
// A Generator binds a secret to a Factor (an explicit counter or a clock
// timer), a hash algorithm, and a digit count. Generators are immutable
// values: advancing a counter produces a new Generator, so values may be
// shared freely across goroutines without coordination.
package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"time"
)

// An Algorithm selects the hash function used for the HMAC computation.
type Algorithm int

const (
	SHA1   Algorithm = iota // HMAC-SHA-1, 20-byte digests (the RFC default)
	SHA256                  // HMAC-SHA-256, 32-byte digests
	SHA512                  // HMAC-SHA-512, 64-byte digests
)

// String returns the name of a, as it appears in otpauth URLs.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// newHash returns the hash constructor for a, or nil if a is not one of the
// supported algorithms.
func (a Algorithm) newHash() func() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	}
	return nil
}

// Digit counts supported for generated passwords, per the RFC 4226
// recommendation.
const (
	MinDigits = 6
	MaxDigits = 8
)

// Errors reported by NewGenerator.
var (
	ErrInvalidDigits    = errors.New("digit count out of range")
	ErrInvalidPeriod    = errors.New("timer period must be positive")
	ErrInvalidAlgorithm = errors.New("unknown hash algorithm")
)

// A Generator computes one-time passwords for a single secret. The zero value
// is not valid; use NewGenerator. Generators are comparable, and two
// generators are equal exactly when all four of their fields are equal.
type Generator struct {
	factor Factor
	secret string // raw key bytes; string keeps the value immutable
	alg    Algorithm
	digits int
}

// NewGenerator constructs a generator for the given factor and secret.
// It reports an error if digits is outside [MinDigits, MaxDigits], if a timer
// factor has a non-positive period, or if alg is not a supported algorithm.
// The secret may be empty; its length is not restricted.
func NewGenerator(factor Factor, secret []byte, alg Algorithm, digits int) (Generator, error) {
	if digits < MinDigits || digits > MaxDigits {
		return Generator{}, fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
	}
	if factor.timed && factor.period <= 0 {
		return Generator{}, fmt.Errorf("%w: %v", ErrInvalidPeriod, factor.period)
	}
	if alg.newHash() == nil {
		return Generator{}, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, alg)
	}
	return Generator{factor: factor, secret: string(secret), alg: alg, digits: digits}, nil
}

// Factor returns the moving factor of g.
func (g Generator) Factor() Factor { return g.factor }

// Secret returns a copy of the secret key of g.
func (g Generator) Secret() []byte { return []byte(g.secret) }

// Algorithm returns the hash algorithm of g.
func (g Generator) Algorithm() Algorithm { return g.alg }

// Digits returns the password length of g.
func (g Generator) Digits() int { return g.digits }

// Equal reports whether g and h have equal factors, secrets, algorithms, and
// digit counts.
func (g Generator) Equal(h Generator) bool { return g == h }

// Next returns a generator whose counter has been advanced by one. If g has a
// timer factor, Next returns g unchanged; time advances on its own.
func (g Generator) Next() Generator { g.factor = g.factor.Next(); return g }

// Password returns the password for the moving-factor value at the given
// instant, as a decimal string of exactly Digits characters. Generators with
// a counter factor ignore the instant.
//
// The result is a pure function of the generator and the instant: the same
// inputs produce the same password on any platform.
func (g Generator) Password(at time.Time) string {
	return g.hotp(g.factor.Value(at))
}

// hotp computes the RFC 4226 value for the given moving factor: HMAC over the
// big-endian 8-byte counter, dynamic truncation to 31 bits, then reduction to
// the configured number of decimal digits.
func (g Generator) hotp(counter uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)

	mac := hmac.New(g.alg.newHash(), []byte(g.secret))
	mac.Write(buf[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	trunc := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%0*d", g.digits, trunc%pow10(g.digits))
}

// pow10 returns 10^n for n up to MaxDigits.
func pow10(n int) uint32 {
	p := uint32(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

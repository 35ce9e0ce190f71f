package otp

import (
	"math"
	"time"
)

// A Factor is the moving factor combined with the secret to produce a
// password: either an explicit counter advanced by the caller (HOTP), or a
// timer that derives the counter from wall-clock time (TOTP). Exactly one of
// the two kinds is active in any Factor, and factors of the same kind and
// value compare equal.
type Factor struct {
	counter uint64
	period  time.Duration
	timed   bool
}

// Counter returns a counter factor with the given initial value.
func Counter(n uint64) Factor { return Factor{counter: n} }

// Timer returns a timer factor with the given step period. The period is not
// validated here; NewGenerator rejects non-positive periods.
func Timer(period time.Duration) Factor { return Factor{period: period, timed: true} }

// IsTimer reports whether f is a timer factor.
func (f Factor) IsTimer() bool { return f.timed }

// Count returns the counter value of f, or 0 for a timer factor.
func (f Factor) Count() uint64 { return f.counter }

// Period returns the step period of f, or 0 for a counter factor.
func (f Factor) Period() time.Duration { return f.period }

// Next returns f with its counter advanced by one. Timer factors are
// returned unchanged.
func (f Factor) Next() Factor {
	if !f.timed {
		f.counter++
	}
	return f
}

// Value returns the 64-bit moving-factor value at the given instant. A
// counter factor returns its counter, ignoring the instant; a timer factor
// returns the number of whole periods elapsed since the Unix epoch, rounding
// toward negative infinity as RFC 6238 requires.
func (f Factor) Value(at time.Time) uint64 {
	if !f.timed {
		return f.counter
	}
	sec := float64(at.Unix()) + float64(at.Nanosecond())/1e9
	return uint64(int64(math.Floor(sec / f.period.Seconds())))
}

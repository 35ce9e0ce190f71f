package otp

import (
	"crypto/subtle"
	"time"
)

// Verify reports whether code is a valid password for g near the given
// instant. For a timer factor the code is checked against every step within
// skew steps of the step at the instant, tolerating clock drift between the
// parties. For a counter factor the code is checked against the current
// counter and up to skew counters ahead, tolerating generate-but-never-submit
// gaps on the client side.
//
// Comparison is constant-time in the candidate code.
func (g Generator) Verify(code string, at time.Time, skew uint) bool {
	if len(code) != g.digits {
		return false
	}
	base := g.factor.Value(at)
	lo := base
	if g.factor.timed && uint64(skew) < base {
		lo = base - uint64(skew)
	} else if g.factor.timed {
		lo = 0
	}
	hi := base + uint64(skew)

	for step := lo; ; step++ {
		if subtle.ConstantTimeCompare([]byte(g.hotp(step)), []byte(code)) == 1 {
			return true
		}
		if step == hi {
			return false
		}
	}
}

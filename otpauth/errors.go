package otpauth

import "errors"

// Errors reported by Parse. Each failure identifies the offending field, and
// where a raw value is at fault the returned error wraps the sentinel with
// that value quoted; use errors.Is to classify.
var (
	// ErrInvalidScheme: the URL scheme is not "otpauth".
	ErrInvalidScheme = errors.New("invalid URL scheme")

	// ErrDuplicateParam: a query parameter key occurs more than once.
	ErrDuplicateParam = errors.New("duplicate query parameter")

	// ErrMissingFactor: the URL has no host naming the factor type.
	ErrMissingFactor = errors.New("no factor type in URL")

	// ErrInvalidFactor: the URL host is neither "hotp" nor "totp".
	ErrInvalidFactor = errors.New("invalid factor type")

	// ErrInvalidCounter: the counter parameter is not an unsigned integer.
	ErrInvalidCounter = errors.New("invalid counter value")

	// ErrInvalidPeriod: the period parameter is not an unsigned integer.
	// A parseable but non-positive period is reported by otp.ErrInvalidPeriod
	// from generator construction instead.
	ErrInvalidPeriod = errors.New("invalid timer period")

	// ErrMissingSecret: no external secret was supplied and the URL carries
	// no secret parameter.
	ErrMissingSecret = errors.New("no secret available")

	// ErrInvalidSecret: the secret parameter is not valid Base32.
	ErrInvalidSecret = errors.New("invalid secret encoding")

	// ErrInvalidAlgorithm: the algorithm parameter is not one of SHA1,
	// SHA256, or SHA512 (matched exactly).
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidDigits: the digits parameter is not an integer. An integer
	// outside the supported range is reported by otp.ErrInvalidDigits from
	// generator construction instead.
	ErrInvalidDigits = errors.New("invalid digit count")
)

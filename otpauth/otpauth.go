// Package otpauth converts OTP generator parameters to and from the de facto
// standard otpauth:// URL scheme used to interchange one-time password
// configurations between applications.
//
// The URL format is:
//
//	otpauth://TYPE/LABEL?PARAMETERS
//
// where TYPE is "hotp" or "totp", LABEL is an account name optionally
// prefixed with "issuer:", and the parameters include the algorithm, digit
// count, issuer, and the counter (hotp) or period (totp). A secret parameter
// in Base32 is accepted on input; URLs generated by this package never embed
// the secret, and the caller supplies it out of band.
package otpauth

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/finchsec/otpkit/internal/base32"
	"github.com/finchsec/otpkit/otp"
)

// Defaults applied to URL parameters that are not present.
const (
	defaultDigits  = 6
	defaultPeriod  = 30 * time.Second
	defaultCounter = 0
)

// Parse decodes an otpauth:// URL into a token. If secret is non-nil it is
// used as the key and any secret parameter in the URL is ignored; otherwise
// the secret parameter is required and is decoded as Base32.
//
// Parsing is atomic: either every field of the URL is valid and a complete
// token is returned, or a single error from this package's taxonomy (or from
// otp generator construction) identifies the first offending field.
func Parse(rawURL string, secret []byte) (Token, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Token{}, fmt.Errorf("parse URL: %w", err)
	}
	if u.Scheme != "otpauth" {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidScheme, u.Scheme)
	}
	query, err := uniqueQuery(u.RawQuery)
	if err != nil {
		return Token{}, err
	}

	var factor otp.Factor
	switch u.Host {
	case "hotp":
		counter := uint64(defaultCounter)
		if raw, ok := query["counter"]; ok {
			c, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return Token{}, fmt.Errorf("%w: %q", ErrInvalidCounter, raw)
			}
			counter = c
		}
		factor = otp.Counter(counter)
	case "totp":
		period := defaultPeriod
		if raw, ok := query["period"]; ok {
			p, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return Token{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
			}
			period = time.Duration(p) * time.Second
		}
		factor = otp.Timer(period)
	case "":
		return Token{}, ErrMissingFactor
	default:
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidFactor, u.Host)
	}

	alg := otp.SHA1
	if raw, ok := query["algorithm"]; ok {
		switch raw {
		case "SHA1":
			alg = otp.SHA1
		case "SHA256":
			alg = otp.SHA256
		case "SHA512":
			alg = otp.SHA512
		default:
			return Token{}, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, raw)
		}
	}

	digits := defaultDigits
	if raw, ok := query["digits"]; ok {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %q", ErrInvalidDigits, raw)
		}
		digits = d // range is checked by NewGenerator
	}

	key := secret
	if key == nil {
		raw, ok := query["secret"]
		if !ok {
			return Token{}, ErrMissingSecret
		}
		dec, err := base32.DecodeStrict(raw)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %q", ErrInvalidSecret, raw)
		}
		key = dec
	}

	gen, err := otp.NewGenerator(factor, key, alg, digits)
	if err != nil {
		return Token{}, err
	}

	fullName := strings.TrimPrefix(u.Path, "/")
	issuer, ok := query["issuer"]
	if !ok {
		if head, _, found := strings.Cut(fullName, ":"); found {
			issuer = head
		}
	}
	name := fullName
	if rest, found := strings.CutPrefix(fullName, issuer+":"); found {
		name = strings.TrimSpace(rest)
	}

	return Token{Generator: gen, Name: name, Issuer: issuer}, nil
}

// uniqueQuery parses a raw query string into a key-to-value map, reporting an
// error if any key occurs more than once. Ambiguity about which copy of a
// repeated parameter wins is not worth guessing about for key material.
func uniqueQuery(rawQuery string) (map[string]string, error) {
	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	out := make(map[string]string, len(vals))
	for key, vs := range vals {
		if len(vs) > 1 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParam, key)
		}
		out[key] = vs[0]
	}
	return out, nil
}

// EncodeSecret returns the padded Base32 text form of a raw secret, as used
// by the secret URL parameter.
func EncodeSecret(secret []byte) string { return base32.Encode(secret) }

// DecodeSecret decodes Base32 text entered by hand: letter case and padding
// are ignored, and separator characters such as spaces or dashes are
// skipped. DecodeSecret never fails; use Parse for input that must be
// well-formed.
func DecodeSecret(s string) []byte { return base32.Decode(s) }

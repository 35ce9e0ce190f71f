package otpauth

import (
	"net/url"
	"strconv"
	"time"

	"github.com/finchsec/otpkit/otp"
)

// timeNow is swapped by tests to pin the clock.
var timeNow = time.Now

// A Token pairs a password generator with the display metadata carried in an
// otpauth URL. Tokens are plain values; the zero Name and Issuer are valid.
type Token struct {
	Generator otp.Generator
	Name      string // the account label, without any issuer prefix
	Issuer    string // the issuing service, possibly ""
}

// CurrentPassword returns the password for the current moment.
func (t Token) CurrentPassword() string { return t.Generator.Password(timeNow()) }

// Next returns the token to use after a password has been exchanged: for a
// counter-based token the counter is advanced by one, and a time-based token
// is returned unchanged.
func (t Token) Next() Token { t.Generator = t.Generator.Next(); return t }

// URL returns the otpauth:// form of t. The secret is never included; the
// party registering the token is expected to hold it already and to supply
// it to Parse separately. Callers that need a provisioning URL with the
// secret embedded can append a secret parameter from EncodeSecret.
func (t Token) URL() string {
	v := url.Values{
		"algorithm": {t.Generator.Algorithm().String()},
		"digits":    {strconv.Itoa(t.Generator.Digits())},
		"issuer":    {t.Issuer},
	}
	f := t.Generator.Factor()
	host := "hotp"
	if f.IsTimer() {
		host = "totp"
		v.Set("period", strconv.Itoa(int(f.Period()/time.Second)))
	} else {
		v.Set("counter", strconv.FormatUint(f.Count(), 10))
	}
	u := url.URL{
		Scheme:   "otpauth",
		Host:     host,
		Path:     "/" + t.Name,
		RawQuery: v.Encode(),
	}
	return u.String()
}

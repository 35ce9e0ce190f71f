package base32_test

import (
	"bytes"
	"errors"
	mrand "math/rand"
	"testing"

	"github.com/finchsec/otpkit/internal/base32"
)

func TestKnownVectors(t *testing.T) {
	// The RFC 4648 §10 test vectors.
	tests := []struct {
		raw, enc string
	}{
		{"", ""},
		{"f", "MY======"},
		{"fo", "MZXQ===="},
		{"foo", "MZXW6==="},
		{"foob", "MZXW6YQ="},
		{"fooba", "MZXW6YTB"},
		{"foobar", "MZXW6YTBOI======"},
	}
	for _, test := range tests {
		if got := base32.Encode([]byte(test.raw)); got != test.enc {
			t.Errorf("Encode(%q): got %q, want %q", test.raw, got, test.enc)
		}
		if got := base32.Decode(test.enc); string(got) != test.raw {
			t.Errorf("Decode(%q): got %q, want %q", test.enc, got, test.raw)
		}
		if got, err := base32.DecodeStrict(test.enc); err != nil || string(got) != test.raw {
			t.Errorf("DecodeStrict(%q): got (%q, %v), want (%q, nil)", test.enc, got, err, test.raw)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := mrand.New(mrand.NewSource(20250825))
	for n := 0; n <= 64; n++ {
		buf := make([]byte, n)
		rng.Read(buf)

		enc := base32.Encode(buf)
		if n > 0 && len(enc)%8 != 0 {
			t.Errorf("Encode(%d bytes): length %d is not a multiple of 8", n, len(enc))
		}
		if got := base32.Decode(enc); !bytes.Equal(got, buf) {
			t.Errorf("Decode(Encode(...)) length %d: got %x, want %x", n, got, buf)
		}
	}
}

func TestPartialGroups(t *testing.T) {
	// A trailing group of k symbols must produce exactly the canonical number
	// of bytes, with unused symbol slots reading as zero.
	tests := []struct {
		in   string
		want string
	}{
		{"M", ""},           // 1 symbol: no full byte
		{"MZ", "f"},         // 2 symbols: 1 byte
		{"MZX", "f"},        // 3 symbols: still 1 byte
		{"MZXW", "fo"},      // 4 symbols: 2 bytes
		{"MZXW6", "foo"},    // 5 symbols: 3 bytes
		{"MZXW6Y", "foo"},   // 6 symbols: still 3 bytes
		{"MZXW6YQ", "foob"}, // 7 symbols: 4 bytes
	}
	for _, test := range tests {
		if got := base32.Decode(test.in); string(got) != test.want {
			t.Errorf("Decode(%q): got %q, want %q", test.in, got, test.want)
		}
	}
}

func TestLenientDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"mzxw6", "foo"},         // lowercase
		{"MZ XW-6", "foo"},       // separators skipped
		{"M=ZXW=6=", "foo"},      // padding stripped wherever it occurs
		{"MZXW6!!!", "foo"},      // junk skipped
		{"0MZ1XW869", "foo"},     // digits outside 2-7 are not in the alphabet
		{"\x00\xffMZXW6", "foo"}, // arbitrary bytes
		{"0189", ""},             // nothing but junk
	}
	for _, test := range tests {
		if got := base32.Decode(test.in); string(got) != test.want {
			t.Errorf("Decode(%q): got %q, want %q", test.in, got, test.want)
		}
	}
}

func TestStrictDecode(t *testing.T) {
	t.Run("Accepts", func(t *testing.T) {
		for _, in := range []string{"", "mzxw6", "MZXW6===", "MZXW6"} {
			if got, err := base32.DecodeStrict(in); err != nil {
				t.Errorf("DecodeStrict(%q): unexpected error: %v (got %q)", in, err, got)
			}
		}
	})
	t.Run("Rejects", func(t *testing.T) {
		for _, in := range []string{"MZ XW6", "MZXW-6", "MZXW61", "MZXW68", "secret!"} {
			got, err := base32.DecodeStrict(in)
			if !errors.Is(err, base32.ErrInvalidByte) {
				t.Errorf("DecodeStrict(%q): got (%q, %v), want ErrInvalidByte", in, got, err)
			}
		}
	})
}

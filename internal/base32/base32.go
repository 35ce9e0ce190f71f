// Package base32 implements the RFC 4648 Base32 encoding used to carry OTP
// secrets as text.
//
// It differs from the standard library codec in two ways that matter for key
// material pasted by hand: decoding is case-insensitive and treats padding as
// optional wherever it appears, and the lenient Decode skips characters
// outside the alphabet entirely (spaces, dashes, and similar separators),
// matching the behavior of common authenticator imports. DecodeStrict rejects
// such characters instead, for contexts where a corrupted secret must fail
// loudly rather than decode to a different key.
package base32

import (
	"errors"
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

const invalid = 0xff

// decodeMap maps a byte of input to its 5-bit symbol value, or invalid.
// Lower and upper case letters map alike.
var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
		m[alphabet[i]|0x20] = byte(i) // lowercase letter
	}
	return
}()

// partialBytes gives the number of decoded bytes produced by a trailing
// partial group of k symbols, 0 <= k < 8.
var partialBytes = [8]int{0, 0, 1, 1, 2, 3, 3, 4}

// partialSyms gives the number of symbols emitted for a trailing partial
// group of j bytes, 1 <= j <= 4 (a full group of 5 emits 8).
var partialSyms = [5]int{0, 2, 4, 5, 7}

// ErrInvalidByte is reported by DecodeStrict for input containing a character
// outside the Base32 alphabet.
var ErrInvalidByte = errors.New("invalid base32 character")

// Encode returns the Base32 encoding of src, padded with '=' to a multiple of
// eight characters. The empty input encodes to the empty string.
func Encode(src []byte) string {
	var sb strings.Builder
	sb.Grow((len(src) + 4) / 5 * 8)

	for len(src) > 0 {
		var g [5]byte
		n := copy(g[:], src)
		src = src[n:]

		syms := [8]byte{
			g[0] >> 3,
			g[0]<<2&0x1f | g[1]>>6,
			g[1] >> 1 & 0x1f,
			g[1]<<4&0x1f | g[2]>>4,
			g[2]<<1&0x1f | g[3]>>7,
			g[3] >> 2 & 0x1f,
			g[3]<<3&0x1f | g[4]>>5,
			g[4] & 0x1f,
		}
		ns := 8
		if n < 5 {
			ns = partialSyms[n]
		}
		for _, s := range syms[:ns] {
			sb.WriteByte(alphabet[s])
		}
		for ; ns < 8; ns++ {
			sb.WriteByte('=')
		}
	}
	return sb.String()
}

// Decode returns the bytes encoded by s. Padding is optional, letter case is
// ignored, and characters outside the alphabet are skipped. Decode does not
// fail; for input that must be well-formed, use DecodeStrict.
func Decode(s string) []byte {
	out, _ := decode(s, false)
	return out
}

// DecodeStrict returns the bytes encoded by s, or an error if s contains any
// character outside the Base32 alphabet. Padding and letter case are treated
// as in Decode.
func DecodeStrict(s string) ([]byte, error) { return decode(s, true) }

func decode(s string, strict bool) ([]byte, error) {
	syms := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			continue
		}
		v := decodeMap[c]
		if v == invalid {
			if strict {
				return nil, fmt.Errorf("%w: %q", ErrInvalidByte, c)
			}
			continue
		}
		syms = append(syms, v)
	}

	out := make([]byte, 0, len(syms)*5/8)
	for len(syms) >= 8 {
		b := unpack(syms[:8])
		out = append(out, b[:]...)
		syms = syms[8:]
	}
	if len(syms) > 0 {
		var g [8]byte // unused trailing symbol slots stay zero
		copy(g[:], syms)
		full := unpack(g[:])
		out = append(out, full[:partialBytes[len(syms)]]...)
	}
	return out, nil
}

// unpack converts a group of eight 5-bit symbols to five bytes.
func unpack(g []byte) [5]byte {
	return [5]byte{
		g[0]<<3 | g[1]>>2,
		g[1]<<6 | g[2]<<1 | g[3]>>4,
		g[3]<<4 | g[4]>>1,
		g[4]<<7 | g[5]<<2 | g[6]>>3,
		g[6]<<5 | g[7],
	}
}

// Package felt converts between short UTF-8 strings and their felt (field
// element) integer representation.
//
// A short string packs the hex rendering of each character's scalar value
// into a single big integer. Decoding renders the integer back to hex and
// reads it two digits per byte.
package felt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxShortStringLength is the maximum number of characters a felt can hold.
const MaxShortStringLength = 31

var (
	// ErrInputTooLong is returned by Encode for strings longer than
	// MaxShortStringLength characters.
	ErrInputTooLong = errors.New("unable to convert to felt: string greater than 31 chars")

	// ErrHexDecode is returned by Decode when a felt's hex rendering cannot
	// be split into whole bytes.
	ErrHexDecode = errors.New("Failed to decode hex string") //nolint:staticcheck // user-facing message

	// ErrInvalidFelt is returned by Parse for literals that are not integers.
	ErrInvalidFelt = errors.New("invalid felt")
)

// DecodeError reports which element of a Decode batch failed. Its message is
// the one of ErrHexDecode so callers can print it unchanged.
type DecodeError struct {
	Index int
	Hex   string
	Err   error
}

func (e *DecodeError) Error() string {
	return ErrHexDecode.Error()
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrHexDecode, e.Err}
}

// Len returns the character count checked against MaxShortStringLength.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Encode converts s into its felt representation.
//
// Each character contributes its scalar value in lowercase hex without zero
// padding. Only characters in U+0010..U+007F survive a round trip through
// Decode: odd-width values shift the byte alignment and wider values are not
// their own UTF-8 bytes. Use EncodePadded when that matters.
func Encode(s string) (*big.Int, error) {
	return encode(s, false)
}

// EncodePadded is like Encode but packs the UTF-8 bytes of every character,
// each zero-padded to two hex digits, which is what Decode reads back. The
// integer drops the leading zero of the first byte when it is below 0x10, so
// read it back with DecodePadded. Leading NUL characters are lost.
func EncodePadded(s string) (*big.Int, error) {
	return encode(s, true)
}

// CheckLength returns ErrInputTooLong when s has more characters than a felt
// can hold.
func CheckLength(s string) error {
	if Len(s) > MaxShortStringLength {
		return ErrInputTooLong
	}
	return nil
}

func encode(s string, pad bool) (*big.Int, error) {
	if err := CheckLength(s); err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(fragment(r, pad))
	}

	f := new(big.Int)
	if sb.Len() == 0 {
		return f, nil
	}
	if _, ok := f.SetString(sb.String(), 16); !ok {
		// unreachable: fragments are always valid hex digits
		return nil, fmt.Errorf("%w: %q", ErrInvalidFelt, sb.String())
	}
	return f, nil
}

func fragment(r rune, pad bool) string {
	if pad {
		return hex.EncodeToString(utf8.AppendRune(nil, r))
	}
	return strconv.FormatInt(int64(r), 16)
}

// Fragments returns the per-character hex fragments that Encode, or
// EncodePadded when pad is set, concatenates.
func Fragments(s string, pad bool) []string {
	out := make([]string, 0, Len(s))
	for _, r := range s {
		out = append(out, fragment(r, pad))
	}
	return out
}

// Decode converts felts back into a string, concatenating the text of each
// element in order. Invalid UTF-8 is replaced with U+FFFD. If any element's
// hex rendering has an odd length the whole batch fails with a *DecodeError.
func Decode(felts []*big.Int) (string, error) {
	return decode(felts, false)
}

// DecodePadded is like Decode but restores the leading zero the integer drops
// from odd-length hex renderings. It is the inverse of EncodePadded.
func DecodePadded(felts []*big.Int) (string, error) {
	return decode(felts, true)
}

func decode(felts []*big.Int, pad bool) (string, error) {
	var acc strings.Builder
	for i, f := range felts {
		h := f.Text(16)
		if pad && f.Sign() >= 0 && len(h)%2 == 1 {
			h = "0" + h
		}
		b, err := hex.DecodeString(h)
		if err != nil {
			return "", &DecodeError{Index: i, Hex: h, Err: err}
		}
		acc.WriteString(lossyUTF8(b))
	}
	return acc.String(), nil
}

func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// Parse reads a felt literal given on the command line. Decimal literals are
// the default and may carry a sign; a 0x or 0X prefix selects hexadecimal,
// which must be followed directly by digits.
func Parse(s string) (*big.Int, error) {
	lit, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		lit, base = s[2:], 16
		if strings.HasPrefix(lit, "+") || strings.HasPrefix(lit, "-") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFelt, s)
		}
	}

	f, ok := new(big.Int).SetString(lit, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFelt, s)
	}
	return f, nil
}

// ParseAll parses every literal in order, stopping at the first failure.
func ParseAll(args []string) ([]*big.Int, error) {
	felts := make([]*big.Int, 0, len(args))
	for _, a := range args {
		f, err := Parse(a)
		if err != nil {
			return nil, err
		}
		felts = append(felts, f)
	}
	return felts, nil
}

// Hex renders f as 0x-prefixed lowercase hex.
func Hex(f *big.Int) string {
	if f.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(f).Text(16)
	}
	return "0x" + f.Text(16)
}

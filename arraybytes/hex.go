// Package arraybytes converts between byte buffers, fixed-size arrays and
// their hexadecimal text form.
//
// Hex text may carry an optional lowercase "0x" prefix; digits are accepted
// in either case and always produced in lowercase. Every checked function
// has an Unchecked twin that skips validation and panics when its
// precondition does not hold.
package arraybytes

import "fmt"

// Hex is the set of types hex text can be passed as.
type Hex interface {
	~string | ~[]byte
}

const hexDigits = "0123456789abcdef"

// IsHexDigit reports whether c is one of 0-9, a-f or A-F. Bytes that only
// become digits after setting the 0x20 bit, such as 0x10 to 0x19, are
// rejected.
func IsHexDigit(c byte) bool {
	_, ok := HexDigitValue(c)
	return ok
}

// HexDigitValue maps a hex digit to its 4-bit value.
func HexDigitValue(c byte) (byte, bool) {
	if '0' <= c && c <= '9' {
		return c - '0', true
	}
	// Setting 0x20 lowercases A-F and leaves a-f alone.
	c |= 0x20
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 10, true
	}
	return 0, false
}

// Has0xPrefix reports whether h starts with a lowercase "0x".
func Has0xPrefix[H Hex](h H) bool {
	return len(h) >= 2 && h[0] == '0' && h[1] == 'x'
}

// Strip0x removes a leading "0x". Only the lowercase form is a prefix.
func Strip0x[H Hex](h H) H {
	digits, _ := split0x(h)
	return digits
}

// split0x returns the digits after an optional prefix and the offset at
// which they start in h.
func split0x[H Hex](h H) (H, int) {
	if Has0xPrefix(h) {
		return h[2:], 2
	}
	return h, 0
}

// DecodeByte combines two hex digits into one byte. The indices are only
// used to report which digit is invalid.
func DecodeByte(hi byte, hiIndex int, lo byte, loIndex int) (byte, error) {
	h, ok := HexDigitValue(hi)
	if !ok {
		return 0, &InvalidCharacterError{Character: hi, Index: hiIndex}
	}
	l, ok := HexDigitValue(lo)
	if !ok {
		return 0, &InvalidCharacterError{Character: lo, Index: loIndex}
	}
	return h<<4 | l, nil
}

// DecodeByteUnchecked is DecodeByte for digits the caller already
// validated. It panics on an invalid digit.
func DecodeByteUnchecked(hi, lo byte) byte {
	h, ok1 := HexDigitValue(hi)
	l, ok2 := HexDigitValue(lo)
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("arraybytes: invalid hex digits %q %q", hi, lo))
	}
	return h<<4 | l
}

// validateDigits checks every byte of digits, reporting indices shifted by
// offset so they point into the original input.
func validateDigits[H Hex](digits H, offset int) error {
	for i := 0; i < len(digits); i++ {
		if !IsHexDigit(digits[i]) {
			return &InvalidCharacterError{Character: digits[i], Index: offset + i}
		}
	}
	return nil
}

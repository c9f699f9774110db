package arraybytes

import (
	"strconv"
	"unsafe"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// ParseHex parses hex text with an optional 0x prefix into any integer
// type. Digit counts may be odd. Malformed or out of range input yields a
// *ParseIntError wrapping the *strconv.NumError.
//
//	v, err := arraybytes.ParseHex[uint32]("0x522") // 1314
func ParseHex[T constraints.Integer](h string) (T, error) {
	digits := Strip0x(h)
	bitSize := int(unsafe.Sizeof(T(0))) * 8

	if ^T(0) < 0 {
		v, err := strconv.ParseInt(digits, 16, bitSize)
		if err != nil {
			return 0, &ParseIntError{Err: err}
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(digits, 16, bitSize)
	if err != nil {
		return 0, &ParseIntError{Err: err}
	}
	return T(v), nil
}

// MustParseHex is ParseHex that panics on error. Meant for constants.
func MustParseHex[T constraints.Integer](h string) T {
	return must(ParseHex[T](h))
}

// ParseHexUint256 parses hex text into a 256-bit unsigned integer. Unlike
// uint256.FromHex it accepts a missing prefix and leading zeros.
func ParseHexUint256(h string) (*uint256.Int, error) {
	const fn = "ParseHexUint256"

	digits := Strip0x(h)
	if len(digits) == 0 {
		return nil, &ParseIntError{Err: &strconv.NumError{Func: fn, Num: digits, Err: strconv.ErrSyntax}}
	}

	z := new(uint256.Int)
	for i := 0; i < len(digits); i++ {
		d, ok := HexDigitValue(digits[i])
		if !ok {
			return nil, &ParseIntError{Err: &strconv.NumError{Func: fn, Num: digits, Err: strconv.ErrSyntax}}
		}
		// The top nibble is about to be shifted out.
		if z[3]>>60 != 0 {
			return nil, &ParseIntError{Err: &strconv.NumError{Func: fn, Num: digits, Err: strconv.ErrRange}}
		}
		z.Lsh(z, 4)
		z[0] |= uint64(d)
	}
	return z, nil
}

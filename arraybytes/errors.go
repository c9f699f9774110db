package arraybytes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when the hex digit count (after the 0x
	// prefix is removed) is odd.
	ErrInvalidLength = errors.New("arraybytes: odd hex length")

	ErrInvalidCharacter = errors.New("arraybytes: invalid hex character")
	ErrMismatchedLength = errors.New("arraybytes: mismatched length")
	ErrParseInt         = errors.New("arraybytes: invalid hex number")
)

// InvalidCharacterError reports the first byte that is not a hex digit.
// Index is counted from the start of the original input, prefix included.
type InvalidCharacterError struct {
	Character byte
	Index     int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("arraybytes: invalid hex character %q at index %d", e.Character, e.Index)
}

func (e *InvalidCharacterError) Is(target error) bool { return target == ErrInvalidCharacter }

// MismatchedLengthError reports that the data does not fit the target
// array or slice, which requires exactly Expect elements.
type MismatchedLengthError struct {
	Expect int
}

func (e *MismatchedLengthError) Error() string {
	return fmt.Sprintf("arraybytes: mismatched length, expect %d", e.Expect)
}

func (e *MismatchedLengthError) Is(target error) bool { return target == ErrMismatchedLength }

// ParseIntError wraps the strconv failure of a numeric hex parse.
type ParseIntError struct {
	Err error
}

func (e *ParseIntError) Error() string {
	return "arraybytes: parse hex number: " + e.Err.Error()
}

func (e *ParseIntError) Unwrap() error { return e.Err }

func (e *ParseIntError) Is(target error) bool { return target == ErrParseInt }

// Package jsonhex plugs the arraybytes conversions into json-iterator.
//
// Each function reads one JSON string from the iterator and converts it.
// Checked conversions report failures through the iterator's own error,
// carrying the offending text, so Unmarshal returns them like any other
// decoding error. The Unchecked variants panic on invalid input and are
// meant for documents whose hex fields are known to be well formed.
package jsonhex

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"

	"github.com/Abdullah1738/array-bytes/arraybytes"
)

func reportInvalid(iter *jsoniter.Iterator, op, s string) {
	iter.ReportError(op, fmt.Sprintf("Invalid hex str `%s`", s))
}

// readHex reads the next value as a string. The iterator reports non-string
// tokens itself.
func readHex(iter *jsoniter.Iterator) (string, bool) {
	s := iter.ReadString()
	return s, iter.Error == nil
}

// Bytes decodes the hex string into a new buffer.
func Bytes(iter *jsoniter.Iterator) []byte {
	s, ok := readHex(iter)
	if !ok {
		return nil
	}
	b, err := arraybytes.HexToBytes(s)
	if err != nil {
		reportInvalid(iter, "jsonhex.Bytes", s)
		return nil
	}
	return b
}

// Num parses the hex string as an integer of type T.
func Num[T constraints.Integer](iter *jsoniter.Iterator) T {
	s, ok := readHex(iter)
	if !ok {
		return 0
	}
	v, err := arraybytes.ParseHex[T](s)
	if err != nil {
		reportInvalid(iter, "jsonhex.Num", s)
		return 0
	}
	return v
}

// Into decodes the hex string and passes the buffer to conv.
func Into[V any](iter *jsoniter.Iterator, conv func([]byte) V) V {
	var zero V
	s, ok := readHex(iter)
	if !ok {
		return zero
	}
	v, err := arraybytes.HexInto(s, conv)
	if err != nil {
		reportInvalid(iter, "jsonhex.Into", s)
		return zero
	}
	return v
}

// IntoUnchecked is Into that panics on invalid hex.
func IntoUnchecked[V any](iter *jsoniter.Iterator, conv func([]byte) V) V {
	s, ok := readHex(iter)
	if !ok {
		var zero V
		return zero
	}
	return arraybytes.HexIntoUnchecked(s, conv)
}

// NInto decodes the hex string into the array type taken by conv.
func NInto[A, V any](iter *jsoniter.Iterator, conv func(A) V) V {
	var zero V
	s, ok := readHex(iter)
	if !ok {
		return zero
	}
	v, err := arraybytes.HexNInto(s, conv)
	if err != nil {
		reportInvalid(iter, "jsonhex.NInto", s)
		return zero
	}
	return v
}

// NIntoUnchecked is NInto that panics on invalid hex or a length mismatch.
func NIntoUnchecked[A, V any](iter *jsoniter.Iterator, conv func(A) V) V {
	s, ok := readHex(iter)
	if !ok {
		var zero V
		return zero
	}
	return arraybytes.HexNIntoUnchecked(s, conv)
}

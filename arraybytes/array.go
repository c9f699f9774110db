package arraybytes

import (
	"fmt"
	"reflect"
	"unsafe"
)

// arrayLen returns the length of A, which must be an array type with
// element type T. Anything else is a programming error and panics.
func arrayLen[A, T any]() int {
	at, et := reflect.TypeFor[A](), reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Sprintf("arraybytes: %v is not an array of %v", at, et))
	}
	return at.Len()
}

// SliceToArray copies s into a new array of type A. It fails with
// *MismatchedLengthError unless len(s) equals the length of A.
//
//	a, err := arraybytes.SliceToArray[[8]byte](s)
func SliceToArray[A, T any](s []T) (A, error) {
	var a A
	n := arrayLen[A, T]()
	if len(s) != n {
		return a, &MismatchedLengthError{Expect: n}
	}
	// A is [n]T, checked above.
	copy(unsafe.Slice((*T)(unsafe.Pointer(&a)), n), s)
	return a, nil
}

// SliceToArrayUnchecked is SliceToArray that panics on a length mismatch.
func SliceToArrayUnchecked[A, T any](s []T) A {
	return must(SliceToArray[A](s))
}

// BufferToArray is SliceToArray for a buffer the caller hands over. The
// buffer must not be used after the call.
func BufferToArray[A, T any](buf []T) (A, error) {
	return SliceToArray[A](buf)
}

// BufferToArrayUnchecked is BufferToArray that panics on a length mismatch.
func BufferToArrayUnchecked[A, T any](buf []T) A {
	return must(BufferToArray[A](buf))
}

// SliceNInto narrows s to the array type taken by conv and converts it.
func SliceNInto[A, T, V any](s []T, conv func(A) V) (V, error) {
	a, err := SliceToArray[A](s)
	if err != nil {
		var zero V
		return zero, err
	}
	return conv(a), nil
}

// SliceNIntoUnchecked is SliceNInto that panics on a length mismatch.
func SliceNIntoUnchecked[A, T, V any](s []T, conv func(A) V) V {
	return conv(SliceToArrayUnchecked[A](s))
}

// SliceNTryInto is SliceNInto for conversions that can fail, such as
// decoding a curve point. Errors from conv are returned as is.
func SliceNTryInto[A, T, V any](s []T, conv func(A) (V, error)) (V, error) {
	a, err := SliceToArray[A](s)
	if err != nil {
		var zero V
		return zero, err
	}
	return conv(a)
}

// BufferNInto is SliceNInto for a buffer the caller hands over.
func BufferNInto[A, T, V any](buf []T, conv func(A) V) (V, error) {
	return SliceNInto(buf, conv)
}

// BufferNIntoUnchecked is BufferNInto that panics on a length mismatch.
func BufferNIntoUnchecked[A, T, V any](buf []T, conv func(A) V) V {
	return SliceNIntoUnchecked(buf, conv)
}

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

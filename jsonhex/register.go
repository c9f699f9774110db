package jsonhex

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"
)

// The decoders below only write the destination when decoding succeeded.

// BytesDecoder decodes a []byte field with Bytes.
func BytesDecoder() jsoniter.DecoderFunc {
	return func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if b := Bytes(iter); iter.Error == nil {
			*(*[]byte)(ptr) = b
		}
	}
}

// NumDecoder decodes an integer field of type T with Num.
func NumDecoder[T constraints.Integer]() jsoniter.DecoderFunc {
	return func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if v := Num[T](iter); iter.Error == nil {
			*(*T)(ptr) = v
		}
	}
}

// IntoDecoder decodes a field of type V with Into.
func IntoDecoder[V any](conv func([]byte) V) jsoniter.DecoderFunc {
	return func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if v := Into(iter, conv); iter.Error == nil {
			*(*V)(ptr) = v
		}
	}
}

// IntoUncheckedDecoder decodes with IntoUnchecked and panics on invalid hex.
func IntoUncheckedDecoder[V any](conv func([]byte) V) jsoniter.DecoderFunc {
	return func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if v := IntoUnchecked(iter, conv); iter.Error == nil {
			*(*V)(ptr) = v
		}
	}
}

// NIntoDecoder decodes a field of type V with NInto.
func NIntoDecoder[A, V any](conv func(A) V) jsoniter.DecoderFunc {
	return func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if v := NInto(iter, conv); iter.Error == nil {
			*(*V)(ptr) = v
		}
	}
}

// NIntoUncheckedDecoder decodes with NIntoUnchecked and panics on invalid
// hex or a length mismatch.
func NIntoUncheckedDecoder[A, V any](conv func(A) V) jsoniter.DecoderFunc {
	return func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if v := NIntoUnchecked(iter, conv); iter.Error == nil {
			*(*V)(ptr) = v
		}
	}
}

// RegisterField makes json-iterator decode the named field of v's struct
// type with fun. The decoder's Go type must match the field's type.
//
// Registration is global to json-iterator and must happen before the
// struct type is first decoded.
func RegisterField(v any, field string, fun jsoniter.DecoderFunc) {
	jsoniter.RegisterFieldDecoderFunc(typeName(v), field, fun)
}

// RegisterType makes json-iterator decode every value of v's type with fun.
func RegisterType(v any, fun jsoniter.DecoderFunc) {
	jsoniter.RegisterTypeDecoderFunc(typeName(v), fun)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

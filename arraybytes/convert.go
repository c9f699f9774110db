package arraybytes

// AppendHex appends the lowercase hex form of b to dst, high nibble first.
func AppendHex[B Hex](dst []byte, b B) []byte {
	for i := 0; i < len(b); i++ {
		dst = append(dst, hexDigits[b[i]>>4], hexDigits[b[i]&0x0f])
	}
	return dst
}

// BytesToHex returns prefix followed by two lowercase hex digits per byte.
// Pass "0x" or "" as the prefix.
func BytesToHex[B Hex](prefix string, b B) string {
	return string(AppendHex(append(make([]byte, 0, len(prefix)+2*len(b)), prefix...), b))
}

// HexToBytes decodes hex text with an optional 0x prefix.
//
// It returns ErrInvalidLength when the number of digits is odd and an
// *InvalidCharacterError for the first byte that is not a hex digit.
func HexToBytes[H Hex](h H) ([]byte, error) {
	digits, offset := split0x(h)
	if len(digits)%2 != 0 {
		return nil, ErrInvalidLength
	}

	out := make([]byte, len(digits)/2)
	for i := range out {
		b, err := DecodeByte(digits[2*i], offset+2*i, digits[2*i+1], offset+2*i+1)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// HexToBytesUnchecked is HexToBytes for text the caller already validated.
// It panics on an odd digit count or an invalid digit.
func HexToBytesUnchecked[H Hex](h H) []byte {
	digits := Strip0x(h)
	if len(digits)%2 != 0 {
		panic(ErrInvalidLength)
	}
	out := make([]byte, len(digits)/2)
	decodeUnchecked(out, digits)
	return out
}

// HexToSlice decodes h into out, which must be exactly as long as the
// decoded data, and returns out.
//
// All checks run before the first write: on error out is left untouched.
// A length mismatch is reported as *MismatchedLengthError with Expect set
// to len(out).
func HexToSlice[H Hex](h H, out []byte) ([]byte, error) {
	digits, offset := split0x(h)
	if len(digits)%2 != 0 {
		return nil, ErrInvalidLength
	}
	if len(digits)/2 != len(out) {
		return nil, &MismatchedLengthError{Expect: len(out)}
	}
	if err := validateDigits(digits, offset); err != nil {
		return nil, err
	}
	decodeUnchecked(out, digits)
	return out, nil
}

// HexToSliceUnchecked is HexToSlice for text the caller already validated.
// It panics when the decoded length differs from len(out) or on an invalid
// digit, which may leave out partly written.
func HexToSliceUnchecked[H Hex](h H, out []byte) []byte {
	digits := Strip0x(h)
	if len(digits) != 2*len(out) {
		panic(&MismatchedLengthError{Expect: len(out)})
	}
	decodeUnchecked(out, digits)
	return out
}

func decodeUnchecked[H Hex](out []byte, digits H) {
	for i := range out {
		out[i] = DecodeByteUnchecked(digits[2*i], digits[2*i+1])
	}
}

// HexToArray decodes h into the array type A, e.g.
//
//	key, err := arraybytes.HexToArray[[32]byte](s)
func HexToArray[A any, H Hex](h H) (A, error) {
	b, err := HexToBytes(h)
	if err != nil {
		var zero A
		return zero, err
	}
	return BufferToArray[A](b)
}

// HexToArrayUnchecked is HexToArray that panics on any error.
func HexToArrayUnchecked[A any, H Hex](h H) A {
	return BufferToArrayUnchecked[A](HexToBytesUnchecked(h))
}

// HexInto decodes h and hands the buffer to conv.
func HexInto[V any, H Hex](h H, conv func([]byte) V) (V, error) {
	b, err := HexToBytes(h)
	if err != nil {
		var zero V
		return zero, err
	}
	return conv(b), nil
}

// HexIntoUnchecked is HexInto that panics on any error.
func HexIntoUnchecked[V any, H Hex](h H, conv func([]byte) V) V {
	return conv(HexToBytesUnchecked(h))
}

// HexNInto decodes h into the array type taken by conv and converts it.
func HexNInto[A, V any, H Hex](h H, conv func(A) V) (V, error) {
	a, err := HexToArray[A](h)
	if err != nil {
		var zero V
		return zero, err
	}
	return conv(a), nil
}

// HexNIntoUnchecked is HexNInto that panics on any error.
func HexNIntoUnchecked[A, V any, H Hex](h H, conv func(A) V) V {
	return conv(HexToArrayUnchecked[A](h))
}

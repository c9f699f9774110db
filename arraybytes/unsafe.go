package arraybytes

import "unsafe"

// HexBytesToHexStr checks that b holds hex text (optional 0x prefix, then
// only hex digits) and returns it as a string sharing b's memory.
//
// The digit count is not checked. Error indices include the prefix. Since
// no copy is made, b must not be modified while the string is in use.
func HexBytesToHexStr(b []byte) (string, error) {
	digits, offset := split0x(b)
	if err := validateDigits(digits, offset); err != nil {
		return "", err
	}
	return HexBytesToHexStrUnchecked(b), nil
}

// HexBytesToHexStrUnchecked reinterprets b as a string without copying or
// validating it.
//
// Unsafe: the caller guarantees b is already validated hex text and is
// never modified afterwards. Breaking either condition breaks the
// immutability of the returned string.
func HexBytesToHexStrUnchecked(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Package primitives defines fixed-size byte types that render as 0x hex
// text and parse back through the arraybytes conversions.
package primitives

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/Abdullah1738/array-bytes/arraybytes"
)

type H160 [20]byte

func (h H160) Hex() string                   { return arraybytes.BytesToHex("0x", h[:]) }
func (h H160) String() string                { return h.Hex() }
func (h H160) Bytes() []byte                 { return h[:] }
func (h H160) MarshalText() ([]byte, error)  { return appendText(h[:]), nil }
func (h *H160) UnmarshalText(b []byte) error { return unmarshalText(h, b, "H160") }

func ParseH160(s string) (H160, error) { return parseFixed[H160](s, "H160") }

type H256 [32]byte

func (h H256) Hex() string                   { return arraybytes.BytesToHex("0x", h[:]) }
func (h H256) String() string                { return h.Hex() }
func (h H256) Bytes() []byte                 { return h[:] }
func (h H256) MarshalText() ([]byte, error)  { return appendText(h[:]), nil }
func (h *H256) UnmarshalText(b []byte) error { return unmarshalText(h, b, "H256") }

func ParseH256(s string) (H256, error) { return parseFixed[H256](s, "H256") }

type H512 [64]byte

func (h H512) Hex() string                   { return arraybytes.BytesToHex("0x", h[:]) }
func (h H512) String() string                { return h.Hex() }
func (h H512) Bytes() []byte                 { return h[:] }
func (h H512) MarshalText() ([]byte, error)  { return appendText(h[:]), nil }
func (h *H512) UnmarshalText(b []byte) error { return unmarshalText(h, b, "H512") }

func ParseH512(s string) (H512, error) { return parseFixed[H512](s, "H512") }

// Keccak256 hashes the concatenation of data with legacy Keccak-256, the
// variant Ethereum uses.
func Keccak256(data ...[]byte) H256 {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	var h H256
	d.Sum(h[:0])
	return h
}

func appendText(b []byte) []byte {
	return arraybytes.AppendHex(append(make([]byte, 0, 2+2*len(b)), "0x"...), b)
}

func parseFixed[A any, H arraybytes.Hex](h H, name string) (A, error) {
	a, err := arraybytes.HexToArray[A](h)
	if err != nil {
		return a, fmt.Errorf("primitives: parse %s: %w", name, err)
	}
	return a, nil
}

func unmarshalText[A any](dst *A, text []byte, name string) error {
	a, err := parseFixed[A](text, name)
	if err != nil {
		return err
	}
	*dst = a
	return nil
}

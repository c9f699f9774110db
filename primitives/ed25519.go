package primitives

import (
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"

	"github.com/Abdullah1738/array-bytes/arraybytes"
)

var (
	ErrInvalidPubkey = errors.New("primitives: invalid pubkey")
	ErrNotOnCurve    = errors.New("primitives: pubkey is not on the curve")
)

// Ed25519Pubkey is a 32-byte compressed Edwards point.
type Ed25519Pubkey [32]byte

// ParseEd25519Pubkey accepts either 64 hex digits, optionally 0x prefixed,
// or the base58 form used by Solana.
func ParseEd25519Pubkey(s string) (Ed25519Pubkey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ed25519Pubkey{}, ErrInvalidPubkey
	}

	var (
		raw []byte
		err error
	)
	if arraybytes.Has0xPrefix(s) || len(s) == 64 {
		raw, err = arraybytes.HexToBytes(s)
	} else {
		raw, err = base58.Decode(s)
	}
	if err != nil {
		return Ed25519Pubkey{}, fmt.Errorf("%w: %w", ErrInvalidPubkey, err)
	}

	k, err := arraybytes.SliceNTryInto(raw, newEd25519Pubkey)
	if err != nil && !errors.Is(err, ErrNotOnCurve) {
		return Ed25519Pubkey{}, fmt.Errorf("%w: %w", ErrInvalidPubkey, err)
	}
	return k, err
}

func newEd25519Pubkey(b [32]byte) (Ed25519Pubkey, error) {
	if !isOnCurve(b) {
		return Ed25519Pubkey{}, ErrNotOnCurve
	}
	return Ed25519Pubkey(b), nil
}

func isOnCurve(b [32]byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b[:])
	return err == nil
}

func (k Ed25519Pubkey) Base58() string { return base58.Encode(k[:]) }

func (k Ed25519Pubkey) Hex() string { return arraybytes.BytesToHex("0x", k[:]) }

func (k Ed25519Pubkey) String() string { return k.Base58() }

func (k Ed25519Pubkey) Point() (*edwards25519.Point, error) {
	return new(edwards25519.Point).SetBytes(k[:])
}

func (k Ed25519Pubkey) MarshalText() ([]byte, error) { return appendText(k[:]), nil }

func (k *Ed25519Pubkey) UnmarshalText(b []byte) error {
	v, err := ParseEd25519Pubkey(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

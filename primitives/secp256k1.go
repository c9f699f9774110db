package primitives

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/Abdullah1738/array-bytes/arraybytes"
)

// Secp256k1Pubkey is a compressed SEC1 public key.
type Secp256k1Pubkey [33]byte

// ParseSecp256k1Pubkey accepts a compressed (33 byte) or uncompressed
// (65 byte) key in hex and returns its compressed form.
func ParseSecp256k1Pubkey(s string) (Secp256k1Pubkey, error) {
	raw, err := arraybytes.HexToBytes(strings.TrimSpace(s))
	if err != nil {
		return Secp256k1Pubkey{}, fmt.Errorf("%w: %w", ErrInvalidPubkey, err)
	}
	if len(raw) == secp256k1.PubKeyBytesLenUncompressed {
		pk, err := btcec.ParsePubKey(raw)
		if err != nil {
			return Secp256k1Pubkey{}, fmt.Errorf("%w: %w", ErrInvalidPubkey, err)
		}
		return Secp256k1PubkeyFrom(pk), nil
	}

	k, err := arraybytes.SliceNTryInto(raw, newSecp256k1Pubkey)
	if err != nil {
		return Secp256k1Pubkey{}, fmt.Errorf("%w: %w", ErrInvalidPubkey, err)
	}
	return k, nil
}

func newSecp256k1Pubkey(b [33]byte) (Secp256k1Pubkey, error) {
	if _, err := btcec.ParsePubKey(b[:]); err != nil {
		return Secp256k1Pubkey{}, err
	}
	return Secp256k1Pubkey(b), nil
}

func Secp256k1PubkeyFrom(pk *btcec.PublicKey) Secp256k1Pubkey {
	return Secp256k1Pubkey(pk.SerializeCompressed())
}

func (k Secp256k1Pubkey) PublicKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(k[:])
}

func (k Secp256k1Pubkey) Hex() string { return arraybytes.BytesToHex("0x", k[:]) }

func (k Secp256k1Pubkey) String() string { return k.Hex() }

func (k Secp256k1Pubkey) MarshalText() ([]byte, error) { return appendText(k[:]), nil }

func (k *Secp256k1Pubkey) UnmarshalText(b []byte) error {
	v, err := ParseSecp256k1Pubkey(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

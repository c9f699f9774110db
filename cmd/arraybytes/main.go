package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/constraints"

	"github.com/Abdullah1738/array-bytes/arraybytes"
	"github.com/Abdullah1738/array-bytes/primitives"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout io.Writer) error {
	if len(argv) == 0 || argv[0] == "-h" || argv[0] == "--help" || argv[0] == "help" {
		printUsage(stdout)
		return nil
	}

	switch argv[0] {
	case "encode":
		return cmdEncode(argv[1:], stdin, stdout)
	case "decode":
		return cmdDecode(argv[1:], stdout)
	case "num":
		return cmdNum(argv[1:], stdout)
	case "check":
		return cmdCheck(argv[1:], stdout)
	case "pubkey":
		return cmdPubkey(argv[1:], stdout)
	default:
		return fmt.Errorf("unknown command: %s", argv[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "arraybytes: hex conversion tooling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  arraybytes encode [-prefix 0x] [-string <text>]")
	fmt.Fprintln(w, "  arraybytes decode [-len <n>] <hex>")
	fmt.Fprintln(w, "  arraybytes num -type <u8|u16|u32|u64|i8|i16|i32|i64|u256> <hex>")
	fmt.Fprintln(w, "  arraybytes check <hex>")
	fmt.Fprintln(w, "  arraybytes pubkey -kind <ed25519|secp256k1> <key>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  encode  Hex-encode -string, or stdin when it is not set.")
	fmt.Fprintln(w, "  decode  Write the decoded bytes to stdout. -len requires an exact byte length.")
	fmt.Fprintln(w, "  num     Print a hex number in decimal.")
	fmt.Fprintln(w, "  check   Validate hex text and print it back.")
	fmt.Fprintln(w, "  pubkey  Validate a public key and print its canonical forms.")
}

// oneArg parses argv with fs and returns its single positional argument.
func oneArg(fs *flag.FlagSet, argv []string) (string, error) {
	if err := fs.Parse(argv); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected 1 arg, got %d", fs.Name(), fs.NArg())
	}
	return fs.Arg(0), nil
}

func cmdEncode(argv []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		prefix string
		text   string
	)
	fs.StringVar(&prefix, "prefix", "0x", "Prefix for the output (e.g. 0x or empty)")
	fs.StringVar(&text, "string", "", "Text to encode instead of stdin")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if len(fs.Args()) != 0 {
		return fmt.Errorf("unexpected args: %v", fs.Args())
	}

	isSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "string" {
			isSet = true
		}
	})
	if isSet {
		_, err := fmt.Fprintln(stdout, arraybytes.BytesToHex(prefix, text))
		return err
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	_, err = fmt.Fprintln(stdout, arraybytes.BytesToHex(prefix, data))
	return err
}

func cmdDecode(argv []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var n int
	fs.IntVar(&n, "len", 0, "Required decoded length in bytes (0 accepts any)")
	h, err := oneArg(fs, argv)
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.New("decode: -len must be >= 0")
	}

	var out []byte
	if n > 0 {
		out, err = arraybytes.HexToSlice(h, make([]byte, n))
	} else {
		out, err = arraybytes.HexToBytes(h)
	}
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func cmdNum(argv []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("num", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var typ string
	fs.StringVar(&typ, "type", "u64", "Integer type: u8, u16, u32, u64, i8, i16, i32, i64 or u256")
	h, err := oneArg(fs, argv)
	if err != nil {
		return err
	}

	var s string
	switch typ {
	case "u8":
		s, err = formatNum[uint8](h)
	case "u16":
		s, err = formatNum[uint16](h)
	case "u32":
		s, err = formatNum[uint32](h)
	case "u64":
		s, err = formatNum[uint64](h)
	case "i8":
		s, err = formatNum[int8](h)
	case "i16":
		s, err = formatNum[int16](h)
	case "i32":
		s, err = formatNum[int32](h)
	case "i64":
		s, err = formatNum[int64](h)
	case "u256":
		v, perr := arraybytes.ParseHexUint256(h)
		if perr != nil {
			return perr
		}
		s = v.Dec()
	default:
		return fmt.Errorf("num: unknown type: %s", typ)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, s)
	return err
}

func formatNum[T constraints.Integer](h string) (string, error) {
	v, err := arraybytes.ParseHex[T](h)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

func cmdCheck(argv []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	h, err := oneArg(fs, argv)
	if err != nil {
		return err
	}

	s, err := arraybytes.HexBytesToHexStr([]byte(h))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, s)
	return err
}

func cmdPubkey(argv []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("pubkey", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var kind string
	fs.StringVar(&kind, "kind", "ed25519", "Key kind: ed25519 or secp256k1")
	key, err := oneArg(fs, argv)
	if err != nil {
		return err
	}

	switch kind {
	case "ed25519":
		k, err := primitives.ParseEd25519Pubkey(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "hex:", k.Hex())
		fmt.Fprintln(stdout, "base58:", k.Base58())
		return nil
	case "secp256k1":
		k, err := primitives.ParseSecp256k1Pubkey(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "hex:", k.Hex())
		return nil
	default:
		return fmt.Errorf("pubkey: unknown kind: %s", kind)
	}
}

package jsonhex_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah1738/array-bytes/jsonhex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type wrappedBytes struct {
	LJF []byte `json:"ljf"`
}

type wrappedNums struct {
	A uint8  `json:"_0"`
	B uint8  `json:"_1"`
	C uint8  `json:"_2"`
	D uint32 `json:"_3"`
}

type wrappedVec struct {
	LJF ljfVec `json:"ljf"`
}

type wrappedArr struct {
	LJF ljfArr `json:"ljf"`
}

type wrappedArrUnchecked struct {
	LJF ljfArr `json:"ljf"`
}

type gasPrice uint64

func init() {
	jsonhex.RegisterField(wrappedBytes{}, "LJF", jsonhex.BytesDecoder())

	jsonhex.RegisterField(&wrappedNums{}, "A", jsonhex.NumDecoder[uint8]())
	jsonhex.RegisterField(&wrappedNums{}, "B", jsonhex.NumDecoder[uint8]())
	jsonhex.RegisterField(&wrappedNums{}, "C", jsonhex.NumDecoder[uint8]())
	jsonhex.RegisterField(&wrappedNums{}, "D", jsonhex.NumDecoder[uint32]())

	jsonhex.RegisterField(wrappedVec{}, "LJF", jsonhex.IntoDecoder(toVec))
	jsonhex.RegisterField(wrappedArr{}, "LJF", jsonhex.NIntoDecoder(toArr))
	jsonhex.RegisterField(wrappedArrUnchecked{}, "LJF", jsonhex.NIntoUncheckedDecoder(toArr))

	jsonhex.RegisterType(gasPrice(0), jsonhex.NumDecoder[gasPrice]())
}

func TestRegisterField_Bytes(t *testing.T) {
	var got wrappedBytes
	require.NoError(t, json.Unmarshal([]byte(`{"ljf":"`+ljfHex+`"}`), &got))
	require.Equal(t, wrappedBytes{LJF: []byte("Love Jane Forever")}, got)

	got = wrappedBytes{LJF: []byte{1}}
	err := json.Unmarshal([]byte(`{"ljf":"0xzz"}`), &got)
	require.ErrorContains(t, err, "Invalid hex str `0xzz`")
	require.Equal(t, []byte{1}, got.LJF)
}

func TestRegisterField_Nums(t *testing.T) {
	var got wrappedNums
	require.NoError(t, json.Unmarshal([]byte(`{"_0":"0x5","_1":"0x2","_2":"0x0","_3":"0x522"}`), &got))
	require.Equal(t, wrappedNums{A: 5, B: 2, C: 0, D: 1314}, got)

	err := json.Unmarshal([]byte(`{"_0":"0x100"}`), &got)
	require.ErrorContains(t, err, "Invalid hex str `0x100`")
}

func TestRegisterField_Into(t *testing.T) {
	var got wrappedVec
	require.NoError(t, json.Unmarshal([]byte(`{"ljf":"`+ljfHex+`"}`), &got))
	require.Equal(t, ljfVec("Love Jane Forever"), got.LJF)

	err := json.Unmarshal([]byte(`{"ljf":"0x4"}`), &got)
	require.ErrorContains(t, err, "Invalid hex str `0x4`")
}

func TestRegisterField_NInto(t *testing.T) {
	var got wrappedArr
	require.NoError(t, json.Unmarshal([]byte(`{"ljf":"`+ljfHex+`"}`), &got))
	require.Equal(t, ljfArr([]byte("Love Jane Forever")), got.LJF)

	err := json.Unmarshal([]byte(`{"ljf":"0x4c6f"}`), &got)
	require.ErrorContains(t, err, "Invalid hex str `0x4c6f`")
}

func TestRegisterField_NIntoUnchecked(t *testing.T) {
	var got wrappedArrUnchecked
	require.NoError(t, json.Unmarshal([]byte(`{"ljf":"`+ljfHex+`"}`), &got))
	require.Equal(t, ljfArr([]byte("Love Jane Forever")), got.LJF)

	require.Panics(t, func() { _ = json.Unmarshal([]byte(`{"ljf":"0x4c6f"}`), &got) })
}

func TestRegisterType(t *testing.T) {
	var prices []gasPrice
	require.NoError(t, json.Unmarshal([]byte(`["0x3b9aca00","0x1"]`), &prices))
	require.Equal(t, []gasPrice{1_000_000_000, 1}, prices)

	var p gasPrice
	err := json.Unmarshal([]byte(`"0xg"`), &p)
	require.ErrorContains(t, err, "Invalid hex str `0xg`")
}

package cbordoc

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

func roundTrip(t *testing.T, v value.Value) value.Value {
	t.Helper()
	data, err := Marshal(v)
	require.NoError(t, err, "marshal %s", v)
	again, err := Unmarshal(data)
	require.NoError(t, err, "unmarshal %s", v)
	return again
}

func TestRoundTrip_VariantIdentical(t *testing.T) {
	// Every variant has a native CBOR representation. Integer widths are not
	// carried on the wire, so integer cases use values already at their
	// narrowest width.
	cases := []value.Value{
		value.Bool(true),
		value.Bool(false),
		value.String("hello"),
		value.String(""),
		value.Bytes([]byte{0xde, 0xad, 0xbe, 0xef}),
		value.Float32(1.5),
		value.Float64(1.5),
		value.Float64(3.141592653589793),
		value.Uint8(0),
		value.Uint8(255),
		value.Uint16(256),
		value.Uint32(65536),
		value.Uint64(4294967296),
		value.Int8(-1),
		value.Int8(-128),
		value.Int16(-129),
		value.Int32(-32769),
		value.Int64(-2147483649),
		value.Time(time.Unix(1700000000, 123456789).UTC()),
		value.Seq(value.Uint8(1), value.String("two"), value.Bool(true)),
		value.Map(map[value.Key]value.Value{
			value.KeyFromString("name"): value.String("doc"),
			value.KeyFromString("n"):    value.Uint8(200),
		}),
	}
	for _, original := range cases {
		again := roundTrip(t, original)
		assert.True(t, original.Equal(again), "want %s, got %s", original, again)
	}
}

func TestRoundTrip_FloatWidthSurvives(t *testing.T) {
	// 1.5 is exactly representable at both widths; only the wire head byte
	// can tell them apart, and it must.
	v := roundTrip(t, value.Float32(1.5))
	assert.Equal(t, value.KindFloat32, v.Kind())

	v = roundTrip(t, value.Float64(1.5))
	assert.Equal(t, value.KindFloat64, v.Kind())
}

func TestRoundTrip_IntegerWidthNarrows(t *testing.T) {
	// A wide variant holding a small magnitude re-decodes at the narrowest
	// fitting width; the numeric value is preserved exactly.
	v := roundTrip(t, value.Uint64(200))
	assert.Equal(t, value.KindUint8, v.Kind())
	u, ok := v.AsUint64()
	require.True(t, ok)
	assert.Equal(t, uint64(200), u)

	v = roundTrip(t, value.Int64(-300))
	assert.Equal(t, value.KindInt16, v.Kind())
	i, ok := v.AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(-300), i)
}

func TestRoundTrip_IntegerMapKeys(t *testing.T) {
	original := value.Map(map[value.Key]value.Value{
		value.KeyFromInt(1):         value.String("one"),
		value.KeyFromString("name"): value.String("mixed"),
	})
	again := roundTrip(t, original)
	assert.True(t, original.Equal(again), "got %s", again)

	m, ok := again.AsMap()
	require.True(t, ok)
	_, hasInt := m[value.KeyFromInt(1)]
	assert.True(t, hasInt, "integer key form survives the wire")
}

func TestUnmarshal_Float16(t *testing.T) {
	// f9 3c00 is 1.0 at half precision; it lands on float32, the narrowest
	// variant the union carries.
	v, err := Unmarshal([]byte{0xf9, 0x3c, 0x00})
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat32, v.Kind())
	f, ok := v.AsFloat32()
	require.True(t, ok)
	assert.Equal(t, float32(1.0), f)
}

func TestUnmarshal_HugeNegativeIsUnsupported(t *testing.T) {
	// 3b ffffffffffffffff is -2^64, below what any signed variant holds.
	raw := []byte{0x3b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, err := Unmarshal(raw)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnsupportedType))
}

func TestUnmarshal_HugeUintMapKeyFallsBackToText(t *testing.T) {
	// a1 1b ffffffffffffffff 01 is {18446744073709551615: 1}; the key exceeds
	// the integer form's range and keeps only its string form.
	raw := []byte{0xa1, 0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	v, err := Unmarshal(raw)
	require.NoError(t, err)

	entry, ok := v.Entry(value.KeyFromString("18446744073709551615"))
	require.True(t, ok)
	assert.Equal(t, value.KindUint8, entry.Kind())
}

func TestParse_Errors(t *testing.T) {
	f := New(codec.Options{})

	_, err := f.Parse(nil)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyInput))

	// Truncated head.
	_, err = f.Parse([]byte{0x1a, 0x00})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidCBOR))

	// Two complete items at the root.
	_, err = f.Parse([]byte{0x01, 0x02})
	assert.True(t, stderrors.Is(err, errors.ErrMultipleValues))
}

func TestMarshal_WireBytes(t *testing.T) {
	data, err := Marshal(value.Uint8(200))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x18, 0xc8}, data)

	data, err = Marshal(value.Float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfa, 0x3f, 0xc0, 0x00, 0x00}, data)

	data, err = Marshal(value.Float64(1.5))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0x3f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, data)
}

func TestDecode_DepthLimit(t *testing.T) {
	// Five nested single-element arrays around a scalar: 81 81 81 81 81 01.
	doc := []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x01}

	_, err := codec.Decode(New(codec.Options{}), doc, codec.Options{MaxDepth: 3})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrDepthExceeded))

	_, err = codec.Decode(New(codec.Options{}), doc, codec.Options{MaxDepth: 6})
	assert.NoError(t, err)
}

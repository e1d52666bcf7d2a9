package codec_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/errors"

	_ "github.com/mcncl/anyval/internal/cbordoc"
	_ "github.com/mcncl/anyval/internal/jsondoc"
)

func TestNew_RegisteredFormats(t *testing.T) {
	for _, name := range []string{"json", "cbor"} {
		f, err := codec.New(name, codec.Options{})
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := codec.New("xml", codec.Options{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownFormat))
}

func TestNames(t *testing.T) {
	names := codec.Names()
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "cbor")
	assert.IsIncreasing(t, names)
}

func TestDecode_OneStep(t *testing.T) {
	f, err := codec.New("json", codec.Options{})
	require.NoError(t, err)

	v, err := codec.Decode(f, []byte(`[1, 2]`), codec.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
}

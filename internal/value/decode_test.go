package value

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/anyval/internal/errors"
)

// fakeNode is a scripted Node: every trial fails except the ones named in
// succeed, and each trial records its name so tests can assert ladder order.
type fakeNode struct {
	kind    NodeKind
	path    string
	succeed map[string]any
	trials  *[]string

	keys    []Key
	entries map[Key]*fakeNode
	items   []*fakeNode
}

func newScalar(succeed map[string]any) *fakeNode {
	return &fakeNode{kind: ScalarNode, path: "$", succeed: succeed, trials: &[]string{}}
}

func (f *fakeNode) NodeKind() NodeKind { return f.kind }
func (f *fakeNode) Path() string       { return f.path }

func (f *fakeNode) Len() int {
	if f.kind == OrderedNode {
		return len(f.items)
	}
	return len(f.keys)
}
func (f *fakeNode) Keys() []Key { return f.keys }
func (f *fakeNode) Entry(k Key) (Node, bool) {
	n, ok := f.entries[k]
	if !ok {
		return nil, false
	}
	return n, true
}
func (f *fakeNode) Index(i int) Node {
	if i < 0 || i >= len(f.items) {
		return nil
	}
	return f.items[i]
}

func (f *fakeNode) trial(name string) (any, error) {
	*f.trials = append(*f.trials, name)
	if v, ok := f.succeed[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%s: not a %s", f.path, name)
}

func (f *fakeNode) Bool() (bool, error) {
	v, err := f.trial("bool")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}
func (f *fakeNode) String() (string, error) {
	v, err := f.trial("string")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
func (f *fakeNode) Bytes() ([]byte, error) {
	v, err := f.trial("bytes")
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
func (f *fakeNode) Time() (time.Time, error) {
	v, err := f.trial("time")
	if err != nil {
		return time.Time{}, err
	}
	return v.(time.Time), nil
}
func (f *fakeNode) Float32() (float32, error) {
	v, err := f.trial("float32")
	if err != nil {
		return 0, err
	}
	return v.(float32), nil
}
func (f *fakeNode) Float64() (float64, error) {
	v, err := f.trial("float64")
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}
func (f *fakeNode) Int8() (int8, error) {
	v, err := f.trial("int8")
	if err != nil {
		return 0, err
	}
	return v.(int8), nil
}
func (f *fakeNode) Int16() (int16, error) {
	v, err := f.trial("int16")
	if err != nil {
		return 0, err
	}
	return v.(int16), nil
}
func (f *fakeNode) Int32() (int32, error) {
	v, err := f.trial("int32")
	if err != nil {
		return 0, err
	}
	return v.(int32), nil
}
func (f *fakeNode) Int64() (int64, error) {
	v, err := f.trial("int64")
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}
func (f *fakeNode) Int() (int, error) {
	v, err := f.trial("int")
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}
func (f *fakeNode) Uint8() (uint8, error) {
	v, err := f.trial("uint8")
	if err != nil {
		return 0, err
	}
	return v.(uint8), nil
}
func (f *fakeNode) Uint16() (uint16, error) {
	v, err := f.trial("uint16")
	if err != nil {
		return 0, err
	}
	return v.(uint16), nil
}
func (f *fakeNode) Uint32() (uint32, error) {
	v, err := f.trial("uint32")
	if err != nil {
		return 0, err
	}
	return v.(uint32), nil
}
func (f *fakeNode) Uint64() (uint64, error) {
	v, err := f.trial("uint64")
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}
func (f *fakeNode) Uint() (uint, error) {
	v, err := f.trial("uint")
	if err != nil {
		return 0, err
	}
	return v.(uint), nil
}

func TestDecode_TrialLadderOrder(t *testing.T) {
	// When every trial fails, the full ladder runs in its fixed order.
	n := newScalar(nil)
	_, err := Decode(n)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnsupportedType))

	want := []string{
		"time", "bytes", "bool",
		"float32", "float64",
		"uint8", "uint16", "uint32", "uint64", "uint",
		"int8", "int16", "int32", "int64", "int",
		"string",
	}
	assert.Equal(t, want, *n.trials)
}

func TestDecode_FirstSuccessfulTrialWins(t *testing.T) {
	// A node whose representation satisfies both uint8 and int8 lands on
	// uint8 because the unsigned ladder runs first.
	n := newScalar(map[string]any{"uint8": uint8(5), "int8": int8(5), "string": "5"})
	v, err := Decode(n)
	require.NoError(t, err)
	assert.Equal(t, KindUint8, v.Kind())
	assert.Equal(t, []string{"time", "bytes", "bool", "float32", "float64", "uint8"}, *n.trials,
		"trials stop at the first success")
}

func TestDecode_StringIsLastResort(t *testing.T) {
	n := newScalar(map[string]any{"string": "2024-01-01"})
	v, err := Decode(n)
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind())
}

func TestDecode_Containers(t *testing.T) {
	trials := []string{}
	inner := &fakeNode{kind: ScalarNode, path: "$.n[0]", succeed: map[string]any{"uint8": uint8(7)}, trials: &trials}
	seq := &fakeNode{kind: OrderedNode, path: "$.n", items: []*fakeNode{inner}, trials: &trials}
	k := KeyFromString("n")
	root := &fakeNode{
		kind:    KeyedNode,
		path:    "$",
		keys:    []Key{k},
		entries: map[Key]*fakeNode{k: seq},
		trials:  &trials,
	}

	v, err := Decode(root)
	require.NoError(t, err)
	want := Map(map[Key]Value{k: Seq(Uint8(7))})
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestDecode_UnsupportedLeafReportsPath(t *testing.T) {
	trials := []string{}
	bad := &fakeNode{kind: ScalarNode, path: "$.a[2]", trials: &trials}
	seq := &fakeNode{kind: OrderedNode, path: "$.a", items: []*fakeNode{bad}, trials: &trials}

	_, err := Decode(seq)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnsupportedType))

	var de *errors.DecodeError
	require.True(t, stderrors.As(err, &de))
	assert.Equal(t, "$.a[2]", de.Path)
}

func TestDecodeDepth_BudgetExceeded(t *testing.T) {
	trials := []string{}
	leaf := &fakeNode{kind: ScalarNode, path: "$.x.x", succeed: map[string]any{"bool": true}, trials: &trials}
	k := KeyFromString("x")
	mid := &fakeNode{kind: KeyedNode, path: "$.x", keys: []Key{k}, entries: map[Key]*fakeNode{k: leaf}, trials: &trials}
	root := &fakeNode{kind: KeyedNode, path: "$", keys: []Key{k}, entries: map[Key]*fakeNode{k: mid}, trials: &trials}

	_, err := DecodeDepth(root, 2)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrDepthExceeded))

	v, err := DecodeDepth(root, 3)
	require.NoError(t, err)
	assert.Equal(t, KindMap, v.Kind())
}

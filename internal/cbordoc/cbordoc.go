// Package cbordoc implements the rich-format codec over CBOR, which has
// native representations for binary, timestamps, distinct float widths and
// sign-aware integers. The wire head byte of each data item drives the trial
// decodes, so a 64-bit float never narrows to float32 on re-read; integer
// widths are range-driven because CBOR encodes integer values, not widths.
//
// The raw-bytes-per-node approach follows the gouroboros CBOR wrapper:
// hold the cbor.RawMessage, inspect the initial byte, then let
// fxamacker/cbor do the actual payload decoding.
package cbordoc

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	stderrors "errors"

	"github.com/fxamacker/cbor/v2"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

const (
	majorUint   = 0
	majorNegInt = 1
	majorBytes  = 2
	majorText   = 3
	majorArray  = 4
	majorMap    = 5

	headTagStdTime   = 0xc0 // tag 0, RFC 3339 text
	headTagEpochTime = 0xc1 // tag 1, epoch seconds
	headFalse        = 0xf4
	headTrue         = 0xf5
	headFloat16      = 0xf9
	headFloat32      = 0xfa
	headFloat64      = 0xfb
)

var (
	decMode cbor.DecMode
	encMode cbor.EncMode
)

func init() {
	var err error
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	encMode, err = cbor.EncOptions{
		Time:          cbor.TimeRFC3339Nano,
		TimeTag:       cbor.EncTagRequired,
		ShortestFloat: cbor.ShortestFloatNone,
		NaNConvert:    cbor.NaNConvertNone,
		InfConvert:    cbor.InfConvertNone,
	}.EncMode()
	if err != nil {
		panic(err)
	}

	codec.Register("cbor", func(o codec.Options) codec.Format {
		return &Format{opts: o}
	})
}

// Format is the CBOR codec.
type Format struct {
	opts codec.Options
}

// New returns a CBOR format with the given options.
func New(opts codec.Options) *Format {
	return &Format{opts: opts}
}

// Name implements codec.Format.
func (f *Format) Name() string { return "cbor" }

// Parse validates the document and builds the node tree. The input must
// hold exactly one well-formed CBOR data item.
func (f *Format) Parse(data []byte) (value.Node, error) {
	if len(data) == 0 {
		return nil, errors.NewParsingError("input is empty", errors.ErrEmptyInput)
	}

	var root cbor.RawMessage
	if err := decMode.Unmarshal(data, &root); err != nil {
		var extra *cbor.ExtraneousDataError
		if stderrors.As(err, &extra) {
			return nil, errors.NewParsingError("trailing data after first CBOR item", errors.ErrMultipleValues)
		}
		return nil, errors.NewParsingError("failed to parse CBOR", errors.ErrInvalidCBOR)
	}

	return buildNode(root, codec.RootPath)
}

// Unmarshal parses and decodes a CBOR document in one step.
func Unmarshal(data []byte) (value.Value, error) {
	return codec.Decode(New(codec.Options{}), data, codec.Options{})
}

type mapEntry struct {
	key   value.Key
	child *node
}

type node struct {
	codec.ScalarBase
	raw     cbor.RawMessage
	shape   value.NodeKind
	entries []mapEntry
	elems   []*node
}

// buildNode assembles the cursor tree eagerly: container members are split
// into their own raw items up front so trial decoding touches only scalars.
func buildNode(raw cbor.RawMessage, path string) (*node, error) {
	if len(raw) == 0 {
		return nil, errors.NewParsingError("empty CBOR item", errors.ErrMalformedContainer)
	}
	n := &node{ScalarBase: codec.ScalarBase{NodePath: path}, raw: raw}

	switch raw[0] >> 5 {
	case majorArray:
		n.shape = value.OrderedNode
		var elems []cbor.RawMessage
		if err := decMode.Unmarshal(raw, &elems); err != nil {
			return nil, errors.NewParsingError("malformed CBOR array", errors.ErrMalformedContainer)
		}
		n.elems = make([]*node, len(elems))
		for i, el := range elems {
			child, err := buildNode(el, codec.IndexPath(path, i))
			if err != nil {
				return nil, err
			}
			n.elems[i] = child
		}

	case majorMap:
		n.shape = value.KeyedNode
		var m map[any]cbor.RawMessage
		if err := decMode.Unmarshal(raw, &m); err != nil {
			return nil, errors.NewParsingError("malformed CBOR map", errors.ErrMalformedContainer)
		}
		n.entries = make([]mapEntry, 0, len(m))
		for rawKey, el := range m {
			k, err := mapKey(rawKey)
			if err != nil {
				return nil, err
			}
			child, err := buildNode(el, codec.ChildPath(path, k))
			if err != nil {
				return nil, err
			}
			n.entries = append(n.entries, mapEntry{key: k, child: child})
		}
		sort.Slice(n.entries, func(i, j int) bool {
			return n.entries[i].key.String() < n.entries[j].key.String()
		})

	default:
		n.shape = value.ScalarNode
	}
	return n, nil
}

// mapKey converts a decoded CBOR map key to the flexible key form. Only text
// and integer keys are supported.
func mapKey(k any) (value.Key, error) {
	switch x := k.(type) {
	case string:
		return value.KeyFromString(x), nil
	case int64:
		return value.KeyFromInt(x), nil
	case uint64:
		if x <= math.MaxInt64 {
			return value.KeyFromInt(int64(x)), nil
		}
		return value.KeyFromString(strconv.FormatUint(x, 10)), nil
	}
	return value.Key{}, errors.NewParsingError(
		fmt.Sprintf("unsupported CBOR map key type %T", k),
		errors.ErrMalformedContainer,
	)
}

func (n *node) NodeKind() value.NodeKind { return n.shape }

func (n *node) Len() int {
	if n.shape == value.KeyedNode {
		return len(n.entries)
	}
	return len(n.elems)
}

func (n *node) Keys() []value.Key {
	keys := make([]value.Key, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.key
	}
	return keys
}

func (n *node) Entry(k value.Key) (value.Node, bool) {
	for _, e := range n.entries {
		if e.key == k {
			return e.child, true
		}
	}
	return nil, false
}

func (n *node) Index(i int) value.Node {
	if i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

func (n *node) head() byte { return n.raw[0] }

func (n *node) major() byte { return n.raw[0] >> 5 }

func (n *node) Time() (time.Time, error) {
	if n.head() != headTagStdTime && n.head() != headTagEpochTime {
		return time.Time{}, errors.ErrTypeMismatch
	}
	var t time.Time
	if err := decMode.Unmarshal(n.raw, &t); err != nil {
		return time.Time{}, errors.ErrTypeMismatch
	}
	return t, nil
}

func (n *node) Bytes() ([]byte, error) {
	if n.major() != majorBytes {
		return nil, errors.ErrTypeMismatch
	}
	var b []byte
	if err := decMode.Unmarshal(n.raw, &b); err != nil {
		return nil, errors.ErrTypeMismatch
	}
	return b, nil
}

func (n *node) Bool() (bool, error) {
	switch n.head() {
	case headFalse:
		return false, nil
	case headTrue:
		return true, nil
	}
	return false, errors.ErrTypeMismatch
}

func (n *node) String() (string, error) {
	if n.major() != majorText {
		return "", errors.ErrTypeMismatch
	}
	var s string
	if err := decMode.Unmarshal(n.raw, &s); err != nil {
		return "", errors.ErrTypeMismatch
	}
	return s, nil
}

// Float32 matches only data items the producer encoded at 16 or 32 bits, so
// float width survives a round trip instead of narrowing on re-read.
func (n *node) Float32() (float32, error) {
	if n.head() != headFloat16 && n.head() != headFloat32 {
		return 0, errors.ErrTypeMismatch
	}
	var f float32
	if err := decMode.Unmarshal(n.raw, &f); err != nil {
		return 0, errors.ErrTypeMismatch
	}
	return f, nil
}

func (n *node) Float64() (float64, error) {
	switch n.head() {
	case headFloat16, headFloat32, headFloat64:
	default:
		return 0, errors.ErrTypeMismatch
	}
	var f float64
	if err := decMode.Unmarshal(n.raw, &f); err != nil {
		return 0, errors.ErrTypeMismatch
	}
	return f, nil
}

func (n *node) uintValue(max uint64) (uint64, error) {
	if n.major() != majorUint {
		return 0, errors.ErrTypeMismatch
	}
	var u uint64
	if err := decMode.Unmarshal(n.raw, &u); err != nil {
		return 0, errors.ErrTypeMismatch
	}
	if u > max {
		return 0, errors.ErrOutOfRange
	}
	return u, nil
}

func (n *node) intValue(min, max int64) (int64, error) {
	switch n.major() {
	case majorUint:
		var u uint64
		if err := decMode.Unmarshal(n.raw, &u); err != nil {
			return 0, errors.ErrTypeMismatch
		}
		if u > uint64(max) {
			return 0, errors.ErrOutOfRange
		}
		return int64(u), nil
	case majorNegInt:
		var i int64
		if err := decMode.Unmarshal(n.raw, &i); err != nil {
			// More negative than int64 can hold.
			return 0, errors.ErrOutOfRange
		}
		if i < min {
			return 0, errors.ErrOutOfRange
		}
		return i, nil
	}
	return 0, errors.ErrTypeMismatch
}

func (n *node) Uint8() (uint8, error) {
	u, err := n.uintValue(math.MaxUint8)
	return uint8(u), err
}

func (n *node) Uint16() (uint16, error) {
	u, err := n.uintValue(math.MaxUint16)
	return uint16(u), err
}

func (n *node) Uint32() (uint32, error) {
	u, err := n.uintValue(math.MaxUint32)
	return uint32(u), err
}

func (n *node) Uint64() (uint64, error) {
	return n.uintValue(math.MaxUint64)
}

func (n *node) Uint() (uint, error) {
	u, err := n.uintValue(math.MaxUint)
	return uint(u), err
}

func (n *node) Int8() (int8, error) {
	i, err := n.intValue(math.MinInt8, math.MaxInt8)
	return int8(i), err
}

func (n *node) Int16() (int16, error) {
	i, err := n.intValue(math.MinInt16, math.MaxInt16)
	return int16(i), err
}

func (n *node) Int32() (int32, error) {
	i, err := n.intValue(math.MinInt32, math.MaxInt32)
	return int32(i), err
}

func (n *node) Int64() (int64, error) {
	return n.intValue(math.MinInt64, math.MaxInt64)
}

func (n *node) Int() (int, error) {
	i, err := n.intValue(math.MinInt, math.MaxInt)
	return int(i), err
}

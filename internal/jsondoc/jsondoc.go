// Package jsondoc implements the plain-format codec over JSON. JSON has no
// native timestamp or binary representation and a single number type, so
// those trial decodes are resolved from token shape: integer-shaped tokens
// only match the integer ladder, fraction/exponent tokens only match the
// float ladder, and timestamp/binary trials always fail.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	stderrors "errors"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

func init() {
	codec.Register("json", func(o codec.Options) codec.Format {
		return &Format{opts: o}
	})
}

// Format is the JSON codec.
type Format struct {
	opts codec.Options
}

// New returns a JSON format with the given options.
func New(opts codec.Options) *Format {
	return &Format{opts: opts}
}

// Name implements codec.Format.
func (f *Format) Name() string { return "json" }

// Parse validates the document and returns a cursor at its root. The input
// must hold exactly one JSON value; empty input and trailing data are
// structural errors.
func (f *Format) Parse(data []byte) (value.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return nil, errors.NewParsingError("failed to parse JSON", err)
	}

	// Reject a second JSON value after the first; trailing whitespace is fine.
	if dec.More() {
		var trailing any
		if err := dec.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleValues)
		}
	}

	return &node{ScalarBase: codec.ScalarBase{NodePath: codec.RootPath}, val: root}, nil
}

// ParseString parses a JSON document held in a string.
func (f *Format) ParseString(doc string) (value.Node, error) {
	return f.Parse([]byte(doc))
}

// Unmarshal parses and decodes a JSON document in one step.
func Unmarshal(data []byte) (value.Value, error) {
	return codec.Decode(New(codec.Options{}), data, codec.Options{})
}

type node struct {
	codec.ScalarBase
	val any
}

func (n *node) NodeKind() value.NodeKind {
	switch n.val.(type) {
	case map[string]any:
		return value.KeyedNode
	case []any:
		return value.OrderedNode
	}
	return value.ScalarNode
}

func (n *node) Len() int {
	switch v := n.val.(type) {
	case map[string]any:
		return len(v)
	case []any:
		return len(v)
	}
	return 0
}

// Keys returns the object's keys sorted by string form; JSON objects carry
// no order of their own once parsed into a Go map.
func (n *node) Keys() []value.Key {
	obj, ok := n.val.(map[string]any)
	if !ok {
		return nil
	}
	raw := make([]string, 0, len(obj))
	for k := range obj {
		raw = append(raw, k)
	}
	sort.Strings(raw)
	keys := make([]value.Key, len(raw))
	for i, k := range raw {
		keys[i] = value.KeyFromString(k)
	}
	return keys
}

func (n *node) Entry(k value.Key) (value.Node, bool) {
	obj, ok := n.val.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := obj[k.String()]
	if !ok {
		return nil, false
	}
	return &node{ScalarBase: codec.ScalarBase{NodePath: codec.ChildPath(n.Path(), k)}, val: child}, true
}

func (n *node) Index(i int) value.Node {
	arr, ok := n.val.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return nil
	}
	return &node{ScalarBase: codec.ScalarBase{NodePath: codec.IndexPath(n.Path(), i)}, val: arr[i]}
}

func (n *node) Bool() (bool, error) {
	b, ok := n.val.(bool)
	if !ok {
		return false, errors.ErrTypeMismatch
	}
	return b, nil
}

func (n *node) String() (string, error) {
	s, ok := n.val.(string)
	if !ok {
		return "", errors.ErrTypeMismatch
	}
	return s, nil
}

// number returns the raw numeric token, if the node holds one.
func (n *node) number() (string, bool) {
	num, ok := n.val.(json.Number)
	return string(num), ok
}

// isFloatToken reports whether the literal carries a fraction or exponent.
func isFloatToken(s string) bool {
	return strings.ContainsAny(s, ".eE")
}

// fitsInteger reports whether the literal fits one of the 64-bit integers.
func fitsInteger(s string) bool {
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	return false
}

// floatValue is the shared gate for both float trials: integer-shaped
// tokens that fit an integer width belong to the integer ladder, everything
// else parses as a float (range overflow becomes an infinity, as ParseFloat
// defines it).
func (n *node) floatValue() (float64, error) {
	s, ok := n.number()
	if !ok {
		return 0, errors.ErrTypeMismatch
	}
	if !isFloatToken(s) && fitsInteger(s) {
		return 0, errors.ErrTypeMismatch
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return 0, errors.ErrTypeMismatch
	}
	return f, nil
}

func (n *node) Float32() (float32, error) {
	f, err := n.floatValue()
	if err != nil {
		return 0, err
	}
	if float64(float32(f)) != f {
		return 0, errors.ErrOutOfRange
	}
	return float32(f), nil
}

func (n *node) Float64() (float64, error) {
	return n.floatValue()
}

func (n *node) uintValue(bits int) (uint64, error) {
	s, ok := n.number()
	if !ok {
		return 0, errors.ErrTypeMismatch
	}
	u, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, errors.ErrOutOfRange
	}
	return u, nil
}

func (n *node) intValue(bits int) (int64, error) {
	s, ok := n.number()
	if !ok {
		return 0, errors.ErrTypeMismatch
	}
	i, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, errors.ErrOutOfRange
	}
	return i, nil
}

func (n *node) Uint8() (uint8, error) {
	u, err := n.uintValue(8)
	return uint8(u), err
}

func (n *node) Uint16() (uint16, error) {
	u, err := n.uintValue(16)
	return uint16(u), err
}

func (n *node) Uint32() (uint32, error) {
	u, err := n.uintValue(32)
	return uint32(u), err
}

func (n *node) Uint64() (uint64, error) {
	return n.uintValue(64)
}

func (n *node) Uint() (uint, error) {
	u, err := n.uintValue(strconv.IntSize)
	return uint(u), err
}

func (n *node) Int8() (int8, error) {
	i, err := n.intValue(8)
	return int8(i), err
}

func (n *node) Int16() (int16, error) {
	i, err := n.intValue(16)
	return int16(i), err
}

func (n *node) Int32() (int32, error) {
	i, err := n.intValue(32)
	return int32(i), err
}

func (n *node) Int64() (int64, error) {
	return n.intValue(64)
}

func (n *node) Int() (int, error) {
	i, err := n.intValue(strconv.IntSize)
	return int(i), err
}

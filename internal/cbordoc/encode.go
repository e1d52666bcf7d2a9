package cbordoc

import (
	"time"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

// Marshal encodes a decoded value as CBOR. Every variant has a native
// representation here: bytes stay a byte string, timestamps carry a time
// tag and floats keep their width, so decoding the output yields a
// variant-identical value. Integer widths are not carried on the wire;
// an integer re-decodes at the narrowest width its magnitude fits.
func (f *Format) Marshal(v value.Value) ([]byte, error) {
	enc := &treeEncoder{}
	if err := value.Encode(enc, v); err != nil {
		return nil, err
	}
	out, err := encMode.Marshal(enc.result)
	if err != nil {
		return nil, errors.NewEncodeError("failed to encode CBOR", err)
	}
	return out, nil
}

// Marshal encodes a value as CBOR with default options.
func Marshal(v value.Value) ([]byte, error) {
	return New(codec.Options{}).Marshal(v)
}

// treeEncoder implements value.Encoder by assembling the typed any-tree
// fxamacker/cbor expects. Exact Go types are preserved so the encoder picks
// the matching wire representation for each payload.
type treeEncoder struct {
	result any
	stack  []frame
}

type frame struct {
	obj map[any]any
	arr []any
	key any
}

func (e *treeEncoder) put(v any) error {
	if len(e.stack) == 0 {
		e.result = v
		return nil
	}
	top := &e.stack[len(e.stack)-1]
	if top.obj != nil {
		top.obj[top.key] = v
	} else {
		top.arr = append(top.arr, v)
	}
	return nil
}

func (e *treeEncoder) Bool(b bool) error { return e.put(b) }

func (e *treeEncoder) String(s string) error { return e.put(s) }

func (e *treeEncoder) Bytes(b []byte) error {
	return e.put(append([]byte(nil), b...))
}

func (e *treeEncoder) Time(t time.Time) error { return e.put(t) }

func (e *treeEncoder) Float32(f float32) error { return e.put(f) }

func (e *treeEncoder) Float64(f float64) error { return e.put(f) }

func (e *treeEncoder) Int8(i int8) error { return e.put(i) }

func (e *treeEncoder) Int16(i int16) error { return e.put(i) }

func (e *treeEncoder) Int32(i int32) error { return e.put(i) }

func (e *treeEncoder) Int64(i int64) error { return e.put(i) }

func (e *treeEncoder) Int(i int) error { return e.put(i) }

func (e *treeEncoder) Uint8(u uint8) error { return e.put(u) }

func (e *treeEncoder) Uint16(u uint16) error { return e.put(u) }

func (e *treeEncoder) Uint32(u uint32) error { return e.put(u) }

func (e *treeEncoder) Uint64(u uint64) error { return e.put(u) }

func (e *treeEncoder) Uint(u uint) error { return e.put(u) }

func (e *treeEncoder) BeginMap(size int) error {
	e.stack = append(e.stack, frame{obj: make(map[any]any, size)})
	return nil
}

// Key writes a mapping key, as an integer key when the flexible key carries
// an integer form and as text otherwise.
func (e *treeEncoder) Key(k value.Key) error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].obj == nil {
		return errors.NewEncodeError("key written outside a mapping", nil)
	}
	if n, ok := k.Int(); ok {
		e.stack[len(e.stack)-1].key = n
	} else {
		e.stack[len(e.stack)-1].key = k.String()
	}
	return nil
}

func (e *treeEncoder) EndMap() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].obj == nil {
		return errors.NewEncodeError("unbalanced EndMap", nil)
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return e.put(top.obj)
}

func (e *treeEncoder) BeginSeq(size int) error {
	e.stack = append(e.stack, frame{arr: make([]any, 0, size)})
	return nil
}

func (e *treeEncoder) EndSeq() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].obj != nil {
		return errors.NewEncodeError("unbalanced EndSeq", nil)
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return e.put(top.arr)
}

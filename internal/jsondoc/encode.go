package jsondoc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

// Marshal encodes a decoded value as JSON. Two payloads have no native JSON
// form and degrade deliberately: binary becomes a base64 string and a
// timestamp becomes its integer Unix seconds, so both re-decode as different
// variants. This asymmetry is part of the plain-format contract, not a bug.
func (f *Format) Marshal(v value.Value) ([]byte, error) {
	enc := &treeEncoder{}
	if err := value.Encode(enc, v); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	jenc := json.NewEncoder(&buf)
	if f.opts.Indent {
		jenc.SetIndent("", "  ")
	}
	if err := jenc.Encode(enc.result); err != nil {
		return nil, errors.NewEncodeError("failed to encode JSON", err)
	}
	return buf.Bytes(), nil
}

// Marshal encodes a value as JSON with default options.
func Marshal(v value.Value) ([]byte, error) {
	return New(codec.Options{}).Marshal(v)
}

// treeEncoder implements value.Encoder by assembling the native any-tree
// encoding/json expects.
type treeEncoder struct {
	result any
	stack  []frame
}

type frame struct {
	obj map[string]any
	arr []any
	key string
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
	return e.put(base64.StdEncoding.EncodeToString(b))
}

func (e *treeEncoder) Time(t time.Time) error { return e.put(t.Unix()) }

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
	e.stack = append(e.stack, frame{obj: make(map[string]any, size)})
	return nil
}

func (e *treeEncoder) Key(k value.Key) error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].obj == nil {
		return errors.NewEncodeError("key written outside a mapping", nil)
	}
	e.stack[len(e.stack)-1].key = k.String()
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

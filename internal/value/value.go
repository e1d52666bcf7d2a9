// Package value implements a dynamically-typed value that round-trips
// through structured serialization formats without a compile-time schema.
// A Value is a closed tagged union; exactly one variant is active and the
// variant set is fixed, so every switch over Kind in this package is
// exhaustive.
package value

import (
	"math"
	"time"
)

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindTimestamp
	KindBool
	KindString
	KindFloat64
	KindFloat32
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindBytes
	KindMap
	KindSeq
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindTimestamp: "timestamp",
	KindBool:      "bool",
	KindString:    "string",
	KindFloat64:   "float64",
	KindFloat32:   "float32",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindInt:       "int",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindUint:      "uint",
	KindBytes:     "bytes",
	KindMap:       "map",
	KindSeq:       "seq",
}

// String returns the variant name, e.g. "uint8".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsNumeric reports whether the kind is one of the integer or float variants.
func (k Kind) IsNumeric() bool {
	return k >= KindFloat64 && k <= KindUint
}

func (k Kind) isSigned() bool {
	return k >= KindInt8 && k <= KindInt
}

func (k Kind) isUnsigned() bool {
	return k >= KindUint8 && k <= KindUint
}

func (k Kind) isFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Value is the tagged union. The zero Value has KindInvalid and matches no
// accessor. Values are immutable: container payloads are copied on the way
// in and on the way out.
type Value struct {
	kind Kind
	b    bool
	i    int64   // payload for all signed widths
	u    uint64  // payload for all unsigned widths
	f    float64 // payload for both float widths; float32 stored exactly
	s    string
	t    time.Time
	raw  []byte
	seq  []Value
	m    map[Key]Value
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether a variant is active at all.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Float64 returns a 64-bit float Value.
func Float64(f float64) Value { return Value{kind: KindFloat64, f: f} }

// Float32 returns a 32-bit float Value.
func Float32(f float32) Value { return Value{kind: KindFloat32, f: float64(f)} }

// Int8 returns an int8 Value.
func Int8(i int8) Value { return Value{kind: KindInt8, i: int64(i)} }

// Int16 returns an int16 Value.
func Int16(i int16) Value { return Value{kind: KindInt16, i: int64(i)} }

// Int32 returns an int32 Value.
func Int32(i int32) Value { return Value{kind: KindInt32, i: int64(i)} }

// Int64 returns an int64 Value.
func Int64(i int64) Value { return Value{kind: KindInt64, i: i} }

// Int returns a platform-width signed integer Value.
func Int(i int) Value { return Value{kind: KindInt, i: int64(i)} }

// Uint8 returns a uint8 Value.
func Uint8(u uint8) Value { return Value{kind: KindUint8, u: uint64(u)} }

// Uint16 returns a uint16 Value.
func Uint16(u uint16) Value { return Value{kind: KindUint16, u: uint64(u)} }

// Uint32 returns a uint32 Value.
func Uint32(u uint32) Value { return Value{kind: KindUint32, u: uint64(u)} }

// Uint64 returns a uint64 Value.
func Uint64(u uint64) Value { return Value{kind: KindUint64, u: u} }

// Uint returns a platform-width unsigned integer Value.
func Uint(u uint) Value { return Value{kind: KindUint, u: uint64(u)} }

// Time returns a timestamp Value.
func Time(t time.Time) Value { return Value{kind: KindTimestamp, t: t} }

// Bytes returns a binary Value. The input is copied.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, raw: cp}
}

// Map returns a mapping Value. The input is copied.
func Map(m map[Key]Value) Value {
	cp := make(map[Key]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, m: cp}
}

// Seq returns a sequence Value. The input is copied.
func Seq(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindSeq, seq: cp}
}

// From converts a native Go value to its matching variant. It reports false
// for inputs the variant set does not cover; it never panics.
func From(v any) (Value, bool) {
	switch x := v.(type) {
	case Value:
		return x, x.IsValid()
	case bool:
		return Bool(x), true
	case string:
		return String(x), true
	case float64:
		return Float64(x), true
	case float32:
		return Float32(x), true
	case int8:
		return Int8(x), true
	case int16:
		return Int16(x), true
	case int32:
		return Int32(x), true
	case int64:
		return Int64(x), true
	case int:
		return Int(x), true
	case uint8:
		return Uint8(x), true
	case uint16:
		return Uint16(x), true
	case uint32:
		return Uint32(x), true
	case uint64:
		return Uint64(x), true
	case uint:
		return Uint(x), true
	case time.Time:
		return Time(x), true
	case []byte:
		return Bytes(x), true
	case []Value:
		return Seq(x...), true
	case map[Key]Value:
		return Map(x), true
	}
	return Value{}, false
}

// Native returns the payload as its native Go type: time.Time, bool, string,
// float64, float32, the exact integer width, []byte, map[Key]Value or
// []Value. Container and byte payloads are copies. The invalid Value yields
// nil.
func (v Value) Native() any {
	switch v.kind {
	case KindTimestamp:
		return v.t
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindFloat64:
		return v.f
	case KindFloat32:
		return float32(v.f)
	case KindInt8:
		return int8(v.i)
	case KindInt16:
		return int16(v.i)
	case KindInt32:
		return int32(v.i)
	case KindInt64:
		return v.i
	case KindInt:
		return int(v.i)
	case KindUint8:
		return uint8(v.u)
	case KindUint16:
		return uint16(v.u)
	case KindUint32:
		return uint32(v.u)
	case KindUint64:
		return v.u
	case KindUint:
		return uint(v.u)
	case KindBytes:
		cp := make([]byte, len(v.raw))
		copy(cp, v.raw)
		return cp
	case KindMap:
		cp := make(map[Key]Value, len(v.m))
		for k, cv := range v.m {
			cp[k] = cv
		}
		return cp
	case KindSeq:
		cp := make([]Value, len(v.seq))
		copy(cp, v.seq)
		return cp
	}
	return nil
}

// Len returns the entry count for mapping and sequence variants and the byte
// count for the binary variant; other variants report zero.
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.m)
	case KindSeq:
		return len(v.seq)
	case KindBytes:
		return len(v.raw)
	}
	return 0
}

// float64bits gives the payload bits used for float equality and hashing, so
// NaN payloads compare equal to themselves.
func (v Value) float64bits() uint64 {
	return math.Float64bits(v.f)
}

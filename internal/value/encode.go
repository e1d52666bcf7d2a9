package value

import (
	"github.com/mcncl/anyval/internal/errors"
)

// Encode writes the value to the encoder by dispatching on the active
// variant. Mapping entries are written in sorted key order so output is
// deterministic across runs.
func Encode(e Encoder, v Value) error {
	switch v.kind {
	case KindTimestamp:
		return e.Time(v.t)
	case KindBool:
		return e.Bool(v.b)
	case KindString:
		return e.String(v.s)
	case KindFloat64:
		return e.Float64(v.f)
	case KindFloat32:
		return e.Float32(float32(v.f))
	case KindInt8:
		return e.Int8(int8(v.i))
	case KindInt16:
		return e.Int16(int16(v.i))
	case KindInt32:
		return e.Int32(int32(v.i))
	case KindInt64:
		return e.Int64(v.i)
	case KindInt:
		return e.Int(int(v.i))
	case KindUint8:
		return e.Uint8(uint8(v.u))
	case KindUint16:
		return e.Uint16(uint16(v.u))
	case KindUint32:
		return e.Uint32(uint32(v.u))
	case KindUint64:
		return e.Uint64(v.u)
	case KindUint:
		return e.Uint(uint(v.u))
	case KindBytes:
		return e.Bytes(v.raw)
	case KindSeq:
		if err := e.BeginSeq(len(v.seq)); err != nil {
			return err
		}
		for _, el := range v.seq {
			if err := Encode(e, el); err != nil {
				return err
			}
		}
		return e.EndSeq()
	case KindMap:
		if err := e.BeginMap(len(v.m)); err != nil {
			return err
		}
		for _, k := range v.Keys() {
			if err := e.Key(k); err != nil {
				return err
			}
			if err := Encode(e, v.m[k]); err != nil {
				return err
			}
		}
		return e.EndMap()
	}
	return errors.NewEncodeError("cannot encode an invalid value", nil)
}

package value

import (
	"bytes"
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Equal reports variant-exact structural equality: the active variants must
// match and the payloads must match. Float64(1) is not equal to Int64(1).
// Floats compare by bit pattern, so NaN equals NaN and +0 differs from -0;
// timestamps compare by instant.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInvalid:
		return true
	case KindTimestamp:
		return v.t.Equal(o.t)
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindFloat64, KindFloat32:
		return v.float64bits() == o.float64bits()
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt:
		return v.i == o.i
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		return v.u == o.u
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindSeq:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, a := range v.m {
			b, ok := o.m[k]
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a digest consistent with Equal: equal Values hash equally.
// The variant tag is mixed in with the payload so numerically equivalent
// values of different variants hash apart.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	v.hashInto(h)
	return h.Sum64()
}

func (v Value) hashInto(h hash.Hash64) {
	_, _ = h.Write([]byte{byte(v.kind)})
	var buf [8]byte
	switch v.kind {
	case KindTimestamp:
		// UnixNano ignores the location, matching time.Time.Equal.
		binary.LittleEndian.PutUint64(buf[:], uint64(v.t.UnixNano()))
		_, _ = h.Write(buf[:])
	case KindBool:
		if v.b {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	case KindString:
		_, _ = h.Write([]byte(v.s))
	case KindFloat64, KindFloat32:
		binary.LittleEndian.PutUint64(buf[:], v.float64bits())
		_, _ = h.Write(buf[:])
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.i))
		_, _ = h.Write(buf[:])
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		binary.LittleEndian.PutUint64(buf[:], v.u)
		_, _ = h.Write(buf[:])
	case KindBytes:
		_, _ = h.Write(v.raw)
	case KindSeq:
		for _, e := range v.seq {
			binary.LittleEndian.PutUint64(buf[:], e.Hash())
			_, _ = h.Write(buf[:])
		}
	case KindMap:
		// Entry digests are combined with XOR so the hash does not depend
		// on map iteration order.
		var acc uint64
		for k, e := range v.m {
			eh := fnv.New64a()
			_, _ = eh.Write([]byte(k.String()))
			binary.LittleEndian.PutUint64(buf[:], e.Hash())
			_, _ = eh.Write(buf[:])
			acc ^= eh.Sum64()
		}
		binary.LittleEndian.PutUint64(buf[:], acc)
		_, _ = h.Write(buf[:])
	}
}

package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// String renders the value as .<variant>(<payload>) for debugging. Binary
// payloads render as a byte count rather than raw content; containers
// recurse, mapping entries in sorted key order.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	b.WriteByte('.')
	b.WriteString(v.kind.String())
	b.WriteByte('(')
	switch v.kind {
	case KindInvalid:
		// no payload
	case KindTimestamp:
		b.WriteString(v.t.UTC().Format("2006-01-02T15:04:05.999999999Z"))
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindString:
		b.WriteString(strconv.Quote(v.s))
	case KindFloat64:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindFloat32:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 32))
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		b.WriteString(strconv.FormatUint(v.u, 10))
	case KindBytes:
		fmt.Fprintf(b, "%d bytes", len(v.raw))
	case KindSeq:
		b.WriteByte('[')
		for i, e := range v.seq {
			if i > 0 {
				b.WriteString(", ")
			}
			e.render(b)
		}
		b.WriteByte(']')
	case KindMap:
		keys := v.Keys()
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(k.String()))
			b.WriteString(": ")
			v.m[k].render(b)
		}
		b.WriteByte('}')
	}
	b.WriteByte(')')
}

// Keys returns the mapping's keys ordered by string form. Non-mapping
// variants return nil.
func (v Value) Keys() []Key {
	keys := make([]Key, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

package value

import (
	"github.com/mcncl/anyval/internal/errors"
)

// DefaultMaxDepth bounds decode recursion so pathologically deep documents
// fail with ErrDepthExceeded instead of exhausting the stack.
const DefaultMaxDepth = 512

// Decode interprets the node under the cursor as a Value using the trial
// ladder. The ladder order is a fixed policy, not an implementation detail:
// containers first, then timestamp, binary, bool, floats narrow-to-wide,
// the unsigned integer ladder narrow-to-wide, the signed ladder
// narrow-to-wide, and string last. Reordering it changes which variant an
// untyped token lands on.
func Decode(n Node) (Value, error) {
	return DecodeDepth(n, DefaultMaxDepth)
}

// DecodeDepth is Decode with an explicit nesting budget.
func DecodeDepth(n Node, maxDepth int) (Value, error) {
	return decodeNode(n, maxDepth)
}

func decodeNode(n Node, budget int) (Value, error) {
	if budget <= 0 {
		return Value{}, errors.NewDecodeError(n.Path(), errors.ErrDepthExceeded)
	}

	switch n.NodeKind() {
	case KeyedNode:
		m := make(map[Key]Value, n.Len())
		for _, k := range n.Keys() {
			child, ok := n.Entry(k)
			if !ok {
				return Value{}, errors.NewDecodeError(n.Path(), errors.ErrMalformedContainer)
			}
			cv, err := decodeNode(child, budget-1)
			if err != nil {
				return Value{}, err
			}
			m[k] = cv
		}
		return Value{kind: KindMap, m: m}, nil

	case OrderedNode:
		seq := make([]Value, 0, n.Len())
		for i := 0; i < n.Len(); i++ {
			child := n.Index(i)
			if child == nil {
				return Value{}, errors.NewDecodeError(n.Path(), errors.ErrMalformedContainer)
			}
			cv, err := decodeNode(child, budget-1)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, cv)
		}
		return Value{kind: KindSeq, seq: seq}, nil
	}

	if t, err := n.Time(); err == nil {
		return Time(t), nil
	}
	if b, err := n.Bytes(); err == nil {
		return Bytes(b), nil
	}
	if b, err := n.Bool(); err == nil {
		return Bool(b), nil
	}
	if f, err := n.Float32(); err == nil {
		return Float32(f), nil
	}
	if f, err := n.Float64(); err == nil {
		return Float64(f), nil
	}
	if u, err := n.Uint8(); err == nil {
		return Uint8(u), nil
	}
	if u, err := n.Uint16(); err == nil {
		return Uint16(u), nil
	}
	if u, err := n.Uint32(); err == nil {
		return Uint32(u), nil
	}
	if u, err := n.Uint64(); err == nil {
		return Uint64(u), nil
	}
	if u, err := n.Uint(); err == nil {
		return Uint(u), nil
	}
	if i, err := n.Int8(); err == nil {
		return Int8(i), nil
	}
	if i, err := n.Int16(); err == nil {
		return Int16(i), nil
	}
	if i, err := n.Int32(); err == nil {
		return Int32(i), nil
	}
	if i, err := n.Int64(); err == nil {
		return Int64(i), nil
	}
	if i, err := n.Int(); err == nil {
		return Int(i), nil
	}
	if s, err := n.String(); err == nil {
		return String(s), nil
	}
	return Value{}, errors.NewDecodeError(n.Path(), errors.ErrUnsupportedType)
}

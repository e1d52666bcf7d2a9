// Package extract pulls every occurrence of a known type out of a decoded
// document of otherwise-unknown shape, so callers can reach data nested at
// any depth without modeling the nodes around it.
package extract

import (
	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/value"
)

// Decodable lets a type define its own decoding from a dynamic value.
// Types that do not implement it are bound through value.Bind.
type Decodable interface {
	UnmarshalValue(value.Value) error
}

// All collects every node of the tree that decodes as T, depth-first in
// pre-order: a container is tested as a whole first, and the children of a
// successful match are not descended into. Mapping entries are visited in
// sorted key order, sequence elements by index. A node that does not decode
// as T is skipped silently; it is not an error.
func All[T any](root value.Value) []T {
	var out []T
	walkValue(root, &out)
	return out
}

// UnderKey collects every T found below the given key of a mapping root.
// A missing key yields no results.
func UnderKey[T any](root value.Value, key value.Key) []T {
	entry, ok := root.Entry(key)
	if !ok {
		return nil
	}
	return All[T](entry)
}

// FromNode runs the same search directly over a decode cursor, testing each
// node by decoding its subtree. Subtrees that cannot decode at all (for
// example, they hold a token no variant covers) are not matches; the search
// still descends into their children.
func FromNode[T any](n value.Node) []T {
	var out []T
	walkNode(n, &out)
	return out
}

// FromDocument parses a document and extracts every T in it. Only a
// structural failure of the document itself is an error; per-node
// mismatches never are.
func FromDocument[T any](f codec.Format, data []byte) ([]T, error) {
	root, err := f.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromNode[T](root), nil
}

// decodeAs attempts to produce a T from one node's value.
func decodeAs[T any](v value.Value) (T, bool) {
	var t T
	if dec, ok := any(&t).(Decodable); ok {
		if err := dec.UnmarshalValue(v); err != nil {
			var zero T
			return zero, false
		}
		return t, true
	}
	if err := value.Bind(v, &t); err != nil {
		var zero T
		return zero, false
	}
	return t, true
}

func walkValue[T any](v value.Value, out *[]T) {
	if t, ok := decodeAs[T](v); ok {
		*out = append(*out, t)
		return
	}
	switch v.Kind() {
	case value.KindMap:
		for _, k := range v.Keys() {
			entry, _ := v.Entry(k)
			walkValue(entry, out)
		}
	case value.KindSeq:
		seq, _ := v.AsSeq()
		for _, el := range seq {
			walkValue(el, out)
		}
	}
}

func walkNode[T any](n value.Node, out *[]T) {
	if v, err := value.Decode(n); err == nil {
		if t, ok := decodeAs[T](v); ok {
			*out = append(*out, t)
			return
		}
	}
	switch n.NodeKind() {
	case value.KeyedNode:
		for _, k := range n.Keys() {
			if child, ok := n.Entry(k); ok {
				walkNode(child, out)
			}
		}
	case value.OrderedNode:
		for i := 0; i < n.Len(); i++ {
			if child := n.Index(i); child != nil {
				walkNode(child, out)
			}
		}
	}
}

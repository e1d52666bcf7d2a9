package value

import "time"

// NodeKind classifies a document node by shape. Containers are never also
// scalars.
type NodeKind int

const (
	ScalarNode NodeKind = iota
	KeyedNode
	OrderedNode
)

// Node is a decode cursor positioned at one undetermined node of a
// structured document. Each typed method is a trial decode: it returns the
// payload when the node's representation matches the requested type and an
// error otherwise, with no side effects on failure. Formats implement Node
// over their own parsed representation.
type Node interface {
	NodeKind() NodeKind
	// Path is the node's dollar-rooted location, used in decode errors.
	Path() string

	// Keyed-container surface.
	Len() int
	Keys() []Key
	Entry(Key) (Node, bool)
	// Ordered-container surface.
	Index(int) Node

	// Scalar trial decodes.
	Bool() (bool, error)
	String() (string, error)
	Bytes() ([]byte, error)
	Time() (time.Time, error)
	Float32() (float32, error)
	Float64() (float64, error)
	Int8() (int8, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)
	Int() (int, error)
	Uint8() (uint8, error)
	Uint16() (uint16, error)
	Uint32() (uint32, error)
	Uint64() (uint64, error)
	Uint() (uint, error)
}

// Encoder is the mirror write surface. Encode drives it with the variant
// already known, so there is no trial machinery here. Container writes are
// bracketed by Begin/End pairs; mapping entries are written as a Key call
// followed by the entry's value.
type Encoder interface {
	Bool(bool) error
	String(string) error
	Bytes([]byte) error
	Time(time.Time) error
	Float32(float32) error
	Float64(float64) error
	Int8(int8) error
	Int16(int16) error
	Int32(int32) error
	Int64(int64) error
	Int(int) error
	Uint8(uint8) error
	Uint16(uint16) error
	Uint32(uint32) error
	Uint64(uint64) error
	Uint(uint) error

	BeginMap(size int) error
	Key(Key) error
	EndMap() error
	BeginSeq(size int) error
	EndSeq() error
}

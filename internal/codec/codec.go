// Package codec is the integration layer between the value union and
// concrete serialization formats. A format parses raw bytes into a tree of
// value.Node cursors and marshals a decoded value.Value back to bytes.
package codec

import (
	"sort"

	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

// Options carries decode/encode settings shared by all formats.
type Options struct {
	// MaxDepth bounds decode recursion; zero means value.DefaultMaxDepth.
	MaxDepth int
	// Indent pretty-prints output for formats with a textual form.
	Indent bool
}

// Format is a serialization format the value union can round-trip through.
type Format interface {
	Name() string
	// Parse validates the raw document and returns a cursor at its root.
	// Structural errors surface here, not during trial decoding.
	Parse(data []byte) (value.Node, error)
	// Marshal encodes a decoded value into the format's wire form.
	Marshal(v value.Value) ([]byte, error)
}

// Decode parses a document and decodes its root in one step.
func Decode(f Format, data []byte, o Options) (value.Value, error) {
	root, err := f.Parse(data)
	if err != nil {
		return value.Value{}, err
	}
	return value.DecodeDepth(root, o.maxDepth())
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return value.DefaultMaxDepth
}

var registry = map[string]func(Options) Format{}

// Register makes a format constructor available by name. Formats register
// themselves from an init function.
func Register(name string, ctor func(Options) Format) {
	registry[name] = ctor
}

// New returns a format by name, or ErrUnknownFormat.
func New(name string, o Options) (Format, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.NewInputError("unsupported format: "+name, errors.ErrUnknownFormat)
	}
	return ctor(o), nil
}

// Names lists the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

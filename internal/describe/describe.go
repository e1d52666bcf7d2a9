// Package describe turns a decoded dynamic value into a Go type sketch: a
// set of struct definitions matching the shapes observed in the document.
// The sketch is a starting point for callers who decide to model part of a
// document statically after inspecting it.
package describe

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

// DefaultRootName is used when no root type name is specified.
const DefaultRootName = "Document"

// Options controls sketch naming.
type Options struct {
	RootName    string
	PackageName string
}

type fieldDef struct {
	GoName  string
	JSONKey string
	GoType  string
}

type structDef struct {
	Name   string
	Fields []fieldDef
	IsRoot bool
}

type describer struct {
	structs []structDef
	names   map[string]int
	imports map[string]struct{}
}

// Describe produces gofmt-formatted Go source sketching the value's shape.
func Describe(v value.Value, opts Options) (string, error) {
	if opts.RootName == "" {
		opts.RootName = DefaultRootName
	}
	if opts.PackageName == "" {
		opts.PackageName = "main"
	}

	d := &describer{
		names:   make(map[string]int),
		imports: make(map[string]struct{}),
	}

	rootName := d.uniqueName(fieldName(opts.RootName))
	if v.Kind() == value.KindMap {
		d.addStruct(v, rootName, true)
	} else {
		// Wrap non-mapping roots in a struct with a single Value field.
		d.structs = append(d.structs, structDef{
			Name:   rootName,
			Fields: []fieldDef{{GoName: "Value", JSONKey: "value", GoType: d.typeOf(v, rootName+"Value")}},
			IsRoot: true,
		})
	}

	src, err := d.render(opts.PackageName)
	if err != nil {
		return "", err
	}
	return src, nil
}

// typeOf maps a value's variant to a Go type expression, creating nested
// struct definitions as it goes. suggested names nested structs.
func (d *describer) typeOf(v value.Value, suggested string) string {
	switch v.Kind() {
	case value.KindTimestamp:
		d.imports["time"] = struct{}{}
		return "time.Time"
	case value.KindBool:
		return "bool"
	case value.KindString:
		return "string"
	case value.KindFloat64:
		return "float64"
	case value.KindFloat32:
		return "float32"
	case value.KindInt8, value.KindInt16, value.KindInt32, value.KindInt64, value.KindInt,
		value.KindUint8, value.KindUint16, value.KindUint32, value.KindUint64, value.KindUint:
		return v.Kind().String()
	case value.KindBytes:
		return "[]byte"
	case value.KindSeq:
		return d.sliceType(v, suggested)
	case value.KindMap:
		return d.addStruct(v, d.uniqueName(fieldName(suggested)), false)
	}
	return "any"
}

// sliceType infers a slice element type: homogeneous elements keep their
// type, anything mixed or empty falls back to any.
func (d *describer) sliceType(v value.Value, suggested string) string {
	seq, _ := v.AsSeq()
	if len(seq) == 0 {
		return "[]any"
	}
	first := d.typeOf(seq[0], suggested)
	for _, el := range seq[1:] {
		// Shape comparison via the variant tag is enough here; two mappings
		// with different fields still merge to the first one's sketch.
		if el.Kind() != seq[0].Kind() {
			return "[]any"
		}
	}
	return "[]" + first
}

func (d *describer) addStruct(v value.Value, name string, isRoot bool) string {
	def := structDef{Name: name, IsRoot: isRoot}
	for _, k := range v.Keys() {
		entry, _ := v.Entry(k)
		goName := fieldName(k.String())
		def.Fields = append(def.Fields, fieldDef{
			GoName:  goName,
			JSONKey: k.String(),
			GoType:  d.typeOf(entry, name+goName),
		})
	}
	d.structs = append(d.structs, def)
	return name
}

// uniqueName appends a counter when a struct name is already taken.
func (d *describer) uniqueName(base string) string {
	count := d.names[base]
	d.names[base] = count + 1
	if count > 0 {
		return fmt.Sprintf("%s%d", base, count)
	}
	return base
}

// fieldName converts a document key to a Go-style PascalCase identifier.
func fieldName(key string) string {
	name := strcase.ToCamel(key)
	if name == "" {
		return "Field"
	}
	return name
}

// render emits the package clause, imports and struct definitions, root
// structs first, then formats the result with go/format.
func (d *describer) render(pkg string) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n", pkg)

	if len(d.imports) > 0 {
		imports := make([]string, 0, len(d.imports))
		for imp := range d.imports {
			imports = append(imports, imp)
		}
		sort.Strings(imports)
		buf.WriteString("\nimport (\n")
		for _, imp := range imports {
			fmt.Fprintf(&buf, "\t%q\n", imp)
		}
		buf.WriteString(")\n")
	}

	structs := make([]structDef, len(d.structs))
	copy(structs, d.structs)
	sort.SliceStable(structs, func(i, j int) bool {
		return structs[i].IsRoot && !structs[j].IsRoot
	})

	for _, s := range structs {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "type %s struct {\n", s.Name)
		for _, f := range s.Fields {
			fmt.Fprintf(&buf, "\t%s %s `json:%q`\n", f.GoName, f.GoType, f.JSONKey)
		}
		buf.WriteString("}\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", errors.NewDescribeError("failed to format generated sketch", err)
	}
	if !strings.HasSuffix(string(formatted), "\n") {
		formatted = append(formatted, '\n')
	}
	return string(formatted), nil
}

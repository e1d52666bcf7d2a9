package value

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/anyval/internal/errors"
)

var timeType = reflect.TypeOf(time.Time{})

// Bind populates out, which must be a non-nil pointer, from the value.
// Structs bind from mapping variants: every exported field must be matched
// by a mapping entry unless the field is a pointer or carries a json tag
// with the omitempty option; extra mapping entries are ignored. Field names
// are matched against the json tag name when present, otherwise against the
// Go name, its snake_case form and its lowerCamel form. Numeric fields are
// filled through the coercing accessors, so widths convert with standard Go
// cast semantics.
func Bind(v Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.NewInputError(fmt.Sprintf("bind target must be a non-nil pointer, got %T", out), nil)
	}
	return bindValue(v, rv.Elem())
}

func bindValue(v Value, dst reflect.Value) error {
	t := dst.Type()

	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(t.Elem()))
		}
		return bindValue(v, dst.Elem())

	case reflect.Interface:
		if t.NumMethod() != 0 {
			return mismatch(v, t)
		}
		nat := v.Native()
		if nat == nil {
			return mismatch(v, t)
		}
		dst.Set(reflect.ValueOf(nat))
		return nil

	case reflect.Struct:
		if t == timeType {
			ts, ok := v.AsTime()
			if !ok {
				return mismatch(v, t)
			}
			dst.Set(reflect.ValueOf(ts))
			return nil
		}
		return bindStruct(v, dst)

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			b, ok := v.AsBytes()
			if !ok {
				return mismatch(v, t)
			}
			dst.SetBytes(b)
			return nil
		}
		seq, ok := v.AsSeq()
		if !ok {
			return mismatch(v, t)
		}
		out := reflect.MakeSlice(t, len(seq), len(seq))
		for i, el := range seq {
			if err := bindValue(el, out.Index(i)); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return mismatch(v, t)
		}
		m, ok := v.AsMap()
		if !ok {
			return mismatch(v, t)
		}
		out := reflect.MakeMapWithSize(t, len(m))
		for k, el := range m {
			ev := reflect.New(t.Elem()).Elem()
			if err := bindValue(el, ev); err != nil {
				return fmt.Errorf("entry %q: %w", k.String(), err)
			}
			out.SetMapIndex(reflect.ValueOf(k.String()).Convert(t.Key()), ev)
		}
		dst.Set(out)
		return nil

	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return mismatch(v, t)
		}
		dst.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return mismatch(v, t)
		}
		dst.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := v.AsInt64()
		if !ok {
			return mismatch(v, t)
		}
		dst.SetInt(truncSigned(i, t.Bits()))
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := v.AsUint64()
		if !ok {
			return mismatch(v, t)
		}
		dst.SetUint(truncUnsigned(u, t.Bits()))
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := v.AsFloat64()
		if !ok {
			return mismatch(v, t)
		}
		if t.Bits() == 32 {
			f = float64(float32(f))
		}
		dst.SetFloat(f)
		return nil
	}

	return mismatch(v, t)
}

func bindStruct(v Value, dst reflect.Value) error {
	t := dst.Type()
	if v.Kind() != KindMap {
		return mismatch(v, t)
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		name, optional, skip := fieldSpec(field)
		if skip {
			continue
		}
		entry, ok := lookupField(v, field.Name, name)
		if !ok {
			if optional || field.Type.Kind() == reflect.Pointer {
				continue
			}
			return fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, errors.ErrMissingKey)
		}
		if err := bindValue(entry, dst.Field(i)); err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
	}
	return nil
}

// fieldSpec reads the json tag: an explicit name, the omitempty option and
// the "-" skip marker all behave as they do in encoding/json.
func fieldSpec(field reflect.StructField) (name string, optional, skip bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}
	return name, optional, false
}

func lookupField(v Value, goName, tagName string) (Value, bool) {
	if tagName != "" {
		return v.Entry(KeyFromString(tagName))
	}
	for _, candidate := range []string{goName, strcase.ToSnake(goName), strcase.ToLowerCamel(goName)} {
		if entry, ok := v.Entry(KeyFromString(candidate)); ok {
			return entry, true
		}
	}
	return Value{}, false
}

func truncSigned(i int64, bits int) int64 {
	switch bits {
	case 8:
		return int64(int8(i))
	case 16:
		return int64(int16(i))
	case 32:
		return int64(int32(i))
	}
	return i
}

func truncUnsigned(u uint64, bits int) uint64 {
	switch bits {
	case 8:
		return uint64(uint8(u))
	case 16:
		return uint64(uint16(u))
	case 32:
		return uint64(uint32(u))
	}
	return u
}

func mismatch(v Value, t reflect.Type) error {
	return fmt.Errorf("cannot bind %s variant into %s: %w", v.Kind(), t, errors.ErrTypeMismatch)
}

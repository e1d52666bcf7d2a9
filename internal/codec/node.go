package codec

import (
	"strconv"
	"time"

	"github.com/mcncl/anyval/internal/errors"
	"github.com/mcncl/anyval/internal/value"
)

// ScalarBase is an embeddable value.Node whose every trial decode fails with
// ErrTypeMismatch. Format nodes embed it and override only the shapes and
// primitives their representation actually supports.
type ScalarBase struct {
	NodePath string
}

func (b ScalarBase) NodeKind() value.NodeKind { return value.ScalarNode }

func (b ScalarBase) Path() string { return b.NodePath }

func (b ScalarBase) Len() int { return 0 }

func (b ScalarBase) Keys() []value.Key { return nil }

func (b ScalarBase) Entry(value.Key) (value.Node, bool) { return nil, false }

func (b ScalarBase) Index(int) value.Node { return nil }

func (b ScalarBase) Bool() (bool, error) { return false, errors.ErrTypeMismatch }

func (b ScalarBase) String() (string, error) { return "", errors.ErrTypeMismatch }

func (b ScalarBase) Bytes() ([]byte, error) { return nil, errors.ErrTypeMismatch }

func (b ScalarBase) Time() (time.Time, error) { return time.Time{}, errors.ErrTypeMismatch }

func (b ScalarBase) Float32() (float32, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Float64() (float64, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Int8() (int8, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Int16() (int16, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Int32() (int32, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Int64() (int64, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Int() (int, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Uint8() (uint8, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Uint16() (uint16, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Uint32() (uint32, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Uint64() (uint64, error) { return 0, errors.ErrTypeMismatch }

func (b ScalarBase) Uint() (uint, error) { return 0, errors.ErrTypeMismatch }

// RootPath is the path of a document's root node.
const RootPath = "$"

// ChildPath extends a path with a mapping key.
func ChildPath(parent string, key value.Key) string {
	return parent + "." + key.String()
}

// IndexPath extends a path with a sequence index.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

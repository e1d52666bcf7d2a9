// Package dynmap is a convenience wrapper over the mapping variant: a
// mutable dictionary with typed getters and setters keyed by plain strings.
// Lookups share the coercion behavior of the value accessors, nothing more.
package dynmap

import (
	"time"

	"github.com/mcncl/anyval/internal/value"
)

// Map is a string/integer-keyed dictionary of dynamic values.
type Map struct {
	m map[value.Key]value.Value
}

// New returns an empty Map.
func New() *Map {
	return &Map{m: make(map[value.Key]value.Value)}
}

// FromValue unwraps a mapping variant into a Map.
func FromValue(v value.Value) (*Map, bool) {
	entries, ok := v.AsMap()
	if !ok {
		return nil, false
	}
	return &Map{m: entries}, true
}

// Value wraps the dictionary back into a mapping variant.
func (d *Map) Value() value.Value {
	return value.Map(d.m)
}

// Len returns the entry count.
func (d *Map) Len() int {
	return len(d.m)
}

// Keys returns the keys in sorted order.
func (d *Map) Keys() []value.Key {
	return d.Value().Keys()
}

// Get returns the raw value under a string key.
func (d *Map) Get(key string) (value.Value, bool) {
	v, ok := d.m[value.KeyFromString(key)]
	return v, ok
}

// Set stores a raw value under a string key.
func (d *Map) Set(key string, v value.Value) {
	d.m[value.KeyFromString(key)] = v
}

// Delete removes a key.
func (d *Map) Delete(key string) {
	delete(d.m, value.KeyFromString(key))
}

// GetString returns the string under key, if the entry is a string variant.
func (d *Map) GetString(key string) (string, bool) {
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetBool returns the boolean under key, if the entry is a bool variant.
func (d *Map) GetBool(key string) (bool, bool) {
	v, ok := d.Get(key)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// GetInt64 returns the entry under key coerced to int64, for any numeric
// variant.
func (d *Map) GetInt64(key string) (int64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsInt64()
}

// GetUint64 returns the entry under key coerced to uint64, for any numeric
// variant.
func (d *Map) GetUint64(key string) (uint64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsUint64()
}

// GetFloat64 returns the entry under key coerced to float64, for any
// numeric variant.
func (d *Map) GetFloat64(key string) (float64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsFloat64()
}

// GetTime returns the timestamp under key, if the entry is a timestamp.
func (d *Map) GetTime(key string) (time.Time, bool) {
	v, ok := d.Get(key)
	if !ok {
		return time.Time{}, false
	}
	return v.AsTime()
}

// GetBytes returns the binary payload under key, if the entry is binary.
func (d *Map) GetBytes(key string) ([]byte, bool) {
	v, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsBytes()
}

// SetString stores a string variant under key.
func (d *Map) SetString(key, v string) {
	d.Set(key, value.String(v))
}

// SetBool stores a bool variant under key.
func (d *Map) SetBool(key string, v bool) {
	d.Set(key, value.Bool(v))
}

// SetInt64 stores an int64 variant under key.
func (d *Map) SetInt64(key string, v int64) {
	d.Set(key, value.Int64(v))
}

// SetUint64 stores a uint64 variant under key.
func (d *Map) SetUint64(key string, v uint64) {
	d.Set(key, value.Uint64(v))
}

// SetFloat64 stores a float64 variant under key.
func (d *Map) SetFloat64(key string, v float64) {
	d.Set(key, value.Float64(v))
}

// SetTime stores a timestamp variant under key.
func (d *Map) SetTime(key string, v time.Time) {
	d.Set(key, value.Time(v))
}

// SetBytes stores a binary variant under key.
func (d *Map) SetBytes(key string, v []byte) {
	d.Set(key, value.Bytes(v))
}

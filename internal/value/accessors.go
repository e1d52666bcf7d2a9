package value

import "time"

// Typed accessors, one per variant, comma-ok style. Non-numeric accessors
// succeed only when the active variant matches exactly. Numeric accessors
// additionally coerce across every numeric variant using Go conversion
// semantics (truncation on narrowing, never saturation); non-numeric
// variants never satisfy a numeric accessor.

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsTime returns the timestamp payload.
func (v Value) AsTime() (time.Time, bool) {
	if v.kind != KindTimestamp {
		return time.Time{}, false
	}
	return v.t, true
}

// AsBytes returns a copy of the binary payload.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	cp := make([]byte, len(v.raw))
	copy(cp, v.raw)
	return cp, true
}

// AsMap returns a copy of the mapping payload.
func (v Value) AsMap() (map[Key]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	cp := make(map[Key]Value, len(v.m))
	for k, cv := range v.m {
		cp[k] = cv
	}
	return cp, true
}

// AsSeq returns a copy of the sequence payload.
func (v Value) AsSeq() ([]Value, bool) {
	if v.kind != KindSeq {
		return nil, false
	}
	cp := make([]Value, len(v.seq))
	copy(cp, v.seq)
	return cp, true
}

// Entry looks up a mapping entry by key.
func (v Value) Entry(k Key) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	cv, ok := v.m[k]
	return cv, ok
}

// At returns a sequence element by index.
func (v Value) At(i int) (Value, bool) {
	if v.kind != KindSeq || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// asSigned widens any numeric payload to int64.
func (v Value) asSigned() (int64, bool) {
	switch {
	case v.kind.isSigned():
		return v.i, true
	case v.kind.isUnsigned():
		return int64(v.u), true
	case v.kind.isFloat():
		return int64(v.f), true
	}
	return 0, false
}

// asUnsigned widens any numeric payload to uint64.
func (v Value) asUnsigned() (uint64, bool) {
	switch {
	case v.kind.isSigned():
		return uint64(v.i), true
	case v.kind.isUnsigned():
		return v.u, true
	case v.kind.isFloat():
		return uint64(v.f), true
	}
	return 0, false
}

// asFloat widens any numeric payload to float64.
func (v Value) asFloat() (float64, bool) {
	switch {
	case v.kind.isSigned():
		return float64(v.i), true
	case v.kind.isUnsigned():
		return float64(v.u), true
	case v.kind.isFloat():
		return v.f, true
	}
	return 0, false
}

// AsFloat64 returns the payload of any numeric variant as a float64.
func (v Value) AsFloat64() (float64, bool) {
	return v.asFloat()
}

// AsFloat32 returns the payload of any numeric variant as a float32.
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.asFloat()
	return float32(f), ok
}

// AsInt8 returns the payload of any numeric variant as an int8.
func (v Value) AsInt8() (int8, bool) {
	i, ok := v.asSigned()
	return int8(i), ok
}

// AsInt16 returns the payload of any numeric variant as an int16.
func (v Value) AsInt16() (int16, bool) {
	i, ok := v.asSigned()
	return int16(i), ok
}

// AsInt32 returns the payload of any numeric variant as an int32.
func (v Value) AsInt32() (int32, bool) {
	i, ok := v.asSigned()
	return int32(i), ok
}

// AsInt64 returns the payload of any numeric variant as an int64.
func (v Value) AsInt64() (int64, bool) {
	return v.asSigned()
}

// AsInt returns the payload of any numeric variant as an int.
func (v Value) AsInt() (int, bool) {
	i, ok := v.asSigned()
	return int(i), ok
}

// AsUint8 returns the payload of any numeric variant as a uint8.
func (v Value) AsUint8() (uint8, bool) {
	u, ok := v.asUnsigned()
	return uint8(u), ok
}

// AsUint16 returns the payload of any numeric variant as a uint16.
func (v Value) AsUint16() (uint16, bool) {
	u, ok := v.asUnsigned()
	return uint16(u), ok
}

// AsUint32 returns the payload of any numeric variant as a uint32.
func (v Value) AsUint32() (uint32, bool) {
	u, ok := v.asUnsigned()
	return uint32(u), ok
}

// AsUint64 returns the payload of any numeric variant as a uint64.
func (v Value) AsUint64() (uint64, bool) {
	return v.asUnsigned()
}

// AsUint returns the payload of any numeric variant as a uint.
func (v Value) AsUint() (uint, bool) {
	u, ok := v.asUnsigned()
	return uint(u), ok
}

package value

import "strconv"

// Key is a mapping key that may originate as either a string or an integer.
// The string form is always present; the integer form is derived from it, so
// a key built from the integer 123 and a key built from the string "123" are
// the same Go value and collide in a map. Keys are comparable and immutable.
type Key struct {
	s    string
	n    int64
	hasN bool
}

// KeyFromString builds a key from a string. It never fails; the integer form
// is filled in when the string is a base-10 integer literal.
func KeyFromString(s string) Key {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Key{s: s}
	}
	// Only canonical decimal text gets an integer form, so "007" and "7"
	// remain distinct keys while "7" and int 7 unify.
	if strconv.FormatInt(n, 10) != s {
		return Key{s: s}
	}
	return Key{s: s, n: n, hasN: true}
}

// KeyFromInt builds a key from an integer. It never fails; the string form is
// the integer's decimal text.
func KeyFromInt(n int64) Key {
	return Key{s: strconv.FormatInt(n, 10), n: n, hasN: true}
}

// String returns the key's string form.
func (k Key) String() string {
	return k.s
}

// Int returns the key's integer form, if it has one.
func (k Key) Int() (int64, bool) {
	return k.n, k.hasN
}

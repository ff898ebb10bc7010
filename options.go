package cli

import (
	"fmt"
	"maps"
)

// Options maps option keys to values. Parsed options are keyed by the flag as written on the
// command line in its canonical form, "-x" for short and "--name" for long options.
//
// A flag given once maps to a string ("" for flags without a value). A flag given again is
// promoted to a []string holding every value in command-line order. Defaults may hold values of
// any type; a flag present on the command line replaces its default entirely.
type Options map[string]any

// Has reports whether key is set, either by default or on the command line.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the value of key as a string. For a repeated flag it returns the last value.
// Missing keys and values of other types yield "".
func (o Options) String(key string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[len(v)-1]
		}
	}
	return ""
}

// Strings returns every value of key in command-line order. A single value yields a slice of
// one; a missing key yields nil.
func (o Options) Strings(key string) []string {
	switch v := o[key].(type) {
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	}
	return nil
}

// Count returns how many times key was given on the command line, which is the usual way to read
// a repeatable switch such as -v -v -v.
func (o Options) Count(key string) int {
	switch v := o[key].(type) {
	case string:
		return 1
	case []string:
		return len(v)
	}
	return 0
}

// Clone returns a shallow copy of o. Promoted value slices are copied.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	for k, v := range out {
		if s, ok := v.([]string); ok {
			out[k] = append([]string(nil), s...)
		}
	}
	return out
}

// GetOption retrieves an option value by key, with type inference. Example usage:
//
//	config := cli.GetOption[string](opts, "-c")
//	tags := cli.GetOption[[]string](opts, "--tag")
//	limit := cli.GetOption[int](opts, "--limit") // set through Defaults
//
// If the key is missing the zero value of T is returned. If the stored value has a different
// type, GetOption panics: a mismatch between the declared defaults and the reading code is a
// programming error, not a user error.
func GetOption[T any](o Options, key string) T {
	v, ok := o[key]
	if !ok {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for option %q: stored %T, requested %T", key, v, *new(T)))
	}
	return t
}

// collect appends value to the entry of key following the repeat-collapsing rule.
func (o Options) collect(key, value string) {
	switch existing := o[key].(type) {
	case nil:
		o[key] = value
	case string:
		o[key] = []string{existing, value}
	case []string:
		o[key] = append(existing, value)
	}
}

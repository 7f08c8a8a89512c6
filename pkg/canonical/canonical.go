// Package canonical flattens heterogeneous field values into the single
// delimited string that is hashed before signing.
//
// Fields are joined with Delimiter and no escaping is applied. A field whose
// text contains '|' therefore shifts the field boundaries of the canonical
// form: ("a|b", "c") and ("a", "b|c") encode identically. Callers that accept
// untrusted field text must reject or encode the delimiter themselves.
package canonical

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Delimiter separates fields, sequence elements and map entries.
const Delimiter = "|"

// Pair is one entry of an ordered Map.
type Pair struct {
	Key   any
	Value any
}

// Map is a key-value mapping that keeps the order its entries were given in.
// Use it instead of a Go map when the canonical form must follow a specific
// entry order.
type Map []Pair

// Concatenate returns the canonical form of values. Each value contributes one
// fragment:
//
//   - nil, including typed nil pointers, slices and maps, contributes "";
//   - a slice or array contributes its elements' string forms joined by
//     Delimiter, without flattening nested containers;
//   - a Map contributes "key|value" for each entry in order;
//   - a Go map contributes "key|value" for each entry in ascending order of
//     the keys' string forms, then key types, then values' string forms;
//   - an error contributes its Error text;
//   - any other value contributes its fmt.Sprint form.
//
// The result is deterministic for a given sequence of values.
func Concatenate(values ...any) string {
	fragments := make([]string, len(values))
	for i, v := range values {
		fragments[i] = fragment(v)
	}
	return strings.Join(fragments, Delimiter)
}

func fragment(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case Map:
		return joinPairs(t)
	case fmt.Stringer, error:
		if isNil(reflect.ValueOf(v)) {
			return ""
		}
		return scalar(t)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ""
		}
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = stringForm(rv.Index(i))
		}
		return strings.Join(elems, Delimiter)
	case reflect.Map:
		if rv.IsNil() {
			return ""
		}
		return joinPairs(sortedPairs(rv))
	default:
		return fmt.Sprint(rv.Interface())
	}
}

func joinPairs(m Map) string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = scalar(p.Key) + Delimiter + scalar(p.Value)
	}
	return strings.Join(parts, Delimiter)
}

func sortedPairs(rv reflect.Value) Map {
	m := make(Map, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m = append(m, Pair{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
	}
	// Keys of different types can print alike, so ties fall back to the
	// key's type and then the value.
	sort.Slice(m, func(i, j int) bool {
		if ki, kj := scalar(m[i].Key), scalar(m[j].Key); ki != kj {
			return ki < kj
		}
		if ti, tj := fmt.Sprintf("%T", m[i].Key), fmt.Sprintf("%T", m[j].Key); ti != tj {
			return ti < tj
		}
		return scalar(m[i].Value) < scalar(m[j].Value)
	})
	return m
}

// stringForm renders a sequence element without descending into it.
func stringForm(rv reflect.Value) string {
	if !rv.IsValid() || isNil(rv) {
		return ""
	}
	return scalar(rv.Interface())
}

// scalar renders v with fmt, following pointers so that the result never
// depends on a memory address.
func scalar(v any) string {
	if v == nil {
		return ""
	}
	switch v.(type) {
	case fmt.Stringer, error:
		if isNil(reflect.ValueOf(v)) {
			return ""
		}
		return fmt.Sprint(v)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if isNil(rv) {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

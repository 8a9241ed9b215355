// Package equality implements the structural equality kernel shared by
// every container type, plus absent-marker detection for nullable
// construction.
package equality

import (
	"math"
	"reflect"
)

// Deep reports whether two payloads are structurally equal. Containers
// delegate their Equals here so that equality stays reflexive,
// symmetric and transitive regardless of the payload type. It follows
// reflect.DeepEqual semantics except that NaN compares equal to
// itself, wherever it is nested; without that, a container holding NaN
// would not equal itself.
func Deep(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return deepValue(va, vb, make(map[visit]bool))
}

// visit tracks compared reference pairs so cyclic payloads terminate.
type visit struct {
	a, b uintptr
	typ  reflect.Type
}

func seenVisit(a, b reflect.Value, seen map[visit]bool) bool {
	v := visit{a.Pointer(), b.Pointer(), a.Type()}
	if seen[v] {
		return true
	}
	seen[v] = true
	return false
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func deepValue(a, b reflect.Value, seen map[visit]bool) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatEqual(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return floatEqual(real(ca), real(cb)) && floatEqual(imag(ca), imag(cb))
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return deepValue(a.Elem(), b.Elem(), seen)
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		if a.IsNil() || b.IsNil() {
			return false
		}
		if seenVisit(a, b, seen) {
			return true
		}
		return deepValue(a.Elem(), b.Elem(), seen)
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		if a.Len() == 0 || a.Pointer() == b.Pointer() {
			return true
		}
		if seenVisit(a, b, seen) {
			return true
		}
		for i := 0; i < a.Len(); i++ {
			if !deepValue(a.Index(i), b.Index(i), seen) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !deepValue(a.Index(i), b.Index(i), seen) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		if seenVisit(a, b, seen) {
			return true
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !deepValue(iter.Value(), bv, seen) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !deepValue(a.Field(i), b.Field(i), seen) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Nilish reports whether v is an absent marker: an untyped nil, or a
// typed nil pointer, map, slice, function, channel or interface.
// Non-nilable kinds are never absent markers.
func Nilish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

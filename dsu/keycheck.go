package dsu

import (
	"fmt"
	"reflect"
)

// needsKeyCheck reports whether values of t can be unusable as map keys even though
// t satisfies comparable: interfaces may hold slices, maps or funcs, and floating
// point values may be NaN.
func needsKeyCheck(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return needsKeyCheck(t.Elem())
	case reflect.Struct:
		if !t.Comparable() {
			return false
		}
		for i := 0; i < t.NumField(); i++ {
			if needsKeyCheck(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}

// checkKey rejects keys that would panic on hashing or could never be looked up again.
func checkKey[K comparable](k K) error {
	// Take the address so an interface-typed K keeps its interface kind.
	if !hashable(reflect.ValueOf(&k).Elem()) {
		return fmt.Errorf("%w: %T is not hashable", ErrInvalidKey, any(k))
	}
	if k != k {
		return fmt.Errorf("%w: %v is not equal to itself", ErrInvalidKey, any(k))
	}

	return nil
}

// hashable reports whether v can be used as a map key without panicking.
// Unlike reflect.Value.Comparable it accepts nil interfaces, which hash fine.
// Arrays and structs must have a comparable type even when they hold no elements;
// their interface-typed parts are then checked value by value.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

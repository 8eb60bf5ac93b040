package reactive

import "reflect"

// Identical reports whether two values are the same by reference/identity.
// This is the runtime's only change-detection primitive: pointer-shaped
// values compare by pointer, comparable scalars by ==, and everything else
// is treated as changed. In-place mutation of an object held by a field is
// therefore invisible until the field is reassigned.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Len() == rb.Len() && (ra.Len() == 0 || ra.Pointer() == rb.Pointer())
	default:
		if ra.Comparable() {
			return a == b
		}
		return false
	}
}

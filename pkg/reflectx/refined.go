// Package reflectx holds the few reflection helpers the module needs.
package reflectx

import "reflect"

// IsRefinedType reports whether value is exactly the type named by the
// generic parameter R. It is the runtime counterpart of a type assertion,
// used where the candidate type only exists as a reflect.Type.
//
// Parameters:
// - value: The reflect.Type to be checked.
//
// Returns:
// - bool: True if the type of the generic parameter R matches the provided reflect.Type, otherwise false.
func IsRefinedType[R any](value reflect.Type) bool {
	return reflect.TypeFor[R]() == value
}

// Package object provides the runtime value types of the sl evaluator.
//
// Values are immutable. A type switch is the usual way to work with them:
//
//	switch obj := obj.(type) {
//	case *object.Int:
//		// do something with obj.Value()
//	case *object.Double:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string name of
// the object type, such as "int" or "double".
package object

// Type of an object as a string.
type Type string

// Type constants
const (
	INT       Type = "int"
	DOUBLE    Type = "double"
	STRING    Type = "string"
	CHAR      Type = "char"
	UNDEFINED Type = "undefined"
)

// Object is the interface that all runtime values implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a debug representation of the object, as shown in
	// stack dumps. Strings keep any surrounding quotes.
	Inspect() string

	// String returns the text written by the print builtins.
	String() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Equals returns true if the given object has the same type and value.
	Equals(other Object) bool
}

// Undefined is the result of an operation with no matching promotion rule. It
// must never be pushed onto the runtime stack.
var Undefined = &UndefinedType{}

// UndefinedType is the type of the Undefined sentinel.
type UndefinedType struct{}

func (u *UndefinedType) Type() Type             { return UNDEFINED }
func (u *UndefinedType) Inspect() string        { return "undefined" }
func (u *UndefinedType) String() string         { return "undefined" }
func (u *UndefinedType) Interface() interface{} { return nil }

func (u *UndefinedType) Equals(other Object) bool {
	_, ok := other.(*UndefinedType)
	return ok
}

// IsUndefined reports whether obj is the Undefined sentinel or nil.
func IsUndefined(obj Object) bool {
	if obj == nil {
		return true
	}
	_, ok := obj.(*UndefinedType)
	return ok
}

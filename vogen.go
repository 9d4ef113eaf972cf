// Package vogen provides markers for value object code generation.
//
// A value object is an immutable wrapper around exactly one primitive value,
// identified by that value rather than by reference. Wrapping identifiers and
// quantities in their own types stops a ProductID from being passed where a
// CategoryID is expected, even though both are int32 underneath.
//
// To start with vogen, add a build constraint to files declaring value
// objects:
//
//	//go:build vogen
//
// A value object is declared as a struct embedding exactly one marker. The
// marker selects the wrapped primitive:
//
//	// source:
//	type UserName struct{ vogen.String }
//
//	// generated: (simplified)
//	type UserName struct{ value string }
//
//	func NewUserName(value string) UserName
//	func UserNameFromString(value string) UserName
//	func (v UserName) Value() string
//	func (v UserName) Equal(other UserName) bool
//	func (v UserName) NotEqual(other UserName) bool
//	func (v UserName) Equals(other any) bool
//	func (v UserName) Hash() uint64
//	func (v UserName) String() string
//
// After declaring value objects, run the vogen command. It will generate
// vogen_gen.go for your package:
//
//	go run github.com/sublee/vogen/cmd/vogen
//
// # Property Names
//
// The wrapped value is exposed by a method named "Value". A struct tag on the
// marker renames it:
//
//	type CustomizedPropertyName struct {
//		vogen.String `vogen:"name=StringValue"`
//	}
//
// # Shapes
//
// Embedding a marker by value generates a value type. Its instances are
// compared by the native == operator as well, and two different value objects
// are never comparable with each other at compile time.
//
// Embedding a marker by pointer generates a reference type. The constructor
// returns a pointer, and the comparison methods treat nil as a legal operand:
//
//	type Rate struct{ *vogen.Float64 }
//
//	// generated: (simplified)
//	func NewRate(value float64) *Rate
//	func (v *Rate) Equal(other *Rate) bool // nil-safe
//
// Value objects must be declared at package level. Declarations inside
// functions are reported as errors because Go does not allow methods on
// function-local types.
package vogen

// marker makes the marker types distinct from user types with the same shape.
// It is unexported so that the markers can only be embedded, never built.
type marker struct{}

// String marks a value object wrapping a string.
type String struct{ _ marker }

// Int32 marks a value object wrapping an int32.
type Int32 struct{ _ marker }

// Int64 marks a value object wrapping an int64.
type Int64 struct{ _ marker }

// Float32 marks a value object wrapping a float32.
type Float32 struct{ _ marker }

// Float64 marks a value object wrapping a float64.
type Float64 struct{ _ marker }

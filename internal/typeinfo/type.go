package typeinfo

import "go/types"

// Type describes a type information. It holds information of [types.Type] that
// is necessary from the vogen's perspective, which mostly means embedded
// fields of value object declarations.
type Type struct {
	T types.Type

	Pointer *types.Pointer
	Named   *types.Named

	Elem *Type
}

func (t Type) Type() types.Type { return t.T }

func (t Type) IsPointer() bool { return t.Pointer != nil }
func (t Type) IsNamed() bool   { return t.Named != nil }

// TypeOf inspects the given type and returns a new [Type]. Aliases are
// resolved to their actual types, so an alias of a marker is still recognized
// as the marker.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		return Type{T: t, Named: tt}
	}
	// Other kinds cannot be marker types. They are kept opaque.
	return Type{T: t}
}

// Deref returns the element type if the type is a pointer. For type of *X, it
// returns type of X. If the type is not a pointer, it returns the type itself.
func (t Type) Deref() Type {
	if t.IsPointer() {
		return (*t.Elem).Deref()
	}
	return t
}

// IsGeneric reports whether the type declares type parameters which are not
// instantiated yet.
func (t Type) IsGeneric() bool {
	if !t.IsNamed() {
		return false
	}
	return t.Named.TypeParams().Len() != 0 && t.Named.TypeArgs().Len() == 0
}

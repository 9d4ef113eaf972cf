package typeinfo

import (
	"fmt"
	"go/types"
)

// Kind is the primitive kind a value object wraps. The set is closed: vogen
// provides exactly one marker for each kind.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
)

// Kinds returns all valid kinds in the order they are processed.
func Kinds() []Kind {
	return []Kind{KindString, KindInt32, KindInt64, KindFloat32, KindFloat64}
}

var kindBasics = map[Kind]types.BasicKind{
	KindString:  types.String,
	KindInt32:   types.Int32,
	KindInt64:   types.Int64,
	KindFloat32: types.Float32,
	KindFloat64: types.Float64,
}

var kindMarkers = map[Kind]string{
	KindString:  "String",
	KindInt32:   "Int32",
	KindInt64:   "Int64",
	KindFloat32: "Float32",
	KindFloat64: "Float64",
}

// Basic returns the predeclared type of the wrapped primitive.
//
// e.g., KindInt32.Basic() => types.Typ[types.Int32]
func (k Kind) Basic() *types.Basic {
	basic, ok := kindBasics[k]
	if !ok {
		panic(fmt.Errorf("invalid kind: %d", k))
	}
	return types.Typ[basic]
}

// Marker returns the name of the marker type in the vogen package. The name is
// also used for the conversion method back to the primitive.
//
// e.g., KindInt32.Marker() => "Int32"
func (k Kind) Marker() string {
	name, ok := kindMarkers[k]
	if !ok {
		panic(fmt.Errorf("invalid kind: %d", k))
	}
	return name
}

// String returns the Go name of the wrapped primitive, such as "int32".
func (k Kind) String() string {
	if _, ok := kindBasics[k]; !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return k.Basic().Name()
}

// IsFloat reports whether the kind wraps a floating-point number.
func (k Kind) IsFloat() bool {
	return k.Basic().Info()&types.IsFloat != 0
}

// BitSize returns the size of the wrapped number in bits. It returns 0 for
// non-numeric kinds.
func (k Kind) BitSize() int {
	switch k {
	case KindInt32, KindFloat32:
		return 32
	case KindInt64, KindFloat64:
		return 64
	}
	return 0
}

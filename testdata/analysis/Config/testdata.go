//go:build vogen

package testdata

import (
	"fmt"

	"github.com/sublee/vogen"
)

type S = vogen.String

type Twice struct { // want `Twice must embed exactly one vogen.String, found 2`
	vogen.String
	S
}

type Extra struct {
	vogen.Int32
	Name string // want `value object Extra cannot declare field Name`
}

type Embedded struct {
	vogen.Int32
	fmt.Stringer // want `value object Embedded cannot embed fmt.Stringer besides markers`
}

type Generic[T any] struct{ vogen.Int64 } // want `value object Generic cannot be generic`

type F = vogen.Float32

type Mixed struct { // want `Mixed must embed exactly one vogen.Float32, found 2`
	*vogen.Float32
	F // want `value object Mixed cannot mix pointer and non-pointer markers`
}

type UnknownOption struct {
	vogen.String `vogen:"label=X"` // want `unknown vogen tag option "label"`
}

type NoValue struct {
	vogen.String `vogen:"name"` // want `invalid vogen tag option "name"; want key=value`
}

type EmptyName struct {
	vogen.String `vogen:"name="` // want `property name must not be empty`
}

type InvalidName struct {
	vogen.String `vogen:"name=my-value"` // want `property name "my-value" is not a valid identifier`
}

//go:build vogen

package testdata

import (
	"strings"

	"github.com/sublee/vogen"
)

// UserName is the name of a user.
type UserName struct{ vogen.String }

type CustomizedPropertyName struct {
	vogen.String `vogen:"name=StringValue"`
}

type (
	ProductID  struct{ vogen.Int32 }
	CategoryID struct{ vogen.Int32 }
	ConsumeID  struct{ vogen.Int64 }
	Scale      struct{ vogen.Float32 }
	Rate       struct{ *vogen.Float64 }
)

type S = vogen.String

type Aliased struct{ S }

// Builder is not a value object.
type Builder struct{ strings.Builder }

//go:build vogen

package testdata

import "github.com/sublee/vogen"

type UserName struct{ vogen.String }

var marker vogen.String // want `cannot use vogen.String outside value object declarations`

type Holder struct {
	Name vogen.Int32 // want `cannot use vogen.Int32 outside value object declarations`
}

func F(vogen.Int64) {} // want `cannot use vogen.Int64 outside value object declarations`

// Aliases are fine.
type S = vogen.Float32

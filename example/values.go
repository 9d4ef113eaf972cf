//go:build vogen

package main

import "github.com/sublee/vogen"

// UserName is the name of a user.
type UserName struct{ vogen.String }

type CustomizedPropertyName struct {
	vogen.String `vogen:"name=StringValue"`
}

type (
	ProductID  struct{ vogen.Int32 }
	CategoryID struct{ vogen.Int32 }
)

// Rate is passed by reference.
type Rate struct{ *vogen.Float64 }

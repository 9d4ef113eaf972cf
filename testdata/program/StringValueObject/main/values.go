//go:build vogen

package main

import "github.com/sublee/vogen"

type UserName struct{ vogen.String }

type CustomizedPropertyName struct {
	vogen.String `vogen:"name=StringValue"`
}

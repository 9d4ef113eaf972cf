//go:build vogen

package main

import "github.com/sublee/vogen"

type UserName struct{ vogen.String }

func local() {
	type Local struct{ vogen.Int32 }
}

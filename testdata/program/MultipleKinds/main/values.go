//go:build vogen

package main

import "github.com/sublee/vogen"

type Both struct {
	vogen.String
	vogen.Int64
}

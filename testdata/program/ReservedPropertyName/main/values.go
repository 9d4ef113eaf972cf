//go:build vogen

package main

import "github.com/sublee/vogen"

type Name struct {
	vogen.String `vogen:"name=Hash"`
}

type Count struct {
	vogen.Int64 `vogen:"name=Int64"`
}

//go:build vogen

package main

import "github.com/sublee/vogen"

type (
	ProductID  struct{ vogen.Int32 }
	CategoryID struct{ vogen.Int32 }
)

type ConsumeID struct{ vogen.Int64 }

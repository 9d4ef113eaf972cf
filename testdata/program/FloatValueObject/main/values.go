//go:build vogen

package main

import "github.com/sublee/vogen"

type Scale struct{ vogen.Float32 }

// Rate is passed by reference.
type Rate struct{ *vogen.Float64 }

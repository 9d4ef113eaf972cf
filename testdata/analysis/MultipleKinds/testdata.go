//go:build vogen

package testdata

import "github.com/sublee/vogen"

type Both struct { // want `Both declares multiple value kinds: string, int64`
	vogen.String
	vogen.Int64
}

type Single struct{ vogen.Int64 }

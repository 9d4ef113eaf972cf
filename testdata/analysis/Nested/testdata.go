//go:build vogen

package testdata

import "github.com/sublee/vogen"

type Outer struct{ vogen.String }

func F1() {
	type Local struct{ vogen.Int32 } // want `value object Local must be declared at package level`
}

var F2 = func() {
	type Local struct{ *vogen.Float64 } // want `value object Local must be declared at package level`
}

type T struct{}

func (T) F3() {
	func() {
		type Deep struct{ vogen.String } // want `value object Deep must be declared at package level`
	}()
}

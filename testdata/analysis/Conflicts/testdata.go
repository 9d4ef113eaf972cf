//go:build vogen

package testdata

import "github.com/sublee/vogen"

type A struct { // want `property name Equal of A conflicts with generated method`
	vogen.String `vogen:"name=Equal"`
}

type B struct { // want `property name Int32 of B conflicts with generated method`
	vogen.Int32 `vogen:"name=Int32"`
}

func NewC() {}

type C struct{ vogen.Float64 } // want `NewC is already declared at`

type D struct{ vogen.String } // want `D already declares method Hash at`

func (D) Hash() uint64 { return 0 }

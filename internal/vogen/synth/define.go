package synth

import (
	"fmt"

	"github.com/sublee/vogen/internal/codefmt"
	"github.com/sublee/vogen/internal/typeinfo"
	"github.com/sublee/vogen/internal/vogen/parse"
)

// WriteDefineCode writes the definition of the value object type and its
// functions. Imports are registered to the writer.
//
//	// UserName is a value object wrapping string.
//	type UserName struct {
//		value string
//	}
//
//	func NewUserName(value string) UserName
//	func UserNameFromString(value string) UserName
//	func (v UserName) Value() string
//	func (v UserName) Equal(other UserName) bool
//	func (v UserName) NotEqual(other UserName) bool
//	func (v UserName) Equals(other any) bool
//	func (v UserName) Hash() uint64
//	func (v UserName) String() string
func (d *Definition) WriteDefineCode(w *codefmt.Writer) {
	cfg := d.cfg
	name := cfg.Name
	prim := cfg.Kind.String()
	ref := cfg.Shape == parse.ReferenceShape

	// T or *T for receivers, parameters and results
	typ := name
	if ref {
		typ = "*" + name
	}

	maphash := w.Import("hash/maphash", "maphash")
	seed := w.Name(codefmt.Unexport(name) + "HashSeed")

	d.writeDoc(w)
	w.Printf("type %s struct {\n", name)
	w.Printf("%s %s\n", d.storage, prim)
	w.Printf("}\n\n")

	w.Printf("var %s = %s.MakeSeed()\n\n", seed, maphash)

	// Constructor
	w.Printf("// %s creates a new %s wrapping the value.\n", constructorName(cfg), name)
	w.Printf("func %s(value %s) %s {\n", constructorName(cfg), prim, typ)
	if ref {
		w.Printf("return &%s{%s: value}\n", name, d.storage)
	} else {
		w.Printf("return %s{%s: value}\n", name, d.storage)
	}
	w.Printf("}\n\n")

	// Primitive to value object
	w.Printf("// %s converts %s to %s.\n", converterName(cfg), article(prim), name)
	w.Printf("func %s(value %s) %s {\n", converterName(cfg), prim, typ)
	w.Printf("return %s(value)\n", constructorName(cfg))
	w.Printf("}\n\n")

	// Accessor
	w.Printf("// %s returns the wrapped %s.\n", cfg.PropertyName, prim)
	w.Printf("func (v %s) %s() %s {\n", typ, cfg.PropertyName, prim)
	w.Printf("return v.%s\n", d.storage)
	w.Printf("}\n\n")

	// Structural equality
	w.Printf("// Equal reports whether v and other wrap the same value.\n")
	w.Printf("func (v %s) Equal(other %s) bool {\n", typ, typ)
	if ref {
		w.Printf("if v == other {\n")
		w.Printf("return true\n")
		w.Printf("}\n")
		w.Printf("if v == nil || other == nil {\n")
		w.Printf("return false\n")
		w.Printf("}\n")
	}
	w.Printf("return v.%s == other.%s\n", d.storage, d.storage)
	w.Printf("}\n\n")

	w.Printf("// NotEqual reports whether v and other wrap different values.\n")
	w.Printf("func (v %s) NotEqual(other %s) bool {\n", typ, typ)
	w.Printf("return !v.Equal(other)\n")
	w.Printf("}\n\n")

	w.Printf("// Equals reports whether other is of type %s and wraps the same value.\n", typ)
	w.Printf("// It returns false for any other type.\n")
	w.Printf("func (v %s) Equals(other any) bool {\n", typ)
	w.Printf("o, ok := other.(%s)\n", typ)
	w.Printf("return ok && v.Equal(o)\n")
	w.Printf("}\n\n")

	// Hash
	w.Printf("// Hash returns the hash of the wrapped %s. Equal value objects have the\n", prim)
	w.Printf("// same hash.\n")
	w.Printf("func (v %s) Hash() uint64 {\n", typ)
	if ref {
		w.Printf("if v == nil {\n")
		w.Printf("return 0\n")
		w.Printf("}\n")
	}
	w.Printf("return %s.Comparable(%s, v.%s)\n", maphash, seed, d.storage)
	w.Printf("}\n\n")

	// String conversion
	w.Printf("// String returns the wrapped value in its own string form.\n")
	w.Printf("func (v %s) String() string {\n", typ)
	if ref {
		w.Printf("if v == nil {\n")
		w.Printf("return %q\n", "<nil>")
		w.Printf("}\n")
	}
	w.Printf("return %s\n", d.formatValue(w, "v."+d.storage))
	w.Printf("}\n")

	// Value object to primitive
	if cfg.Kind != typeinfo.KindString {
		w.Printf("\n")
		w.Printf("// %s converts the %s to %s.\n", cfg.Kind.Marker(), name, article(prim))
		w.Printf("func (v %s) %s() %s {\n", typ, cfg.Kind.Marker(), prim)
		w.Printf("return v.%s\n", d.storage)
		w.Printf("}\n")
	}
}

// formatValue returns an expression which converts the value expression to a
// string.
func (d *Definition) formatValue(w *codefmt.Writer, expr string) string {
	kind := d.cfg.Kind
	switch {
	case kind == typeinfo.KindString:
		return expr
	case kind.IsFloat():
		strconv := w.Import("strconv", "strconv")
		arg := expr
		if kind != typeinfo.KindFloat64 {
			arg = "float64(" + expr + ")"
		}
		return fmt.Sprintf("%s.FormatFloat(%s, 'g', -1, %d)", strconv, arg, kind.BitSize())
	default:
		strconv := w.Import("strconv", "strconv")
		arg := expr
		if kind != typeinfo.KindInt64 {
			arg = "int64(" + expr + ")"
		}
		return fmt.Sprintf("%s.FormatInt(%s, 10)", strconv, arg)
	}
}

// article prefixes "a" or "an" to the name of a wrapped primitive.
func article(word string) string {
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + word
	}
	return "a " + word
}

package parse

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Shape is how a value object is passed around.
type Shape int

const (
	// ValueShape is a value object copied by value. Its marker is embedded by
	// value.
	ValueShape Shape = iota

	// ReferenceShape is a value object passed by pointer. Its marker is
	// embedded by pointer and nil is a legal operand of comparisons.
	ReferenceShape
)

func (s Shape) String() string {
	switch s {
	case ValueShape:
		return "value"
	case ReferenceShape:
		return "reference"
	}
	return "invalid"
}

// Candidate is a struct declaration in a vogen file which embeds at least one
// field. Whether an embedded field is a vogen marker is decided later by
// [Parser.Resolve].
type Candidate struct {
	Name string
	Obj  *types.TypeName
	Spec *ast.TypeSpec
	Doc  *ast.CommentGroup

	Shape Shape

	// Annotations are the embedded fields.
	Annotations []*ast.Field

	// Nested is true if the declaration is inside a function body.
	Nested bool
}

func (c Candidate) Pos() token.Pos          { return c.Spec.Name.Pos() }
func (c Candidate) End() token.Pos          { return c.Spec.Name.End() }
func (c Candidate) Object() types.Object    { return c.Obj }
func (c Candidate) Struct() *ast.StructType { return c.Spec.Type.(*ast.StructType) }

// Scan collects candidates from all vogen files in declaration order. Type
// declarations inside function bodies are collected as well, marked as nested.
func (p *Parser) Scan() []Candidate {
	cands := linkedhashmap.New()
	for _, file := range p.VogenGoFiles() {
		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.GenDecl:
				if decl.Tok == token.TYPE {
					p.scanGenDecl(cands, decl, false)
					continue
				}
				// var f = func() { type T struct{ ... } }
				ast.Inspect(decl, func(node ast.Node) bool {
					if lit, ok := node.(*ast.FuncLit); ok {
						p.scanBody(cands, lit.Body)
						return false
					}
					return true
				})
			case *ast.FuncDecl:
				if decl.Body != nil {
					p.scanBody(cands, decl.Body)
				}
			}
		}
	}

	out := make([]Candidate, 0, cands.Size())
	for _, v := range cands.Values() {
		out = append(out, v.(Candidate))
	}
	return out
}

// scanBody collects candidates declared anywhere in a function body, including
// function literals.
func (p *Parser) scanBody(cands *linkedhashmap.Map, body *ast.BlockStmt) {
	ast.Inspect(body, func(node ast.Node) bool {
		if decl, ok := node.(*ast.GenDecl); ok {
			p.scanGenDecl(cands, decl, true)
		}
		return true
	})
}

func (p *Parser) scanGenDecl(cands *linkedhashmap.Map, decl *ast.GenDecl, nested bool) {
	if decl.Tok != token.TYPE {
		return
	}

	for _, spec := range decl.Specs {
		spec := spec.(*ast.TypeSpec)
		cand, ok := p.scanTypeSpec(spec, nested)
		if !ok {
			continue
		}

		cand.Doc = spec.Doc
		if cand.Doc == nil && !decl.Lparen.IsValid() {
			// type X struct{ ... }
			cand.Doc = decl.Doc
		}

		if _, ok := cands.Get(cand.Obj); ok {
			continue
		}
		cands.Put(cand.Obj, cand)
	}
}

func (p *Parser) scanTypeSpec(spec *ast.TypeSpec, nested bool) (Candidate, bool) {
	if spec.Assign.IsValid() {
		// type X = Y
		return Candidate{}, false
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return Candidate{}, false
	}

	obj, ok := p.Pkg().TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return Candidate{}, false
	}

	cand := Candidate{
		Name:   spec.Name.Name,
		Obj:    obj,
		Spec:   spec,
		Shape:  ValueShape,
		Nested: nested,
	}
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		cand.Annotations = append(cand.Annotations, field)
		if _, ok := field.Type.(*ast.StarExpr); ok {
			cand.Shape = ReferenceShape
		}
	}
	if len(cand.Annotations) == 0 {
		return Candidate{}, false
	}
	return cand, true
}

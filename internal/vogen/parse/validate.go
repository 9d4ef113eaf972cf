package parse

import (
	"errors"
	"go/ast"
	"strings"

	"github.com/sublee/vogen/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Most rules are checked per value object by [Parser.ParseConfig]. But some
// rules need to be checked globally. That's what this function does.
func (p *Parser) Validate(cands []Candidate, markers Markers) error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
	}
	errs = errors.Join(errs, p.validateMarkerUsages(cands, markers))
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/vogen" have
// "//go:build vogen" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	var vogenImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsVogenImport(strings.Trim(imp.Path.Value, `"`)) {
			vogenImport = imp
			break
		}
	}
	if vogenImport == nil {
		return nil
	}

	if HasGoBuildVogen(file) {
		return nil
	}

	return codefmt.Errorf(p, vogenImport, `file must have "//go:build vogen" constraint when importing vogen`)
}

// validateMarkerUsages checks illegal references to markers.
//
// Markers are only allowed as embedded fields of value object declarations or
// in type aliases. Any other usages are illegal, because the declarations
// embedding markers are replaced at code generation, and a variable of a
// marker type means nothing.
func (p *Parser) validateMarkerUsages(cands []Candidate, markers Markers) error {
	if !markers.Found() {
		return nil
	}

	type span struct{ pos, end int }
	var allowed []span
	for _, cand := range cands {
		if cand.Nested {
			// Reported by the synthesizer.
			allowed = append(allowed, span{int(cand.Spec.Pos()), int(cand.Spec.End())})
			continue
		}
		for _, field := range cand.Annotations {
			allowed = append(allowed, span{int(field.Type.Pos()), int(field.Type.End())})
		}
	}
	isAllowed := func(n ast.Node) bool {
		for _, s := range allowed {
			if s.pos <= int(n.Pos()) && int(n.End()) <= s.end {
				return true
			}
		}
		return false
	}

	var errs error
	for _, file := range p.VogenGoFiles() {
		ast.Inspect(file, func(node ast.Node) bool {
			if spec, ok := node.(*ast.TypeSpec); ok && spec.Assign.IsValid() {
				// type S = vogen.String
				return false
			}

			id, ok := node.(*ast.Ident)
			if !ok {
				return true
			}

			obj := p.Pkg().TypesInfo.Uses[id]
			if obj == nil {
				return true
			}
			if _, ok := markers.KindOfObj(obj); !ok {
				return true
			}
			if isAllowed(id) {
				return true
			}

			err := codefmt.Errorf(p, id, "cannot use %o outside value object declarations", obj)
			errs = errors.Join(errs, err)
			return true
		})
	}
	return errs
}

package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
)

// IsVogenImport reports whether the import path refers to the vogen package.
// Vendored paths are normalized.
func IsVogenImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/sublee/vogen"
}

// Parser parses an AST of the underlying package to collect value object
// declarations.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// VogenGoFiles returns the Go files that have a "//go:build vogen" constraint.
func (p *Parser) VogenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if HasGoBuildVogen(file) {
			files = append(files, file)
		}
	}
	return files
}

// HasGoBuildVogen checks if the file has a "//go:build vogen" constraint. The
// file counts only if the constraint requires the vogen tag, so
// "//go:build !vogen" of generated files does not.
func HasGoBuildVogen(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			// Build constraints only appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			with := expr.Eval(func(tag string) bool { return true })
			without := expr.Eval(func(tag string) bool { return tag != "vogen" })
			return with && !without
		}
	}
	return false
}

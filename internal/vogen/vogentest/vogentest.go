// Package vogentest loads in-memory packages for tests. The vogen package is
// served from [parse.MarkerSource], so markers can be resolved without a
// module cache or the go command.
package vogentest

import (
	"go/ast"
	"go/build/constraint"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/vogen/internal/vogen/parse"
)

// PkgPath is the import path of packages loaded by [Load].
const PkgPath = "example.com/sample"

const vogenPath = "github.com/sublee/vogen"

// Check parses and type-checks the files as a single package, built with the
// vogen tag. Files whose build constraint rejects the tag are skipped. Type
// errors are collected instead of failing.
func Check(t testing.TB, files map[string]string) (*packages.Package, []error) {
	t.Helper()

	fset := token.NewFileSet()
	var syntax []*ast.File
	for _, name := range slices.Sorted(maps.Keys(files)) {
		file, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		require.NoError(t, err)
		if !satisfied(file) {
			continue
		}
		syntax = append(syntax, file)
	}
	require.NotEmpty(t, syntax, "no file to load")

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	var errs []error
	conf := types.Config{
		Importer: &markerImporter{fset: fset, fallback: importer.ForCompiler(fset, "source", nil)},
		Error:    func(err error) { errs = append(errs, err) },
	}
	pkg, _ := conf.Check(PkgPath, fset, syntax, info)

	return &packages.Package{
		ID:        PkgPath,
		Name:      syntax[0].Name.Name,
		PkgPath:   PkgPath,
		Types:     pkg,
		Fset:      fset,
		Syntax:    syntax,
		TypesInfo: info,
	}, errs
}

// Load is like [Check] but fails the test on type errors.
func Load(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()
	pkg, errs := Check(t, files)
	require.Empty(t, errs)
	return pkg
}

// Parser loads the files and creates a parser for the package.
func Parser(t testing.TB, files map[string]string) *parse.Parser {
	t.Helper()
	p, err := parse.New(Load(t, files))
	require.NoError(t, err)
	return p
}

// satisfied reports whether the build constraint of the file is satisfied with
// the vogen tag. Other tags are considered satisfied.
func satisfied(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
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
			return expr.Eval(func(string) bool { return true })
		}
	}
	return true
}

// markerImporter type-checks [parse.MarkerSource] for the vogen package and
// delegates other imports.
type markerImporter struct {
	fset     *token.FileSet
	fallback types.Importer
	vogen    *types.Package
}

func (imp *markerImporter) Import(path string) (*types.Package, error) {
	if !parse.IsVogenImport(path) {
		return imp.fallback.Import(path)
	}
	if imp.vogen != nil {
		return imp.vogen, nil
	}

	file, err := parser.ParseFile(imp.fset, "vogen.go", parse.MarkerSource(), 0)
	if err != nil {
		return nil, err
	}
	pkg, err := (&types.Config{}).Check(vogenPath, imp.fset, []*ast.File{file}, nil)
	if err != nil {
		return nil, err
	}
	imp.vogen = pkg
	return pkg, nil
}

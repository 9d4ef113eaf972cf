package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code. It collects imports required by the
// written code so that the file header can declare them afterwards.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	names   NS
}

// NewWriter creates a new [Writer] for code in the package. The package may be
// nil to write code which is not bound to a loaded package yet.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	var scope *types.Scope
	if pkg != nil && pkg.Types != nil {
		scope = pkg.Types.Scope()
	}
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
		names:   NewNS(scope),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) {
	_, _ = w.fmt.Fprintf(w.w, format, args...)
}

// WithBuf copies the writer and sets a new write buffer. The copy shares the
// collected imports.
func (w *Writer) WithBuf(buf io.Writer) *Writer {
	return &Writer{
		w:       buf,
		pkg:     w.pkg,
		fmt:     w.fmt,
		imports: w.imports,
		names:   w.names,
	}
}

// Name allocates a package-level name which conflicts with neither the package
// scope nor names allocated before by the writer or its copies.
func (w *Writer) Name(name string) string {
	return w.names.Name(name)
}

// Import is a package imported by generated code.
type Import struct {
	Name string
	Path string

	// HasAlias indicates that the import needs an explicit name.
	HasAlias bool
}

// Import adds an import for the package with the given path and name. It
// returns the name to refer the package. The name might be different if it has
// tried to resolve name conflicts with the package scope.
//
//	// strconvName can be used to refer to the "strconv" package.
//	strconvName := w.Import("strconv", "strconv")
//	w.Printf("%s.Itoa(42)", strconvName)
func (w *Writer) Import(path, name string) string {
	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path == path {
			// Already imported with the same name.
			return name
		}
		if ok {
			continue
		}
		if !w.names.Reserve(name) {
			// Shadowed by a package-level declaration.
			continue
		}
		w.imports[name] = Import{Name: name, Path: path, HasAlias: name != lastPathElem(path)}
		return name
	}
	panic("unreachable")
}

// Imports returns the collected imports sorted by path.
func (w *Writer) Imports() []Import {
	imps := make([]Import, 0, len(w.imports))
	for _, imp := range w.imports {
		imps = append(imps, imp)
	}
	slices.SortFunc(imps, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})
	return imps
}

func lastPathElem(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// RewriteImports modifies the given AST node to refer imported packages by the
// names registered in the writer. It keeps merged code free of import name
// conflicts with generated code.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		pkgName, ok := w.pkg.TypesInfo.ObjectOf(pkgIdent).(*types.PkgName)
		if !ok {
			// The qualifier is not a package name.
			return true
		}

		imported := pkgName.Imported()
		newName := w.Import(imported.Path(), imported.Name())
		c.Replace(&ast.SelectorExpr{
			X: &ast.Ident{
				NamePos: pkgIdent.NamePos,
				Name:    newName,
			},
			Sel: &ast.Ident{
				NamePos: pkgIdent.NamePos + token.Pos(len(newName)+1),
				Name:    sel.Sel.Name,
			},
		})
		return false
	}, nil).(T)
}

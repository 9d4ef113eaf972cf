package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger    interface{ Pkg() *packages.Package }
	Poser    interface{ Pos() token.Pos }
	Ender    interface{ End() token.Pos }
	Objecter interface{ Object() types.Object }
	Typer    interface{ Type() types.Type }
)

func (f Formatter) wrapPrintfArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case token.Pos, token.Position, ast.Expr, types.Object, types.Type, Poser, Objecter, Typer:
			wrapped[i] = formatArg{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

type formatArg struct {
	x   any
	fmt Formatter
}

func (f formatArg) object() types.Object {
	switch x := f.x.(type) {
	case types.Object:
		return x
	case Objecter:
		return x.Object()
	}
	if named, ok := types.Unalias(f.typ()).(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

func (f formatArg) typ() types.Type {
	switch x := f.x.(type) {
	case types.Type:
		return x
	case Typer:
		return x.Type()
	case types.Object:
		return x.Type()
	case ast.Expr:
		if f.fmt.TypesInfo != nil {
			return f.fmt.TypesInfo.TypeOf(x)
		}
	}
	return nil
}

func (f formatArg) position() *token.Position {
	var pos token.Pos
	switch x := f.x.(type) {
	case token.Position:
		return &x
	case token.Pos:
		pos = x
	case Poser:
		pos = x.Pos()
	default:
		if obj := f.object(); obj != nil {
			pos = obj.Pos()
		}
	}
	if !pos.IsValid() || f.fmt.Fset == nil {
		return nil
	}
	p := f.fmt.Fset.Position(pos)
	return &p
}

// Format implements fmt.Formatter interface.
//
// Supported verbs:
//
//	%o: types.Object (e.g., *types.TypeName) - qualified name
//	%t: types.Type - qualified type
//	%c: ast.Expr - code form
//	%b: token.Position - file:line:column form
//
// For other verbs, it falls back to the default formatting of fmt package.
func (f formatArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'o':
		obj := f.object()
		if obj == nil {
			fmt.Fprintf(s, "[%%o cannot format %T]", f.x)
			return
		}
		_, _ = io.WriteString(s, f.fmt.Obj(obj))

	case 't':
		typ := f.typ()
		if typ == nil {
			fmt.Fprintf(s, "[%%t cannot format %T]", f.x)
			return
		}
		_, _ = io.WriteString(s, f.fmt.Type(typ))

	case 'c':
		expr, ok := f.x.(ast.Expr)
		if !ok {
			fmt.Fprintf(s, "[%%c cannot format %T]", f.x)
			return
		}
		_, _ = io.WriteString(s, f.fmt.Expr(expr))

	case 'b':
		pos := f.position()
		if pos == nil {
			fmt.Fprintf(s, "[%%b cannot format %T]", f.x)
			return
		}
		_, _ = io.WriteString(s, FormatPosition(*pos))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapPrintfArgs(args)...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapPrintfArgs(args)...)
}

// Sprintf is a shorthand for [Formatter.Sprintf].
func Sprintf(pkger Pkger, format string, args ...any) string {
	return newByPkger(pkger).Sprintf(format, args...)
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }
func Pkg(pkg *packages.Package) Pkger  { return pkger{pkg} }

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }
func Pos(pos token.Pos) Poser  { return poser{pos} }

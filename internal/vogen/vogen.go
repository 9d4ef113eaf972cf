package vogeninternal

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"go/types"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/vogen/internal/codefmt"
	"github.com/sublee/vogen/internal/typeinfo"
	"github.com/sublee/vogen/internal/vogen/parse"
	"github.com/sublee/vogen/internal/vogen/synth"
)

// Vogen generates value object code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. [Generate] never fails and emits every definition which [Build]
// could synthesize, even if [Build] reported errors for other declarations.
type Vogen struct {
	p *parse.Parser

	// defs maps definition keys to the definitions of the declaration in
	// declaration order. A declaration has one definition per kind it embeds.
	defs *linkedhashmap.Map

	// erased holds the declarations replaced by definitions.
	erased map[*types.TypeName]struct{}

	// code caches the generated code. Merging rewrites the syntax trees of the
	// package in place, so it runs only once.
	code      []byte
	generated bool
}

// New creates a new [Vogen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Vogen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	return &Vogen{
		p:      parser,
		defs:   linkedhashmap.New(),
		erased: make(map[*types.TypeName]struct{}),
	}, nil
}

// Build scans value object declarations, resolves their kinds and
// synthesizes definitions. All potential errors are returned by this method.
// It must be called before [Generate].
func (vg *Vogen) Build() error {
	cands := vg.p.Scan()
	markers := vg.p.Markers()

	errs := vg.p.Validate(cands, markers)

	// One pass per kind
	var defs []*synth.Definition
	objs := make(map[*synth.Definition]*types.TypeName)
	for _, kind := range typeinfo.Kinds() {
		for _, m := range vg.p.Resolve(cands, markers, kind) {
			cfg, err := vg.p.ParseConfig(m, markers)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			def, err := synth.Synthesize(cfg)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			defs = append(defs, def)
			objs[def] = m.Obj
		}
	}

	slices.SortStableFunc(defs, func(a, b *synth.Definition) int {
		return cmp.Or(
			cmp.Compare(a.Config().Pos(), b.Config().Pos()),
			cmp.Compare(a.Config().Kind, b.Config().Kind),
		)
	})
	for _, def := range defs {
		var group []*synth.Definition
		if v, ok := vg.defs.Get(def.Key()); ok {
			group = v.([]*synth.Definition)
		}
		vg.defs.Put(def.Key(), append(group, def))
	}

	// A Go type cannot be defined twice, so a declaration with definitions of
	// several kinds stays out of the generated file.
	for _, v := range vg.defs.Values() {
		group := v.([]*synth.Definition)
		if len(group) == 1 {
			vg.erased[objs[group[0]]] = struct{}{}
			continue
		}

		cfg := group[0].Config()
		var names []string
		for _, def := range group {
			names = append(names, def.Config().Kind.String())
		}
		err := codefmt.Errorf(vg.p, cfg, "%s declares multiple value kinds: %s", cfg.Name, strings.Join(names, ", "))
		errs = errors.Join(errs, err)
	}

	return errs
}

// Definitions returns the synthesized definitions in declaration order,
// including the ones left out of the generated file.
func (vg *Vogen) Definitions() []*synth.Definition {
	var defs []*synth.Definition
	for _, v := range vg.defs.Values() {
		defs = append(defs, v.([]*synth.Definition)...)
	}
	return defs
}

// DefinitionsOf finds the definitions by their key, such as
// "example.com/sample.UserName_value_object". There is one definition for each
// kind the declaration embeds.
func (vg *Vogen) DefinitionsOf(key string) []*synth.Definition {
	v, ok := vg.defs.Get(key)
	if !ok {
		return nil
	}
	return v.([]*synth.Definition)
}

// emitted returns the definitions to be written in the generated file.
func (vg *Vogen) emitted() []*synth.Definition {
	var defs []*synth.Definition
	for _, v := range vg.defs.Values() {
		if group := v.([]*synth.Definition); len(group) == 1 {
			defs = append(defs, group[0])
		}
	}
	return defs
}

// Generate generates value object code for the package. It must be called
// after [Build]. It returns nil if the package has no value object to emit.
// The same output is returned on every call.
func (vg *Vogen) Generate() []byte {
	if vg.generated {
		return vg.code
	}
	vg.generated = true

	defs := vg.emitted()
	if len(defs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, vg.p.Pkg())
	writeDefineCode(w, defs)
	vg.mergeCode(w)
	vg.code = vg.frameCode(w, &buf)
	return vg.code
}

// writeDefineCode writes the definitions of value objects.
func writeDefineCode(w *codefmt.Writer, defs []*synth.Definition) {
	w.Printf("// vogen: value objects\n\n")
	for _, def := range defs {
		def.WriteDefineCode(w)
		w.Printf("\n")
	}
}

// mergeCode copies non-vogen code from the source files that tagged with
// "//go:build vogen". Declarations replaced by definitions are erased.
func (vg *Vogen) mergeCode(w *codefmt.Writer) {
	for _, file := range vg.p.VogenGoFiles() {
		name := filepath.Base(vg.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
				// Skip import declarations in files. Required imports will be
				// collected from their usage, and then rewritten as an import
				// declaration group.
				continue
			}

			// Erase value object declarations
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.TypeSpec)
				if !ok {
					return true
				}
				obj, ok := vg.p.Pkg().TypesInfo.Defs[spec.Name].(*types.TypeName)
				if !ok {
					return false
				}
				if _, ok := vg.erased[obj]; ok {
					c.Delete()
				}
				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok && len(gen.Specs) == 0 {
				continue
			}

			if first {
				fmt.Fprintf(w, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(w, decl)

			// Write rewritten declaration code
			_ = printer.Fprint(w, vg.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(w, "\n\n")
		}
	}
}

func (vg *Vogen) frameCode(w *codefmt.Writer, body *bytes.Buffer) []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !vogen\n\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/vogen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", vg.p.Pkg().Name)

	if imps := w.Imports(); len(imps) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imps {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, body)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}

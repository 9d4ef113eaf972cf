// Package synth synthesizes value object definitions from resolved
// configurations.
package synth

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"
	"strings"

	"github.com/sublee/vogen/internal/codefmt"
	"github.com/sublee/vogen/internal/typeinfo"
	"github.com/sublee/vogen/internal/vogen/parse"
)

// Definition is a synthesized value object definition.
type Definition struct {
	cfg parse.Config

	// storage is the name of the unexported field holding the value.
	storage string
}

// Synthesize validates the configuration and prepares the definition. The
// returned definition writes the same code for the same configuration.
func Synthesize(cfg parse.Config) (*Definition, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	ns := make(codefmt.NS)
	for _, name := range methodNames(cfg) {
		ns.Reserve(name)
	}
	return &Definition{cfg: cfg, storage: ns.Name("value")}, nil
}

// Config returns the configuration of the definition.
func (d *Definition) Config() parse.Config { return d.cfg }

// Key identifies the definition.
func (d *Definition) Key() string { return d.cfg.Key() }

// methodNames returns the names of the methods generated for the
// configuration. The first one is the accessor.
func methodNames(cfg parse.Config) []string {
	names := []string{cfg.PropertyName, "Equal", "NotEqual", "Equals", "Hash", "String"}
	if cfg.Kind != typeinfo.KindString {
		names = append(names, cfg.Kind.Marker())
	}
	return names
}

func constructorName(cfg parse.Config) string { return "New" + cfg.Name }
func converterName(cfg parse.Config) string   { return cfg.Name + "From" + cfg.Kind.Marker() }

func validate(cfg parse.Config) error {
	if !slices.Contains(typeinfo.Kinds(), cfg.Kind) {
		return codefmt.Errorf(cfg, cfg, "unknown value kind %s", cfg.Kind)
	}

	if cfg.Nested {
		return codefmt.Errorf(cfg, cfg, "value object %s must be declared at package level", cfg.Name)
	}

	var errs error

	methods := methodNames(cfg)
	for _, reserved := range methods[1:] {
		if cfg.PropertyName == reserved {
			err := codefmt.Errorf(cfg, cfg, "property name %s of %s conflicts with generated method", cfg.PropertyName, cfg.Name)
			errs = errors.Join(errs, err)
		}
	}

	for _, name := range methods {
		if pos, ok := cfg.Methods[name]; ok {
			err := codefmt.Errorf(cfg, cfg, "%s already declares method %s%s", cfg.Name, name, at(cfg, pos))
			errs = errors.Join(errs, err)
		}
	}

	for _, name := range []string{constructorName(cfg), converterName(cfg)} {
		if pos, ok := cfg.Declared[name]; ok {
			err := codefmt.Errorf(cfg, cfg, "%s is already declared%s", name, at(cfg, pos))
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// at describes the position of a previous declaration if known.
func at(cfg parse.Config, pos token.Pos) string {
	if !pos.IsValid() || cfg.Pkg() == nil {
		return ""
	}
	return codefmt.Sprintf(cfg, " at %b", pos)
}

// Source renders the definition as a standalone formatted Go file in the
// package of the value object.
func (d *Definition) Source() string {
	var body bytes.Buffer
	w := codefmt.NewWriter(&body, nil)
	d.WriteDefineCode(w)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n\n", d.cfg.Package)
	imps := w.Imports()
	if len(imps) != 0 {
		buf.WriteString("import (\n")
		for _, imp := range imps {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "\t%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "\t%q\n", imp.Path)
			}
		}
		buf.WriteString(")\n\n")
	}
	buf.Write(body.Bytes())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(fmt.Errorf("synthesized invalid code: %w\n%s", err, buf.String()))
	}
	return string(src)
}

// writeDoc writes the doc comment of the type. The doc comment on the
// declaration is kept.
func (d *Definition) writeDoc(w *codefmt.Writer) {
	doc := strings.TrimRight(d.cfg.Doc, "\n")
	if doc == "" {
		w.Printf("// %s is a value object wrapping %s.\n", d.cfg.Name, d.cfg.Kind)
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		if line == "" {
			w.Printf("//\n")
		} else {
			w.Printf("// %s\n", line)
		}
	}
}

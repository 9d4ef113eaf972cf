package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/vogen/internal/codefmt"
	"github.com/sublee/vogen/internal/typeinfo"
)

// DefaultPropertyName is the name of the accessor method when the marker has
// no "name" option.
const DefaultPropertyName = "Value"

// Config is the resolved configuration of a value object for one kind.
type Config struct {
	Kind typeinfo.Kind

	// Name is the name of the declaration.
	Name string

	// Scope is the import path of the package declaring the value object.
	Scope string

	// Package is the name of the package declaring the value object.
	Package string

	Shape Shape

	// PropertyName is the name of the accessor method of the wrapped value.
	PropertyName string

	// Nested is true if the declaration is inside a function body.
	Nested bool

	// Doc is the text of the doc comment on the declaration.
	Doc string

	// Declared holds the positions of package-level names which already exist
	// in the package, except the declaration itself.
	Declared map[string]token.Pos

	// Methods holds the positions of methods already declared on the type.
	Methods map[string]token.Pos

	pkg *packages.Package
	pos token.Pos
}

func (c Config) Pkg() *packages.Package { return c.pkg }
func (c Config) Pos() token.Pos         { return c.pos }

// Key identifies the definition for the configuration.
//
// e.g., "example.com/sample.UserName_value_object"
func (c Config) Key() string {
	return fmt.Sprintf("%s.%s_value_object", c.Scope, c.Name)
}

// ParseConfig resolves the configuration of the matched candidate. The
// candidate must embed exactly one marker of the kind and nothing else but
// markers.
func (p *Parser) ParseConfig(m Match, markers Markers) (Config, error) {
	cfg := Config{
		Kind:         m.Kind,
		Name:         m.Name,
		Scope:        p.Pkg().PkgPath,
		Package:      p.Pkg().Name,
		Shape:        m.Shape,
		PropertyName: DefaultPropertyName,
		Nested:       m.Nested,
		Declared:     make(map[string]token.Pos),
		Methods:      make(map[string]token.Pos),
		pkg:          p.Pkg(),
		pos:          m.Pos(),
	}
	if m.Doc != nil {
		cfg.Doc = m.Doc.Text()
	}

	marker := markers.Pkg().Scope().Lookup(m.Kind.Marker())

	var errs error
	if len(m.Fields) != 1 {
		err := codefmt.Errorf(p, m, "%s must embed exactly one %o, found %d", m.Name, marker, len(m.Fields))
		errs = errors.Join(errs, err)
	}

	for _, field := range m.Struct().Fields.List {
		if len(field.Names) == 0 {
			if _, ok := markers.KindOf(p.Pkg().TypesInfo.TypeOf(field.Type)); ok {
				_, isPtr := field.Type.(*ast.StarExpr)
				if isPtr != (m.Shape == ReferenceShape) {
					err := codefmt.Errorf(p, field, "value object %s cannot mix pointer and non-pointer markers", m.Name)
					errs = errors.Join(errs, err)
				}
				continue
			}
		}
		var err error
		if len(field.Names) == 0 {
			err = codefmt.Errorf(p, field, "value object %s cannot embed %c besides markers", m.Name, field.Type)
		} else {
			err = codefmt.Errorf(p, field, "value object %s cannot declare field %s", m.Name, field.Names[0].Name)
		}
		errs = errors.Join(errs, err)
	}

	if typeinfo.TypeOf(m.Obj.Type()).IsGeneric() {
		err := codefmt.Errorf(p, m, "value object %s cannot be generic", m.Name)
		errs = errors.Join(errs, err)
	}

	for _, field := range m.Fields {
		name, err := p.parseTag(field)
		if err != nil {
			errs = errors.Join(errs, err)
		} else if name != "" {
			cfg.PropertyName = name
		}
	}

	if errs != nil {
		return Config{}, errs
	}

	scope := p.Pkg().Types.Scope()
	for _, name := range scope.Names() {
		if name == m.Name {
			continue
		}
		cfg.Declared[name] = scope.Lookup(name).Pos()
	}

	if named, ok := types.Unalias(m.Obj.Type()).(*types.Named); ok {
		for i := range named.NumMethods() {
			method := named.Method(i)
			cfg.Methods[method.Name()] = method.Pos()
		}
	}

	return cfg, nil
}

// parseTag parses the vogen struct tag of a marker field and returns the
// property name. It returns an empty string if the tag has no name option.
//
//	vogen.String `vogen:"name=StringValue"`
func (p *Parser) parseTag(field *ast.Field) (string, error) {
	if field.Tag == nil {
		return "", nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", codefmt.Errorf(p, field.Tag, "malformed struct tag %s", field.Tag.Value)
	}

	tag, ok := reflect.StructTag(raw).Lookup("vogen")
	if !ok {
		return "", nil
	}

	var name string
	var hasName bool
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}

		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return "", codefmt.Errorf(p, field.Tag, "invalid vogen tag option %q; want key=value", opt)
		}

		switch strings.TrimSpace(key) {
		case "name":
			name = strings.TrimSpace(value)
			hasName = true
		default:
			return "", codefmt.Errorf(p, field.Tag, "unknown vogen tag option %q", key)
		}
	}

	if !hasName {
		return "", nil
	}
	if name == "" {
		return "", codefmt.Errorf(p, field.Tag, "property name must not be empty")
	}
	if name == "_" || !token.IsIdentifier(name) {
		return "", codefmt.Errorf(p, field.Tag, "property name %q is not a valid identifier", name)
	}
	return name, nil
}

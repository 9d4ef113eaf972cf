package parse

import (
	"go/ast"
	"go/types"

	"github.com/sublee/vogen/internal/typeinfo"
)

// Markers indexes the marker types of the vogen package imported by the
// package. Markers are recognized by type identity, so a type named "String"
// in another package never counts as a marker.
type Markers struct {
	pkg    *types.Package
	lookup *typeinfo.Lookup[typeinfo.Kind]
	objs   map[types.Object]typeinfo.Kind
}

// Markers finds the vogen package among the imports of the package. If the
// package does not import vogen, no marker is found.
func (p *Parser) Markers() Markers {
	var m Markers
	for _, imp := range p.Pkg().Types.Imports() {
		if IsVogenImport(imp.Path()) {
			m = NewMarkers(imp)
			break
		}
	}
	return m
}

// NewMarkers indexes the marker types declared in the given vogen package.
func NewMarkers(vogenPkg *types.Package) Markers {
	m := Markers{
		pkg:    vogenPkg,
		lookup: typeinfo.NewLookup[typeinfo.Kind](),
		objs:   make(map[types.Object]typeinfo.Kind),
	}
	for _, kind := range typeinfo.Kinds() {
		obj, ok := vogenPkg.Scope().Lookup(kind.Marker()).(*types.TypeName)
		if !ok {
			continue
		}
		m.lookup.Put(typeinfo.TypeOf(obj.Type()), kind)
		m.objs[obj] = kind
	}
	return m
}

// Found reports whether any marker is known.
func (m Markers) Found() bool { return m.lookup.Len() != 0 }

// Pkg returns the vogen package. It returns nil if not found.
func (m Markers) Pkg() *types.Package { return m.pkg }

// KindOf returns the kind of the marker type. Pointers and aliases are resolved
// first, so *vogen.String is also a marker of [typeinfo.KindString].
func (m Markers) KindOf(t types.Type) (typeinfo.Kind, bool) {
	if t == nil {
		return typeinfo.KindInvalid, false
	}
	return m.lookup.Get(typeinfo.TypeOf(t).Deref())
}

// KindOfObj returns the kind of the marker type name.
func (m Markers) KindOfObj(obj types.Object) (typeinfo.Kind, bool) {
	kind, ok := m.objs[obj]
	return kind, ok
}

// Match is a candidate which embeds a marker of the kind.
type Match struct {
	Candidate
	Kind typeinfo.Kind

	// Fields are the embedded fields whose type is the marker of the kind.
	Fields []*ast.Field
}

// Resolve filters the candidates embedding a marker of the kind. The result
// keeps the order of the candidates.
func (p *Parser) Resolve(cands []Candidate, markers Markers, kind typeinfo.Kind) []Match {
	if !markers.Found() {
		return nil
	}

	var matches []Match
	for _, cand := range cands {
		var fields []*ast.Field
		for _, field := range cand.Annotations {
			k, ok := markers.KindOf(p.Pkg().TypesInfo.TypeOf(field.Type))
			if ok && k == kind {
				fields = append(fields, field)
			}
		}
		if len(fields) != 0 {
			matches = append(matches, Match{Candidate: cand, Kind: kind, Fields: fields})
		}
	}
	return matches
}

// Kinds returns the kinds of markers the candidate embeds, without duplicates.
func (p *Parser) Kinds(cand Candidate, markers Markers) []typeinfo.Kind {
	var kinds []typeinfo.Kind
	seen := make(map[typeinfo.Kind]bool)
	for _, field := range cand.Annotations {
		k, ok := markers.KindOf(p.Pkg().TypesInfo.TypeOf(field.Type))
		if ok && !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}

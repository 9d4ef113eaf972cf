package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS manages unique names in a namespace.
type NS map[string]struct{}

// NewNS creates a new namespace which reserves all names in the given scope.
// A nil scope creates an empty namespace.
func NewNS(scope *types.Scope) NS {
	ns := make(NS)
	if scope != nil {
		for _, name := range scope.Names() {
			ns.Reserve(name)
		}
	}
	return ns
}

// Reserve marks a name as used in the namespace. If the name is already used,
// it returns false.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name returns a unique name in its namespace. Once a name is used, it is
// reserved in the namespace to avoid conflicts. If conflicts occur, a numbering
// suffix is added.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if ns == nil {
		return name
	}
	for name := range DisambiguateName(name) {
		if token.Lookup(name).IsKeyword() {
			continue
		}
		if ok := ns.Reserve(name); ok {
			return name
		}
	}
	panic("unreachable")
}

// NormalizeName turns an arbitrary string into a camel-cased identifier.
//
// e.g., NormalizeName("user name") => "userName"
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_')
	})

	for i := 1; i < len(chunks); i++ {
		chunks[i] = cases.Title(language.English, cases.NoLower).String(chunks[i])
	}
	return strings.Join(chunks, "")
}

// Unexport lowers the leading upper-case run of an identifier, so that an
// exported name can be reused for an unexported declaration.
//
// e.g., Unexport("UserName") => "userName", Unexport("ID") => "id",
// Unexport("HTTPServer") => "httpServer"
func Unexport(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return name
	case n == 1 || n == len(runes):
		// "User" => "user", "ID" => "id"
	default:
		// "HTTPServer" => "httpServer": keep the last upper of the run because
		// it starts the next word.
		if unicode.IsLower(runes[n]) {
			n--
		}
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// DisambiguateName offers an alternative unique names.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		// Postfix "_" to the name if it already ends with a number.
		// "answer42_2" is better than "answer422".
		sep := ""
		if last := name[len(name)-1]; last >= '0' && last <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}

package parse

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/sublee/vogen/internal/typeinfo"
)

// MarkerSource returns the source code of the vogen package without its
// documentation. It declares one marker type per kind. Tests type-check it to
// resolve markers without loading the real package.
func MarkerSource() string {
	var buf bytes.Buffer
	buf.WriteString("package vogen\n\n")
	buf.WriteString("type marker struct{}\n")
	for _, kind := range typeinfo.Kinds() {
		article := "a"
		if strings.ContainsRune("aeiou", rune(kind.String()[0])) {
			article = "an"
		}
		fmt.Fprintf(&buf, "\n// %s marks a value object wrapping %s %s.\n", kind.Marker(), article, kind)
		fmt.Fprintf(&buf, "type %s struct{ _ marker }\n", kind.Marker())
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err) // the source is fixed
	}
	return string(src)
}

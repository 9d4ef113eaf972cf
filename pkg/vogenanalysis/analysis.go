// Package vogenanalysis provides an analyzer reporting invalid value object
// declarations without generating code.
package vogenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/vogen/internal/codefmt"
	vogeninternal "github.com/sublee/vogen/internal/vogen"
)

// Analyzer validates value object declarations in the package.
var Analyzer = &analysis.Analyzer{
	Name: "vogen",
	Doc:  "linter for vogen value object declarations",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	vg, err := vogeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	codeErrs, _ := codefmt.CodeErrors(vg.Build())
	for _, codeErr := range codeErrs {
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	}
	return nil, nil
}

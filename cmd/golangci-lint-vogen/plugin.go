// golangcilintvogen package provides a plugin for golangci-lint to integrate
// the vogen analyzer. To build a custom golangci-lint binary with this plugin,
// use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-vogen binary that reports invalid value
// object declarations.
package golangcilintvogen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/vogen/pkg/vogenanalysis"
)

func init() {
	register.Plugin("vogen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return VogenLinter{}, nil
}

type VogenLinter struct{}

func (VogenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{vogenanalysis.Analyzer}, nil
}

func (VogenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

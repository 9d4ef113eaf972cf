package vogeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/vogen/internal/codefmt"
	"github.com/sublee/vogen/internal/vogen/parse"
)

var Version string

// Main is the main entry point for vogen. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. The logger attached to ctx by [log.WithContext] is
// used for diagnostics. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. Packages without
// value objects have no output. If any error occurs, it returns a non-nil
// error together with the outputs which could still be generated: a
// declaration failing to synthesize does not stop the others.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	logger := log.FromContext(ctx)

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		if len(pkg.Errors) != 0 {
			err := fmt.Errorf("pkg %q has errors", pkg.Name)
			errs = errors.Join(errs, err)
			continue
		}

		vg, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := vg.Build(); err != nil {
			errs = errors.Join(errs, err)
		}

		code := vg.Generate()
		if len(code) == 0 {
			logger.Debug("no value objects", "pkg", pkg.PkgPath)
			continue
		}
		logger.Debug("synthesized value objects", "pkg", pkg.PkgPath, "count", len(vg.Definitions()))

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code
	}
	// errs already contains comprehensive error messages. So we don't need to
	// attach another error message.
	return outs, reorderErrors(errs)
}

// load loads packages with the vogen build tag.
//
// Type errors in files without the vogen constraint are tolerated because they
// usually refer to code which is not generated yet. The errors are dropped
// from the packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	logger := log.FromContext(ctx)

	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=vogen"},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	logger.Debug("loading packages", "patterns", patterns, "flags", cfg.BuildFlags)
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		untagged := untaggedFiles(pkg)

		var kept []packages.Error
		for _, err := range pkg.Errors {
			path, rowcol, _ := strings.Cut(err.Pos, ":")

			if err.Kind == packages.TypeError && untagged[path] {
				logger.Debug("tolerated type error", "pkg", pkg.PkgPath, "err", err)
				continue
			}
			kept = append(kept, err)

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
		pkg.Errors = kept
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// untaggedFiles returns the paths of files without the vogen constraint in the
// package.
func untaggedFiles(pkg *packages.Package) map[string]bool {
	files := make(map[string]bool)
	if pkg.Fset == nil {
		return files
	}
	for _, file := range pkg.Syntax {
		if !parse.HasGoBuildVogen(file) {
			files[pkg.Fset.File(file.Pos()).Name()] = true
		}
	}
	return files
}

// reorderErrors flattens joined errors and sorts them by message so that the
// output does not depend on the processing order.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	codeErrs, list := codefmt.CodeErrors(errs)
	for _, err := range codeErrs {
		list = append(list, err)
	}

	slices.SortFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}

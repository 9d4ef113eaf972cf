package vogen_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	vogeninternal "github.com/sublee/vogen/internal/vogen"
	"github.com/sublee/vogen/internal/vogen/parse"
	"github.com/sublee/vogen/pkg/vogenanalysis"
)

// TestAnalysis tests scanning and synthesizing errors using the Go analysis
// protocol. In this test, vogen errors will be reported as analysis errors.
// "// want `REGEXP`" comments in the fixture source files are used to check for
// expected analysis errors.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── analysis/
//	    ├── pkg1/
//	    │   └── *.go // with want comments
//	    └── pkg2/
//	        └── *.go // with want comments
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/analysis"))
	require.NoError(t, err)

	t.Setenv("GOFLAGS", "-tags=vogen")

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		t.Run(ent.Name(), func(t *testing.T) {
			defer func() {
				if t.Failed() {
					t.Logf("\n\tReproduce:\tgo run ./cmd/vogen ./testdata/analysis/%s", ent.Name())
				}
			}()

			analysistest.Run(t, "", vogenanalysis.Analyzer, "./testdata/analysis/"+ent.Name())
		})
	}
}

// TestMarkerSource checks that the marker package served to in-memory tests
// declares the same markers as this package.
func TestMarkerSource(t *testing.T) {
	want := typeDecls(t, "vogen.go", nil)
	have := typeDecls(t, "marker.go", parse.MarkerSource())
	assert.Equal(t, want, have)
}

// typeDecls returns the code of the type declarations in the file by name.
func typeDecls(t *testing.T, filename string, src any) map[string]string {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, 0)
	require.NoError(t, err)

	decls := make(map[string]string)
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			spec := spec.(*ast.TypeSpec)
			var buf bytes.Buffer
			require.NoError(t, printer.Fprint(&buf, fset, spec))
			decls[spec.Name.Name] = buf.String()
		}
	}
	return decls
}

// TestPrograms tests programs in the testdata directory.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── program/
//	    ├── program1/
//	    │   ├── main_pkg.txt --- If main_pkg.txt is not present, "main" will be used as the default package name.
//	    │   ├── main/
//	    │   │   ├── values.go --- "//go:build vogen"
//	    │   │   └── main.go
//	    │   └── want/
//	    │       └── program_output.txt
//	    └── program2/
//	        ├── main/
//	        │   └── values.go
//	        └── want/
//	            ├── vogen_error.txt
//	            └── program_output.txt --- optional, for partially generated code
func TestPrograms(t *testing.T) {
	// NOTE: Code snippets were stolen from Wire.
	ents, err := os.ReadDir(filepath.FromSlash("testdata/program"))
	require.NoError(t, err)

	vogenGo, err := os.ReadFile("vogen.go")
	require.NoError(t, err)

	var tests []*programTest
	for _, ent := range ents {
		name := ent.Name()
		if !ent.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		test, err := newProgramTest(name, vogenGo)
		if err != nil {
			t.Error(err)
			continue
		}

		tests = append(tests, test)
	}

	for _, test := range tests {
		t.Run(test.Name(), test.Test())
	}
}

// programTest is a test case for a program. It executes vogen for the program
// and runs the program with generated code to check the output.
type programTest struct {
	name    string
	mainPkg string
	files   map[string][]byte
	want    struct {
		ProgramOutput string
		VogenError    string
	}
}

func (test *programTest) Name() string {
	return test.name
}

func (test *programTest) PkgPath() string {
	return fmt.Sprintf("example.com/%s", test.name)
}

func (test *programTest) ProgramPath() string {
	return fmt.Sprintf("%s/%s", test.PkgPath(), test.mainPkg)
}

// newProgramTest creates a new program test case.
func newProgramTest(name string, vogenGo []byte) (*programTest, error) {
	root := filepath.Join(filepath.FromSlash("testdata/program"), name)
	test := programTest{
		name:  name,
		files: make(map[string][]byte),
	}

	mainPkg, err := os.ReadFile(filepath.Join(root, "main_pkg.txt"))
	if errors.Is(err, os.ErrNotExist) {
		mainPkg = []byte("main")
	} else if err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}
	test.mainPkg = string(bytes.TrimSpace(mainPkg))

	programOutput, _ := os.ReadFile(filepath.Join(root, "want", "program_output.txt"))
	vogenError, _ := os.ReadFile(filepath.Join(root, "want", "vogen_error.txt"))
	test.want.ProgramOutput = string(bytes.TrimSpace(programOutput))
	test.want.VogenError = string(bytes.TrimSpace(vogenError))

	if test.want.ProgramOutput == "" && test.want.VogenError == "" {
		return nil, fmt.Errorf("load test case %s: does not want anything", name)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".go" {
			return nil
		}
		if filepath.Base(path) == "vogen_gen.go" {
			// Generated files might be left for debugging purposes.
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		code, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		test.files[test.PkgPath()+"/"+filepath.ToSlash(rel)] = code
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}

	test.files["github.com/sublee/vogen/vogen.go"] = vogenGo
	return &test, nil
}

// materialize copies the program code and vogen.go into the given GOPATH.
func (test *programTest) materialize(gopath string) error {
	for name, content := range test.files {
		dst := filepath.Join(gopath, "src", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
			return fmt.Errorf("mkdir %s: %w", name, err)
		}
		if err := os.WriteFile(dst, content, 0o666); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	vogenDir := filepath.Join(gopath, "src", "github.com", "sublee", "vogen")
	vogenGomod := "module github.com/sublee/vogen\n\ngo 1.25.0\n"
	if err := os.WriteFile(filepath.Join(vogenDir, "go.mod"), []byte(vogenGomod), 0o666); err != nil {
		return fmt.Errorf("write github.com/sublee/vogen/go.mod: %w", err)
	}

	testGomodPath := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()), "go.mod")
	testGomod := fmt.Sprintf(
		"module %s\n\ngo 1.25.0\n\nrequire github.com/sublee/vogen v0.0.0\n\nreplace github.com/sublee/vogen => %s\n",
		test.PkgPath(), vogenDir,
	)
	if err := os.WriteFile(testGomodPath, []byte(testGomod), 0o666); err != nil {
		return fmt.Errorf("write %s/go.mod: %w", test.PkgPath(), err)
	}

	return nil
}

// Test returns a test function for the program test. It runs vogen for the
// program and then checks its error or output messages.
func (test *programTest) Test() func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		defer func() {
			if t.Failed() {
				t.Logf("\n\tReproduce:\tgo run ./cmd/vogen ./testdata/program/%s/%s", test.Name(), test.mainPkg)
			}
		}()

		gopath := t.TempDir()
		require.NoError(t, test.materialize(gopath), "Materialization failed")

		// Run vogen
		wd := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()))
		env := append(os.Environ(), "GOPATH="+gopath)
		generated, vogenErr := vogeninternal.Main(t.Context(), wd, env, "", false, "vogen_gen.go", []string{"pattern=./" + test.mainPkg})

		if vogenErr != nil {
			vogenErr = errors.New(relPathInString(vogenErr.Error(), wd))
			require.NotEmpty(t, test.want.VogenError, "vogen exited with errors unexpectedly: %v", vogenErr)

			want := normalizeWhitespace(test.want.VogenError)
			have := normalizeWhitespace(vogenErr.Error())
			assert.Equal(t, want, have)
		} else {
			require.Empty(t, test.want.VogenError, "vogen should have exited with an error")
		}

		if test.want.ProgramOutput == "" {
			return
		}

		// Value objects which synthesized are generated even with errors.
		for name, content := range generated {
			err := os.WriteFile(filepath.Join(wd, name), content, 0o666)
			require.NoError(t, err, "Failed to write a generated file")
		}

		// Run the program
		goCmd := filepath.Join(build.Default.GOROOT, "bin", "go")
		cmd := exec.Command(goCmd, "run", test.ProgramPath())
		cmd.Dir = wd
		cmd.Env = env
		progOut, err := cmd.CombinedOutput()
		require.NoError(t, err, string(progOut))

		assert.Equal(t, test.want.ProgramOutput, strings.TrimSpace(string(progOut)))
	}
}

// relPathInString replaces paths in the given string to their relative paths to
// the new working directory.
func relPathInString(s, wd string) string {
	realWD, err := os.Getwd()
	if err != nil {
		return s
	}

	rel, err := filepath.Rel(realWD, wd)
	if err != nil {
		return s
	}

	s = strings.ReplaceAll(s, rel+"/", "")
	s = strings.ReplaceAll(s, rel, "")
	return s
}

// normalizeWhitespace normalizes whitespace in the given string for consistent
// comparison regardless of whitespace style.
func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}

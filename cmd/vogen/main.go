package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"

	vogeninternal "github.com/sublee/vogen/internal/vogen"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "vogen_gen.go", "output file name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag = flag.Bool("v", false, "verbose logging")
)

func init() {
	vogeninternal.Version = Version
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "vogen",
	})
	if *vFlag {
		logger.SetLevel(log.DebugLevel)
	}
	ctx := log.WithContext(context.Background(), logger)

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	outs, err := vogeninternal.Main(ctx, wd, os.Environ(), *bFlag, *tFlag, *oFlag, flag.Args())

	// Value objects which synthesized are written even if others failed.
	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Debug("wrote file", "path", out, "bytes", len(outs[out]))

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}

	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// rePos matches the position prefix of an error line.
var rePos = regexp.MustCompile(`(?m)^([^\s:]+:\d+:\d+):`)

// colorize adds ANSI color codes to the message. Positions are dimmed so that
// messages stand out.
func colorize(message string) string {
	const (
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllString(message, dim+"$1"+reset+":")
}

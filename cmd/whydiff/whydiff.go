package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/nicolagi/whydiff/diff"
	"github.com/nicolagi/whydiff/explain"
	"github.com/nicolagi/whydiff/internal/config"
	"github.com/nicolagi/whydiff/strdiff"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// To set this at build time, use go build -ldflags '-X main.version=something'.
	version = "unknown"

	// The global context is for flags that are part of all flag sets, that
	// is, all sub-commands.
	globalContext struct {
		base     string
		logLevel string
	}

	stringsContext struct {
		files bool
	}

	linesContext struct {
		context int
	}
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&globalContext.base, "base", config.DefaultBaseDirectoryPath, "`directory` holding the configuration")
	var levels []string
	for _, l := range log.AllLevels {
		levels = append(levels, l.String())
	}
	fs.StringVar(&globalContext.logLevel, "verbosity", "warning", "sets the log `level`, among "+strings.Join(levels, ", "))
	return fs
}

// Exit statuses, as for diff(1).
const (
	exitSame    = 0
	exitDiffer  = 1
	exitTrouble = 2
)

// troubleExit adapts exit so that fatal log entries end the process with
// exitTrouble rather than logrus' default of 1, which means the inputs differ.
func troubleExit(exit func(int)) func(int) {
	return func(int) {
		exit(exitTrouble)
	}
}

func exitUsage(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	_, _ = fmt.Fprintf(os.Stderr, `Usage: %s COMMAND [ARGS]

Commands:

	strings [-f] EXPECTED ACTUAL: explain how two strings differ

		With -f, EXPECTED and ACTUAL name files whose contents are compared.

	lines [-U n] FILE1 FILE2: unified diff of two files
	list FILE1 FILE2: explain how two files differ, taken as lists of lines
	init: writes the default configuration in the base directory
	version: show version information

The exit status is 0 if the inputs are the same, 1 if they differ, 2 on trouble.
`, os.Args[0])
	os.Exit(exitTrouble)
}

func main() {
	stringsFlags := newFlagSet("strings")
	stringsFlags.BoolVar(&stringsContext.files, "f", false, "arguments are file names")

	linesFlags := newFlagSet("lines")
	linesFlags.IntVar(&linesContext.context, "U", -1, "number of unified context `lines`, defaults to the configured value")

	// For all commands that take no arguments beyond global flags.
	emptyFlags := newFlagSet("empty")
	listFlags := newFlagSet("list")

	if len(os.Args) < 2 {
		exitUsage("Command name required")
	}

	// Ignoring errors, because flag sets are configured to exit on error.
	switch cmd := os.Args[1]; cmd {
	case "strings":
		_ = stringsFlags.Parse(os.Args[2:])
		if narg := stringsFlags.NArg(); narg != 2 {
			exitUsage(fmt.Sprintf("strings: 2 args expected, got %d", narg))
		}
	case "lines":
		_ = linesFlags.Parse(os.Args[2:])
		if narg := linesFlags.NArg(); narg != 2 {
			exitUsage(fmt.Sprintf("lines: 2 args expected, got %d", narg))
		}
	case "list":
		_ = listFlags.Parse(os.Args[2:])
		if narg := listFlags.NArg(); narg != 2 {
			exitUsage(fmt.Sprintf("list: 2 args expected, got %d", narg))
		}
	case "init", "version":
		_ = emptyFlags.Parse(os.Args[2:])
		if narg := emptyFlags.NArg(); narg != 0 {
			exitUsage(fmt.Sprintf("%s: no args expected, got %d", cmd, narg))
		}
	default:
		exitUsage(fmt.Sprintf("%q: command not recognized", cmd))
	}

	log.SetOutput(os.Stderr)
	log.StandardLogger().ExitFunc = troubleExit(os.Exit)
	log.SetFormatter(&log.JSONFormatter{})
	ll, err := log.ParseLevel(globalContext.logLevel)
	if err != nil {
		log.Fatalf("Could not parse log level %q: %v", globalContext.logLevel, err)
	}
	log.SetLevel(ll)

	switch os.Args[1] {
	case "init":
		if err := config.Initialize(globalContext.base); err != nil {
			log.Fatalf("Could not initialize config in %q: %v", globalContext.base, err)
		}
		return
	case "version":
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(globalContext.base)
	if err != nil {
		log.Fatalf("Could not load config from %q: %v", globalContext.base, err)
	}

	cmdlog := log.WithField("op", os.Args[1])
	var differ bool
	switch cmd := os.Args[1]; cmd {
	case "strings":
		expected, actual := stringsFlags.Arg(0), stringsFlags.Arg(1)
		if stringsContext.files {
			expected, actual, err = readPair(expected, actual)
			if err != nil {
				cmdlog.WithField("cause", err).Fatal("Could not read inputs")
			}
		}
		differ = explainStrings(os.Stdout, expected, actual, cfg)

	case "lines":
		n := cfg.UnifiedContext
		if linesContext.context >= 0 {
			n = linesContext.context
		}
		differ, err = unifiedFiles(os.Stdout, linesFlags.Arg(0), linesFlags.Arg(1), n)
		if err != nil {
			cmdlog.WithField("cause", err).Fatal("Could not diff files")
		}

	case "list":
		expected, actual, err := readPair(listFlags.Arg(0), listFlags.Arg(1))
		if err != nil {
			cmdlog.WithField("cause", err).Fatal("Could not read inputs")
		}
		differ = explainList(os.Stdout, expected, actual)

	default:
		panic("not reached")
	}
	if differ {
		os.Exit(exitDiffer)
	}
	os.Exit(exitSame)
}

// readPair reads two files concurrently.
func readPair(expectedPath, actualPath string) (expected, actual string, err error) {
	var g errgroup.Group
	read := func(path string, dst *string) func() error {
		return func() error {
			b, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "readPair")
			}
			*dst = string(b)
			log.WithFields(log.Fields{"path": path, "bytes": len(b)}).Debug("Read input")
			return nil
		}
	}
	g.Go(read(expectedPath, &expected))
	g.Go(read(actualPath, &actual))
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return expected, actual, nil
}

// explainStrings writes the bracketed explanation of two strings and reports
// whether they differ.
func explainStrings(w io.Writer, expected, actual string, cfg *config.C) bool {
	if expected == actual {
		return false
	}
	x := strdiff.New(expected, actual, cfg.ExtractorOptions()...)
	log.WithFields(log.Fields{
		"prefix": x.CommonPrefixLength(),
		"suffix": x.CommonSuffixLength(),
	}).Debug("Extracted difference")
	e, a := x.Render()
	_, _ = fmt.Fprintf(w, "expected:<%s> but was:<%s>\n", e, a)
	return true
}

func unifiedFiles(w io.Writer, expectedPath, actualPath string, contextLines int) (bool, error) {
	var buf strings.Builder
	if err := diff.UnifiedTo(&buf, diff.FileNode(expectedPath), diff.FileNode(actualPath), contextLines); err != nil {
		return false, err
	}
	if buf.Len() == 0 {
		return false, nil
	}
	_, _ = fmt.Fprintf(w, "--- %s\n+++ %s\n%s", expectedPath, actualPath, buf.String())
	return true, nil
}

// explainList compares two texts as lists of lines, so a missing final
// newline alone is not a difference.
func explainList(w io.Writer, expected, actual string) bool {
	a, b := diff.SplitLines(expected), diff.SplitLines(actual)
	if slices.Equal(a, b) {
		return false
	}
	log.WithFields(log.Fields{"expected": len(a), "actual": len(b)}).Debug("Comparing lines")
	_, _ = fmt.Fprintf(w, "expected %s\n", explain.List(a, b))
	return true
}

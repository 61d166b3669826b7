package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nicolagi/whydiff/strdiff"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseDirectoryPath is where whydiff commands look for their
// configuration. It defaults to $WHYDIFF_BASE if it is set, otherwise it
// defaults to $HOME/lib/whydiff. Commands override this via the -base flag.
var DefaultBaseDirectoryPath string

// ErrUnknownKey is returned when a configuration file holds an unknown key.
var ErrUnknownKey = errors.New("unknown key")

func init() {
	if base := os.Getenv("WHYDIFF_BASE"); base != "" {
		DefaultBaseDirectoryPath = base
	} else {
		DefaultBaseDirectoryPath = os.ExpandEnv("$HOME/lib/whydiff")
	}
}

type C struct {
	// Runes of shared prefix and suffix shown around a string difference.
	// Negative means no compaction.
	ContextLength int

	// Marks where a shared prefix or suffix was cut.
	Ellipsis string

	// Render tabs, newlines, carriage returns and runs of spaces visibly
	// inside differing regions.
	EscapeWhitespace bool

	// Context lines around each hunk of a unified diff.
	UnifiedContext int

	base string
}

// Default returns the configuration used when no file exists.
func Default() *C {
	return &C{
		ContextLength:    strdiff.DefaultContextLength,
		Ellipsis:         strdiff.DefaultEllipsis,
		EscapeWhitespace: true,
		UnifiedContext:   3,
	}
}

// Load loads the configuration from the file called "config" in the provided base
// directory.
func Load(base string) (*C, error) {
	filename := filepath.Join(base, "config")
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		log.WithField("path", filename).Debug("No configuration file, using defaults")
		c := Default()
		c.base = base
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "config.Load")
	}
	defer func() {
		// Ignore error closing file opened only for reading.
		_ = f.Close()
	}()
	c, err := load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config.Load %q", filename)
	}
	c.base = base
	log.WithFields(log.Fields{
		"path":          filename,
		"contextLength": c.ContextLength,
		"ellipsis":      c.Ellipsis,
	}).Debug("Loaded configuration")
	return c, nil
}

func load(f io.Reader) (*C, error) {
	c := Default()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		i := strings.IndexAny(line, " \t")
		if i == -1 {
			return nil, errorf("load", "no separator in %q", line)
		}
		var err error
		switch key, val := line[:i], strings.TrimSpace(line[i:]); key {
		case "context-length":
			c.ContextLength, err = strconv.Atoi(val)
		case "ellipsis":
			c.Ellipsis = val
		case "escape-whitespace":
			c.EscapeWhitespace, err = strconv.ParseBool(val)
		case "unified-context":
			c.UnifiedContext, err = strconv.Atoi(val)
			if err == nil && c.UnifiedContext < 0 {
				err = fmt.Errorf("negative: %d", c.UnifiedContext)
			}
		default:
			return nil, errors.Wrapf(ErrUnknownKey, "load: %q", key)
		}
		if err != nil {
			return nil, errorf("load", "key %q: %v", line[:i], err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "load")
	}
	return c, nil
}

// ExtractorOptions translates the configuration into options for strdiff.New.
func (c *C) ExtractorOptions() []strdiff.Option {
	opts := []strdiff.Option{
		strdiff.WithContextLength(c.ContextLength),
		strdiff.WithEllipsis(c.Ellipsis),
	}
	if !c.EscapeWhitespace {
		opts = append(opts, strdiff.WithEscaper(nil))
	}
	return opts
}

// Path is the configuration file path, whether or not it exists.
func (c *C) Path() string {
	return filepath.Join(c.base, "config")
}

// Initialize writes the default configuration at the given directory.
func Initialize(baseDir string) error {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return fmt.Errorf("%q: could not mkdir: %w", baseDir, err)
	}
	path := filepath.Join(baseDir, "config")
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%q: already exists", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%q: could not determine if it exists: %w", path, err)
	}

	c := Default()
	var buf bytes.Buffer
	buf.WriteString("# Runes of shared context around a difference; negative disables compaction.\n")
	fmt.Fprintf(&buf, "context-length %d\n", c.ContextLength)
	fmt.Fprintf(&buf, "ellipsis %s\n", c.Ellipsis)
	fmt.Fprintf(&buf, "escape-whitespace %t\n", c.EscapeWhitespace)
	fmt.Fprintf(&buf, "unified-context %d\n", c.UnifiedContext)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Initialize %q: %w", path, err)
	}
	return nil
}

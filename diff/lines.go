package diff

import "strings"

// Lines diffs two texts line by line, with lines split as by SplitLines.
func Lines(a, b string) []Edit[string] {
	return Sequence(SplitLines(a), SplitLines(b))
}

// SplitLines splits s on "\n". Lines do not carry their terminator and a
// final "\n" does not start an extra empty line, so "a\nb" and "a\nb\n"
// give the same lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// splitTerminated is like SplitLines but keeps each line's "\n", so that a
// last line missing its terminator differs from the same line with one.
func splitTerminated(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

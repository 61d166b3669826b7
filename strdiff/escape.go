package strdiff

import (
	"regexp"
	"strings"
)

var specialWhitespace = regexp.MustCompile("[\r\n\t]| {2,}")

// Escape makes whitespace differences visible: carriage returns, newlines
// and tabs become \r, \n and \t, and each space in a run of two or more
// spaces becomes a middle dot.
func Escape(s string) string {
	return specialWhitespace.ReplaceAllStringFunc(s, func(m string) string {
		switch m {
		case "\r":
			return `\r`
		case "\n":
			return `\n`
		case "\t":
			return `\t`
		default:
			return strings.Repeat("·", len(m))
		}
	})
}

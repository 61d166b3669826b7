// Package strdiff isolates the point where two mostly identical strings
// differ, so that a failure message can show the differing middle of each
// string bracketed by a short excerpt of the shared prefix and suffix.
//
// Positions and lengths are counted in runes, so multi-byte characters are
// never split.
package strdiff

// Extractor holds the common prefix and suffix of an expected and an actual
// string. The two regions never overlap: the suffix is searched only in what
// remains of each string after the prefix.
type Extractor struct {
	expected []rune
	actual   []rune
	prefix   int
	suffix   int
	opts     options
}

// New computes the shared prefix and suffix of expected and actual.
func New(expected, actual string, opts ...Option) *Extractor {
	x := &Extractor{
		expected: []rune(expected),
		actual:   []rune(actual),
		opts:     defaultOptions(),
	}
	for _, opt := range opts {
		opt(&x.opts)
	}
	x.prefix = commonPrefix(x.expected, x.actual)
	x.suffix = commonSuffix(x.expected[x.prefix:], x.actual[x.prefix:])
	return x
}

func commonPrefix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func commonSuffix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return i
		}
	}
	return n
}

// CommonPrefixLength is the length in runes of the longest shared prefix.
func (x *Extractor) CommonPrefixLength() int {
	return x.prefix
}

// CommonSuffixLength is the length in runes of the longest shared suffix
// that does not overlap the prefix.
func (x *Extractor) CommonSuffixLength() int {
	return x.suffix
}

// CompactPrefix returns the shared prefix, keeping only its last runes
// behind the ellipsis when it is longer than the context length.
func (x *Extractor) CompactPrefix() string {
	prefix := x.expected[:x.prefix]
	if n := x.opts.contextLength; n >= 0 && len(prefix) > n {
		return x.opts.ellipsis + string(prefix[len(prefix)-n:])
	}
	return string(prefix)
}

// CompactSuffix returns the shared suffix, keeping only its first runes
// ahead of the ellipsis when it is longer than the context length.
func (x *Extractor) CompactSuffix() string {
	suffix := x.expected[len(x.expected)-x.suffix:]
	if n := x.opts.contextLength; n >= 0 && len(suffix) > n {
		return string(suffix[:n]) + x.opts.ellipsis
	}
	return string(suffix)
}

// ExpectedDiff returns what lies between the shared prefix and suffix in the
// expected string. It is empty when the strings are equal.
func (x *Extractor) ExpectedDiff() string {
	return x.middle(x.expected)
}

// ActualDiff is the counterpart of ExpectedDiff for the actual string.
func (x *Extractor) ActualDiff() string {
	return x.middle(x.actual)
}

func (x *Extractor) middle(s []rune) string {
	return string(s[x.prefix : len(s)-x.suffix])
}

// Render returns the display form of both strings: the compact prefix, the
// escaped middle in square brackets, then the compact suffix.
func (x *Extractor) Render() (expected, actual string) {
	prefix, suffix := x.CompactPrefix(), x.CompactSuffix()
	expected = prefix + "[" + x.opts.escape(x.ExpectedDiff()) + "]" + suffix
	actual = prefix + "[" + x.opts.escape(x.ActualDiff()) + "]" + suffix
	return expected, actual
}

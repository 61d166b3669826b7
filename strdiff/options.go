package strdiff

const (
	// DefaultContextLength is how many runes of the shared prefix and suffix
	// are shown by default.
	DefaultContextLength = 20

	// DefaultEllipsis marks where a shared prefix or suffix was cut.
	DefaultEllipsis = "..."
)

type options struct {
	contextLength int
	ellipsis      string
	escape        func(string) string
}

func defaultOptions() options {
	return options{
		contextLength: DefaultContextLength,
		ellipsis:      DefaultEllipsis,
		escape:        Escape,
	}
}

// Option follows the functional options pattern to configure New.
type Option func(*options)

// WithContextLength sets how many runes of the shared prefix and suffix are
// kept by CompactPrefix and CompactSuffix. A negative length keeps all.
func WithContextLength(n int) Option {
	return func(opts *options) {
		opts.contextLength = n
	}
}

// WithEllipsis sets the marker that replaces the cut part of a long prefix
// or suffix.
func WithEllipsis(s string) Option {
	return func(opts *options) {
		opts.ellipsis = s
	}
}

// WithEscaper replaces Escape as the function applied to the differing
// middles by Render. A nil escaper leaves them untouched.
func WithEscaper(escape func(string) string) Option {
	return func(opts *options) {
		if escape == nil {
			escape = func(s string) string { return s }
		}
		opts.escape = escape
	}
}

package compiler

import "html"

// Option configures one compilation.
type Option func(*options)

type options struct {
	escape bool
}

// WithEscaping HTML-escapes all user-supplied text fields (names, titles,
// descriptions, prices, footer text) at the point markup is assembled.
// URLs and theme colors are never escaped. The default is verbatim
// pass-through, which matches the trusted single-tenant editing surface;
// enable this whenever configurations arrive from an external source.
func WithEscaping() Option {
	return func(o *options) { o.escape = true }
}

// text applies the configured escaping policy to a user-supplied text field.
func (o options) text(s string) string {
	if o.escape {
		return html.EscapeString(s)
	}
	return s
}

package compiler

import "github.com/a-h/templ"

// Component exposes the compiled document as a templ component so host
// applications can embed a live preview inside templ views. The document is
// compiled eagerly; rendering the component just writes the finished string.
//
// The output is raw, already-assembled markup, so it bypasses templ's own
// escaping; pass WithEscaping here if the configuration is untrusted.
func Component(cfg Config, opts ...Option) templ.Component {
	return templ.Raw(Compile(cfg, opts...))
}

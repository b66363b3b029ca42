// Package compiler transforms a declarative campaign configuration into a
// complete, email-client-safe HTML document.
//
// Email clients cannot be trusted with flexbox, grid, stylesheets, or classes,
// so the compiler emits the one dialect that renders everywhere: nested tables
// with explicit pixel widths and inline styles. Three structurally distinct
// templates are supported: a two-column grid of cards (classic), a
// single-column list with thumbnails (modern), and full-width blocks
// (banner), all driven by the same configuration model.
//
// # Architecture
//
// Compilation is strictly top-down through pure functions with no shared
// state:
//
//	Compile → header/hero/footer assemblers
//	        → one template fragment renderer (closed dispatch over Template)
//	            → per-product sub-renderers (brand badge, price block)
//	            → pkg/geometry for every image placement
//
// Image geometry lives in pkg/geometry so the "recommended image size" hint
// an editing surface shows and the width the compiled document requests come
// from one implementation.
//
// # Usage
//
//	import "github.com/promokit/promokit/pkg/compiler"
//
//	cfg := compiler.Config{
//		Template: compiler.TemplateClassic,
//		Layout:   compiler.Layout{ContentWidth: 600, ProductImageSize: compiler.SizeLarge},
//		Theme:    compiler.Theme{Primary: "#2563eb", Accent: "#dc2626", Background: "#f4f4f7", Text: "#111827"},
//		// ...company, hero, products, footer
//	}
//
//	html := compiler.Compile(cfg)
//
// Configurations round-trip through JSON (ParseJSON, preview API) and YAML
// (ParseYAML, campaign files). Component adapts the output for embedding in
// templ views.
//
// # Input handling
//
// The compiler never fails on well-typed input; every field has a fallback
// path and malformed values surface only as a visually broken email. By
// default all text fields pass through verbatim. WithEscaping enables an
// HTML-escaping boundary at assembly time for untrusted configurations.
package compiler

package compiler

import (
	"fmt"
	"strings"

	"github.com/promokit/promokit/pkg/geometry"
)

// fontFamily is the email-safe stack used on every text element. Email
// clients ignore document-level font rules, so it repeats inline everywhere.
const fontFamily = "'Helvetica Neue',Helvetica,Arial,sans-serif"

// compilation bundles one configuration snapshot with the compile options.
// All render methods hang off it; none mutates it, keeping every fragment
// renderer referentially transparent.
type compilation struct {
	cfg Config
	o   options
}

// Compile transforms a configuration snapshot into a complete, self-contained
// HTML email document. It is pure and deterministic: the same input always
// yields byte-identical output, there is no I/O, and concurrent calls are
// safe because nothing is shared between them.
//
// The document is built exclusively from nested tables with explicit pixel
// widths and inline styles, the only markup dialect that renders reliably
// across email clients. The outer content column is exactly
// cfg.Layout.ContentWidth pixels wide, centered on a full-bleed background in
// the theme's background color.
//
// Compile never fails on well-typed input: missing logo falls back to a text
// wordmark, missing brand data omits the badge, a hidden hero omits the
// section, and an empty product list yields an empty (but valid) products
// fragment.
func Compile(cfg Config, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return compilation{cfg: cfg, o: o}.document()
}

func (c compilation) document() string {
	t := c.cfg.Theme
	w := c.cfg.Layout.ContentWidth

	// The hero title doubles as the document title; a hidden hero must not
	// leak its text anywhere, so the company name stands in.
	title := c.cfg.Hero.Title
	if !c.cfg.Hero.Show {
		title = c.cfg.Company.Name
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", c.o.text(title))
	b.WriteString("</head>\n")
	fmt.Fprintf(&b, "<body style=\"margin:0;padding:0;background-color:%s;\">\n", t.Background)
	fmt.Fprintf(&b, `<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color:%s;"><tr><td align="center" style="padding:24px 0;">`, t.Background)
	fmt.Fprintf(&b, `<table role="presentation" width="%d" cellpadding="0" cellspacing="0" border="0" style="width:%dpx;max-width:100%%;background-color:#ffffff;">`, w, w)
	b.WriteString(c.header())
	b.WriteString(c.hero())
	fmt.Fprintf(&b, `<tr><td style="padding:20px;">%s</td></tr>`, c.products())
	b.WriteString(c.footer())
	b.WriteString(`</table>`)
	b.WriteString("</td></tr></table>\n</body>\n</html>")
	return b.String()
}

// products dispatches to the fragment renderer for the configured template.
// The switch is exhaustive over the known templates; an unrecognized value
// compiles with the classic grid so a misconfigured template still yields a
// usable document instead of a silently empty products section.
func (c compilation) products() string {
	switch c.cfg.Template {
	case TemplateModern:
		return c.modernFragment()
	case TemplateBanner:
		return c.bannerFragment()
	case TemplateClassic:
		return c.classicFragment()
	default:
		return c.classicFragment()
	}
}

// imageWidth is identical for every product under one configuration; the
// geometry is a function of the layout, never of the product.
func (c compilation) imageWidth() int {
	return geometry.ImageWidth(c.cfg.Template, c.cfg.Layout.ContentWidth, c.cfg.Layout.ProductImageSize)
}

func (c compilation) imageHeight() int {
	return geometry.ImageHeight(c.cfg.Template, c.cfg.Layout.ContentWidth, c.cfg.Layout.ProductImageSize)
}

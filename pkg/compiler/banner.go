package compiler

import (
	"fmt"
	"strings"
)

// bannerFragment gives every product its own full-width block: image on top,
// content panel below with an optional brand row and a bottom row placing the
// price on the left against a small call-to-action button on the right.
func (c compilation) bannerFragment() string {
	var b strings.Builder
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">`)
	for _, p := range c.cfg.Products {
		b.WriteString(`<tr><td style="padding:0 0 24px 0;">`)
		if p.Render == RenderImageOnly {
			fmt.Fprintf(&b, `<div style="text-align:center;"><a href="%s" target="_blank"><img src="%s" alt="" width="%d" style="display:inline-block;max-width:100%%;border:0;"></a></div>`,
				p.Link, p.ImageURL, c.imageWidth())
		} else {
			b.WriteString(c.bannerBlock(p))
		}
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</table>`)
	return b.String()
}

func (c compilation) bannerBlock(p Product) string {
	w := c.imageWidth()

	var b strings.Builder
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="border:1px solid #e0e0e0;border-radius:4px;background-color:#ffffff;">`)
	fmt.Fprintf(&b, `<tr><td align="center" style="padding:0;"><a href="%s" target="_blank"><img src="%s" alt="%s" width="%d" style="display:block;max-width:100%%;border:0;"></a></td></tr>`,
		p.Link, p.ImageURL, c.o.text(p.Name), w)
	b.WriteString(`<tr><td style="padding:20px;">`)
	if badge := c.brandBadge(p, alignLeft); badge != "" {
		fmt.Fprintf(&b, `<div style="margin:0 0 8px 0;">%s</div>`, badge)
	}
	fmt.Fprintf(&b, `<h2 style="margin:0 0 6px 0;font-family:%s;font-size:20px;color:%s;">%s</h2>`,
		fontFamily, c.cfg.Theme.Text, c.o.text(p.Name))
	fmt.Fprintf(&b, `<p style="margin:0 0 16px 0;font-family:%s;font-size:14px;line-height:21px;color:#666666;">%s</p>`,
		fontFamily, c.o.text(p.Description))
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>`)
	fmt.Fprintf(&b, `<td align="left" valign="middle">%s</td>`, c.priceBlock(p, 18))
	fmt.Fprintf(&b, `<td align="right" valign="middle"><a href="%s" target="_blank" style="display:inline-block;padding:8px 18px;background-color:%s;color:#ffffff;font-family:%s;font-size:12px;font-weight:bold;text-decoration:none;border-radius:4px;">Shop Now</a></td>`,
		p.Link, c.cfg.Theme.Primary, fontFamily)
	b.WriteString(`</tr></table>`)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

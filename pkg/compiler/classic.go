package compiler

import (
	"fmt"
	"strings"
)

// classicFragment lays products out in a two-column grid, wrapping to a new
// row every two items. An odd final row gets an empty filler cell so the last
// card keeps its half-width instead of stretching across the column.
func (c compilation) classicFragment() string {
	var b strings.Builder
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">`)
	ps := c.cfg.Products
	for i := 0; i < len(ps); i += 2 {
		b.WriteString(`<tr>`)
		b.WriteString(c.classicCell(ps[i]))
		if i+1 < len(ps) {
			b.WriteString(c.classicCell(ps[i+1]))
		} else {
			b.WriteString(`<td width="50%" valign="top" style="padding:8px;"></td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</table>`)
	return b.String()
}

func (c compilation) classicCell(p Product) string {
	w := c.imageWidth()

	var b strings.Builder
	b.WriteString(`<td width="50%" valign="top" style="padding:8px;">`)

	if p.Render == RenderImageOnly {
		// Pre-composited graphic: the image carries all text itself.
		fmt.Fprintf(&b, `<div style="text-align:center;"><a href="%s" target="_blank"><img src="%s" alt="" width="%d" style="display:inline-block;max-width:100%%;border:0;"></a></div>`,
			p.Link, p.ImageURL, w)
		b.WriteString(`</td>`)
		return b.String()
	}

	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="border:1px solid #e0e0e0;border-radius:4px;background-color:#ffffff;">`)
	fmt.Fprintf(&b, `<tr><td align="center" style="padding:16px 16px 12px 16px;"><a href="%s" target="_blank"><img src="%s" alt="%s" width="%d" height="%d" style="display:block;max-width:100%%;border:0;"></a></td></tr>`,
		p.Link, p.ImageURL, c.o.text(p.Name), w, c.imageHeight())
	b.WriteString(`<tr><td align="center" style="padding:0 16px 12px 16px;">`)
	b.WriteString(c.brandBadge(p, alignCenter))
	fmt.Fprintf(&b, `<h3 style="margin:8px 0 4px 0;font-family:%s;font-size:16px;color:%s;">%s</h3>`,
		fontFamily, c.cfg.Theme.Text, c.o.text(p.Name))
	fmt.Fprintf(&b, `<p style="margin:0 0 8px 0;font-family:%s;font-size:13px;line-height:19px;color:#666666;">%s</p>`,
		fontFamily, c.o.text(p.Description))
	b.WriteString(c.priceBlock(p, 16))
	b.WriteString(`</td></tr>`)
	fmt.Fprintf(&b, `<tr><td align="center" style="padding:0 16px 20px 16px;"><a href="%s" target="_blank" style="display:inline-block;padding:10px 24px;background-color:%s;color:#ffffff;font-family:%s;font-size:13px;font-weight:bold;text-decoration:none;border-radius:4px;">View Details</a></td></tr>`,
		p.Link, c.cfg.Theme.Primary, fontFamily)
	b.WriteString(`</table></td>`)
	return b.String()
}

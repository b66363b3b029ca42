package compiler

import (
	"fmt"
	"strings"
)

// modernFragment lays products out as a single-column list, one row per item,
// with a hairline divider between rows. Structured rows put a fixed square
// thumbnail beside a text column; image-only rows bleed the image across the
// full inner width (content width minus the 20px wrapper padding each side).
func (c compilation) modernFragment() string {
	var b strings.Builder
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">`)
	ps := c.cfg.Products
	for i, p := range ps {
		divider := ""
		if i < len(ps)-1 {
			divider = "border-bottom:1px solid #e8e8e8;"
		}
		fmt.Fprintf(&b, `<tr><td style="padding:16px 0;%s">`, divider)
		if p.Render == RenderImageOnly {
			full := c.cfg.Layout.ContentWidth - 40
			fmt.Fprintf(&b, `<a href="%s" target="_blank"><img src="%s" alt="" width="%d" style="display:block;width:100%%;max-width:100%%;border:0;"></a>`,
				p.Link, p.ImageURL, full)
		} else {
			b.WriteString(c.modernRow(p))
		}
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</table>`)
	return b.String()
}

func (c compilation) modernRow(p Product) string {
	w := c.imageWidth()

	var b strings.Builder
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>`)
	fmt.Fprintf(&b, `<td width="%d" valign="top"><a href="%s" target="_blank"><img src="%s" alt="%s" width="%d" height="%d" style="display:block;border:0;"></a></td>`,
		w, p.Link, p.ImageURL, c.o.text(p.Name), w, c.imageHeight())
	b.WriteString(`<td valign="top" style="padding-left:16px;">`)
	b.WriteString(c.brandBadge(p, alignLeft))
	fmt.Fprintf(&b, `<h3 style="margin:6px 0 4px 0;font-family:%s;font-size:16px;color:%s;">%s</h3>`,
		fontFamily, c.cfg.Theme.Text, c.o.text(p.Name))
	if price := c.priceBlock(p, 15); price != "" {
		fmt.Fprintf(&b, `<div style="margin:0 0 6px 0;">%s</div>`, price)
	}
	fmt.Fprintf(&b, `<p style="margin:0 0 10px 0;font-family:%s;font-size:13px;line-height:19px;color:#666666;">%s</p>`,
		fontFamily, c.o.text(p.Description))
	fmt.Fprintf(&b, `<a href="%s" target="_blank" style="font-family:%s;font-size:13px;font-weight:bold;color:%s;text-decoration:none;">Shop Now &rarr;</a>`,
		p.Link, fontFamily, c.cfg.Theme.Primary)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

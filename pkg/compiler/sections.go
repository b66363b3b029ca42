package compiler

import (
	"fmt"
	"strings"
)

// header renders the centered company logo, falling back to a text wordmark
// in the primary color when no logo URL is set. Either way the mark links to
// the company website.
func (c compilation) header() string {
	co := c.cfg.Company

	var mark string
	if co.LogoURL != "" {
		mark = fmt.Sprintf(`<img src="%s" alt="%s" height="40" style="display:block;border:0;max-height:40px;">`,
			co.LogoURL, c.o.text(co.Name))
	} else {
		mark = fmt.Sprintf(`<span style="font-family:%s;font-size:26px;font-weight:bold;color:%s;">%s</span>`,
			fontFamily, c.cfg.Theme.Primary, c.o.text(co.Name))
	}

	return fmt.Sprintf(`<tr><td align="center" style="padding:32px 20px 24px 20px;"><a href="%s" target="_blank" style="text-decoration:none;">%s</a></td></tr>`,
		co.WebsiteURL, mark)
}

// hero renders the full-width banner image and its text panel, or nothing at
// all when the hero is switched off. The modern template tints the panel with
// a light neutral; the other templates reuse the page background.
func (c compilation) hero() string {
	h := c.cfg.Hero
	if !h.Show {
		return ""
	}

	panelBg := c.cfg.Theme.Background
	if c.cfg.Template == TemplateModern {
		panelBg = "#f7f7f7"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<tr><td style="padding:0;"><a href="%s" target="_blank"><img src="%s" alt="%s" width="%d" style="display:block;width:100%%;max-width:100%%;border:0;"></a></td></tr>`,
		h.CTALink, h.ImageURL, c.o.text(h.Title), c.cfg.Layout.ContentWidth)
	fmt.Fprintf(&b, `<tr><td align="center" style="padding:32px 20px;background-color:%s;">`, panelBg)
	fmt.Fprintf(&b, `<h1 style="margin:0 0 8px 0;font-family:%s;font-size:28px;color:%s;">%s</h1>`,
		fontFamily, c.cfg.Theme.Text, c.o.text(h.Title))
	fmt.Fprintf(&b, `<p style="margin:0 0 20px 0;font-family:%s;font-size:15px;line-height:22px;color:#666666;">%s</p>`,
		fontFamily, c.o.text(h.Subtitle))
	fmt.Fprintf(&b, `<a href="%s" target="_blank" style="display:inline-block;padding:12px 28px;background-color:%s;color:#ffffff;font-family:%s;font-size:14px;font-weight:bold;text-decoration:none;border-radius:4px;">%s</a>`,
		h.CTALink, c.cfg.Theme.Primary, fontFamily, c.o.text(h.CTAText))
	b.WriteString(`</td></tr>`)
	return b.String()
}

// footer renders the centered closing block on a neutral background.
func (c compilation) footer() string {
	f := c.cfg.Footer
	co := c.cfg.Company

	var b strings.Builder
	b.WriteString(`<tr><td align="center" style="padding:28px 20px;background-color:#f2f2f2;">`)
	fmt.Fprintf(&b, `<p style="margin:0 0 4px 0;font-family:%s;font-size:13px;font-weight:bold;color:#555555;">%s</p>`,
		fontFamily, c.o.text(co.Name))
	fmt.Fprintf(&b, `<p style="margin:0 0 4px 0;font-family:%s;font-size:12px;color:#888888;">%s</p>`,
		fontFamily, c.o.text(f.Address))
	fmt.Fprintf(&b, `<p style="margin:0 0 12px 0;font-family:%s;font-size:12px;color:#888888;">%s</p>`,
		fontFamily, c.o.text(f.Text))
	fmt.Fprintf(&b, `<a href="%s" target="_blank" style="font-family:%s;font-size:12px;color:%s;">Visit our website</a>`,
		co.WebsiteURL, fontFamily, c.cfg.Theme.Primary)
	b.WriteString(`</td></tr>`)
	return b.String()
}

package compiler

import (
	"fmt"
	"strings"
)

// Alignment values templates pass to brandBadge. The grid centers badges
// inside its cards, the list and banner layouts keep them left of the text.
const (
	alignLeft   = "left"
	alignCenter = "center"
)

// brandBadge renders the small logo+label row above a product title. It
// emits nothing when the product carries no brand data at all; either half
// may be present on its own.
func (c compilation) brandBadge(p Product, align string) string {
	if p.BrandName == "" && p.BrandLogoURL == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<table role="presentation" cellpadding="0" cellspacing="0" border="0" align="%s"><tr>`, align)
	if p.BrandLogoURL != "" {
		fmt.Fprintf(&b, `<td valign="middle" style="padding-right:6px;"><img src="%s" alt="" width="20" height="20" style="display:block;border:0;"></td>`, p.BrandLogoURL)
	}
	if p.BrandName != "" {
		fmt.Fprintf(&b, `<td valign="middle" style="font-family:%s;font-size:11px;font-weight:bold;letter-spacing:1px;text-transform:uppercase;color:#888888;">%s</td>`,
			fontFamily, c.o.text(p.BrandName))
	}
	b.WriteString(`</tr></table>`)
	return b.String()
}

// priceBlock renders exactly one of: the discount label in the accent color,
// the price in the primary color, or nothing. Templates request their own
// font size.
func (c compilation) priceBlock(p Product, fontSize int) string {
	switch p.Pricing {
	case PricingHidden:
		return ""
	case PricingDiscount:
		return fmt.Sprintf(`<span style="font-family:%s;font-size:%dpx;font-weight:bold;color:%s;">%s</span>`,
			fontFamily, fontSize, c.cfg.Theme.Accent, c.o.text(p.DiscountText))
	default:
		return fmt.Sprintf(`<span style="font-family:%s;font-size:%dpx;font-weight:bold;color:%s;">%s</span>`,
			fontFamily, fontSize, c.cfg.Theme.Primary, c.o.text(p.Price))
	}
}

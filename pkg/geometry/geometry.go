package geometry

import (
	"fmt"
	"math"
)

// Template identifies one of the structurally distinct email layouts.
type Template string

const (
	// TemplateClassic arranges products in a two-column grid of bordered cards.
	TemplateClassic Template = "classic"
	// TemplateModern arranges products in a single-column list with thumbnails.
	TemplateModern Template = "modern"
	// TemplateBanner renders each product as its own full-width block.
	TemplateBanner Template = "banner"
)

// SizeTier is the coarse product image scale control. Each template
// interprets the tier with its own visual tuning.
type SizeTier string

const (
	SizeSmall  SizeTier = "small"
	SizeMedium SizeTier = "medium"
	SizeLarge  SizeTier = "large"
)

// ImageWidth returns the pixel width a product image occupies in the compiled
// document for the given template, outer content-column width, and size tier.
//
// The same function feeds both the compiler and the editor-facing
// RecommendedCut hint, so the crop a user is told to prepare and the width
// the document actually requests cannot drift apart.
//
// An unrecognized size tier is treated as SizeLarge, and an unrecognized
// template falls back to the classic grid formula, matching the compiler's
// template fallback. Out-of-range contentWidth values pass through
// unclamped; range enforcement belongs to the caller.
func ImageWidth(tpl Template, contentWidth int, size SizeTier) int {
	switch tpl {
	case TemplateModern:
		// Fixed thumbnail sizes, independent of the content width.
		switch size {
		case SizeSmall:
			return 100
		case SizeMedium:
			return 140
		default:
			return 180
		}
	case TemplateBanner:
		var scale float64
		switch size {
		case SizeSmall:
			scale = 0.7
		case SizeMedium:
			scale = 0.85
		default:
			scale = 1.0
		}
		return int(math.Round(float64(contentWidth) * scale))
	default:
		// Classic grid: half the column minus gutter, then scaled.
		var scale float64
		switch size {
		case SizeSmall:
			scale = 0.6
		case SizeMedium:
			scale = 0.8
		default:
			scale = 1.0
		}
		return int(math.Round((float64(contentWidth)/2 - 20) * scale))
	}
}

// ImageHeight returns the pixel height a product image occupies for the
// given template, content width, and size tier. Classic cards and modern
// thumbnails use square crops, so the height equals ImageWidth. Banner
// images span the full block width and scale their height from the source
// aspect ratio; for those ImageHeight returns 0, meaning no explicit height
// attribute should be emitted.
func ImageHeight(tpl Template, contentWidth int, size SizeTier) int {
	if tpl == TemplateBanner {
		return 0
	}
	return ImageWidth(tpl, contentWidth, size)
}

// RecommendedCut formats the image dimensions a user should crop source
// images to for the given layout, e.g. "280 x 280 px" for square placements
// or "510 px width" for the full-width banner template.
func RecommendedCut(tpl Template, contentWidth int, size SizeTier) string {
	px := ImageWidth(tpl, contentWidth, size)
	if tpl == TemplateBanner {
		return fmt.Sprintf("%d px width", px)
	}
	return fmt.Sprintf("%d x %d px", px, px)
}

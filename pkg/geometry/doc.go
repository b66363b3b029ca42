// Package geometry computes pixel dimensions for product image placements in
// compiled promotional emails.
//
// Email clients require explicit pixel widths on images inside table layouts,
// so every placement is derived up front from three inputs: the template, the
// outer content-column width, and the coarse small/medium/large size tier.
// The formulas are template-specific:
//
//   - classic (two-column grid): round((contentWidth/2 − 20) × {0.6, 0.8, 1.0})
//   - modern (list thumbnails):  fixed {100, 140, 180}, width-independent
//   - banner (full-width):       round(contentWidth × {0.7, 0.85, 1.0})
//
// The package exists so that the document compiler and any editing surface
// showing a "recommended image size" hint consume one implementation and can
// never disagree. Inputs are treated permissively: an unknown size tier means
// large, an unknown template means the classic formula.
//
// # Usage
//
//	import "github.com/promokit/promokit/pkg/geometry"
//
//	w := geometry.ImageWidth(geometry.TemplateClassic, 600, geometry.SizeLarge) // 280
//	hint := geometry.RecommendedCut(geometry.TemplateBanner, 600, geometry.SizeMedium) // "510 px width"
package geometry

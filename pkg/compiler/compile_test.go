package compiler_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promokit/promokit/pkg/compiler"
	"github.com/promokit/promokit/pkg/geometry"
)

// campaign builds a representative configuration with n structured products.
func campaign(tpl compiler.Template, n int) compiler.Config {
	cfg := compiler.Config{
		Template: tpl,
		Layout:   compiler.Layout{ContentWidth: 600, ProductImageSize: compiler.SizeLarge},
		Theme: compiler.Theme{
			Primary:    "#2563eb",
			Accent:     "#dc2626",
			Background: "#f4f4f7",
			Text:       "#111827",
		},
		Company: compiler.Company{
			Name:       "Acme Outfitters",
			LogoURL:    "https://cdn.acme.test/logo.png",
			WebsiteURL: "https://acme.test",
		},
		Hero: compiler.Hero{
			Show:     true,
			ImageURL: "https://cdn.acme.test/hero.jpg",
			Title:    "Summer Sale",
			Subtitle: "Up to 50% off everything",
			CTAText:  "Shop the Sale",
			CTALink:  "https://acme.test/sale",
		},
		Footer: compiler.Footer{
			Text:    "You are receiving this because you subscribed.",
			Address: "1 Main St, Springfield",
		},
	}
	for i := 0; i < n; i++ {
		cfg.Products = append(cfg.Products, compiler.Product{
			ID:          fmt.Sprintf("p-%d", i+1),
			Name:        fmt.Sprintf("Trail Jacket %d", i+1),
			Price:       fmt.Sprintf("$%d.00", 80+i),
			Pricing:     compiler.PricingStandard,
			Description: "Weatherproof shell for shoulder-season hikes.",
			ImageURL:    fmt.Sprintf("https://cdn.acme.test/p%d.jpg", i+1),
			Link:        fmt.Sprintf("https://acme.test/p/%d", i+1),
			BrandName:   "NorthPeak",
			Render:      compiler.RenderHTML,
		})
	}
	return cfg
}

func TestCompile_Determinism(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.TemplateModern, 3)
	first := compiler.Compile(cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, compiler.Compile(cfg), "identical input must yield byte-identical output")
	}
}

func TestCompile_DocumentShell(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.TemplateClassic, 2)
	doc := compiler.Compile(cfg)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<meta charset="utf-8">`)
	assert.Contains(t, doc, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	assert.Contains(t, doc, "<title>Summer Sale</title>", "title comes from the hero title")
	assert.Contains(t, doc, `width="600"`, "outer column matches the configured content width exactly")
	assert.Contains(t, doc, "width:600px")
	assert.Contains(t, doc, "background-color:#f4f4f7", "full-bleed background uses the theme color")
	assert.NotContains(t, doc, "class=", "email markup must style inline, never by class")
	assert.NotContains(t, doc, "<link", "no external stylesheets")
}

func TestCompile_GeometryAgreement(t *testing.T) {
	t.Parallel()

	for _, tpl := range []compiler.Template{compiler.TemplateClassic, compiler.TemplateModern, compiler.TemplateBanner} {
		for _, size := range []compiler.SizeTier{compiler.SizeSmall, compiler.SizeMedium, compiler.SizeLarge} {
			for _, width := range []int{400, 600, 800} {
				cfg := campaign(tpl, 1)
				cfg.Layout.ContentWidth = width
				cfg.Layout.ProductImageSize = size

				want := geometry.ImageWidth(tpl, width, size)
				doc := compiler.Compile(cfg)
				// Anchor on the product img tag so the assertion cannot be
				// satisfied by the outer column width.
				assert.Contains(t, doc, fmt.Sprintf(`<img src="https://cdn.acme.test/p1.jpg" alt="Trail Jacket 1" width="%d"`, want),
					"compiled %s/%s/%d must request the same width the size hint reports", tpl, size, width)
			}
		}
	}
}

func TestCompile_HeroSuppression(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.TemplateClassic, 1)
	cfg.Hero.Show = false
	doc := compiler.Compile(cfg)

	assert.NotContains(t, doc, "Summer Sale")
	assert.NotContains(t, doc, "hero.jpg")
	assert.NotContains(t, doc, "Shop the Sale")
	assert.Contains(t, doc, "Acme Outfitters", "header survives a hidden hero")
	assert.Contains(t, doc, "1 Main St, Springfield", "footer survives a hidden hero")
}

func TestCompile_EmptyProductList(t *testing.T) {
	t.Parallel()

	for _, tpl := range []compiler.Template{compiler.TemplateClassic, compiler.TemplateModern, compiler.TemplateBanner} {
		cfg := campaign(tpl, 0)
		doc := compiler.Compile(cfg)

		require.NotEmpty(t, doc)
		assert.Contains(t, doc, "Summer Sale", "hero intact")
		assert.Contains(t, doc, "Visit our website", "footer intact")
		assert.NotContains(t, doc, "Trail Jacket", "no item rows")
	}
}

func TestCompile_UnknownTemplateFallsBackToGrid(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.Template("brutalist"), 2)
	doc := compiler.Compile(cfg)

	assert.Contains(t, doc, "View Details", "unknown template compiles with the classic grid renderer")
	assert.Contains(t, doc, "Trail Jacket 1")
	assert.Contains(t, doc, "Trail Jacket 2")
}

func TestCompile_HeaderFallsBackToWordmark(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.TemplateClassic, 1)
	cfg.Company.LogoURL = ""
	doc := compiler.Compile(cfg)

	assert.NotContains(t, doc, "logo.png")
	assert.Contains(t, doc, ">Acme Outfitters</span>", "text wordmark replaces the missing logo")
	assert.Contains(t, doc, `href="https://acme.test"`, "wordmark still links to the website")
}

func TestCompile_Escaping(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.TemplateModern, 1)
	cfg.Products[0].Name = `<script>alert("x")</script>`

	t.Run("verbatim by default", func(t *testing.T) {
		t.Parallel()
		doc := compiler.Compile(cfg)
		assert.Contains(t, doc, `<script>alert("x")</script>`)
	})

	t.Run("entity-escaped with WithEscaping", func(t *testing.T) {
		t.Parallel()
		doc := compiler.Compile(cfg, compiler.WithEscaping())
		assert.NotContains(t, doc, "<script>")
		assert.Contains(t, doc, "&lt;script&gt;")
		assert.Contains(t, doc, `src="https://cdn.acme.test/p1.jpg"`, "URLs are never escaped")
	})
}

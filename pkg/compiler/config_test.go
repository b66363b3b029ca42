package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promokit/promokit/pkg/compiler"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a full configuration", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{
			"template": "modern",
			"layout": {"content_width": 640, "product_image_size": "medium"},
			"theme": {"primary": "#111", "accent": "#f00", "background": "#fff", "text": "#000"},
			"company": {"name": "Acme", "website_url": "https://acme.test"},
			"hero": {"show": true, "title": "Hello"},
			"products": [
				{"id": "p1", "name": "Jacket", "price": "$80", "pricing_mode": "standard", "render_mode": "html"},
				{"id": "p2", "name": "Poster", "pricing_mode": "hidden", "render_mode": "image-only"}
			],
			"footer": {"text": "bye", "address": "1 Main St"}
		}`)

		cfg, err := compiler.ParseJSON(data)
		require.NoError(t, err)
		assert.Equal(t, compiler.TemplateModern, cfg.Template)
		assert.Equal(t, 640, cfg.Layout.ContentWidth)
		assert.Equal(t, compiler.SizeMedium, cfg.Layout.ProductImageSize)
		require.Len(t, cfg.Products, 2)
		assert.Equal(t, compiler.PricingStandard, cfg.Products[0].Pricing)
		assert.Equal(t, compiler.RenderImageOnly, cfg.Products[1].Render)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		_, err := compiler.ParseJSON([]byte(`{"template": `))
		require.Error(t, err)
		assert.ErrorIs(t, err, compiler.ErrParseConfig)
	})
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("decodes a campaign file", func(t *testing.T) {
		t.Parallel()
		data := []byte(`
template: banner
layout:
  content_width: 600
  product_image_size: small
theme:
  primary: "#2563eb"
  accent: "#dc2626"
  background: "#f4f4f7"
  text: "#111827"
products:
  - id: p1
    name: Jacket
    discount_text: "Now $49"
    pricing_mode: discount
    render_mode: html
`)
		cfg, err := compiler.ParseYAML(data)
		require.NoError(t, err)
		assert.Equal(t, compiler.TemplateBanner, cfg.Template)
		assert.Equal(t, compiler.SizeSmall, cfg.Layout.ProductImageSize)
		require.Len(t, cfg.Products, 1)
		assert.Equal(t, compiler.PricingDiscount, cfg.Products[0].Pricing)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		_, err := compiler.ParseYAML([]byte("template: [unclosed"))
		require.Error(t, err)
		assert.ErrorIs(t, err, compiler.ErrParseConfig)
	})
}

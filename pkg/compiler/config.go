package compiler

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/promokit/promokit/pkg/geometry"
)

// Template and SizeTier are shared with the geometry package so the compiler
// and the editor-facing size hint speak the same vocabulary.
type (
	Template = geometry.Template
	SizeTier = geometry.SizeTier
)

const (
	TemplateClassic = geometry.TemplateClassic
	TemplateModern  = geometry.TemplateModern
	TemplateBanner  = geometry.TemplateBanner

	SizeSmall  = geometry.SizeSmall
	SizeMedium = geometry.SizeMedium
	SizeLarge  = geometry.SizeLarge
)

// PricingMode selects, mutually exclusively, whether a product shows its
// price, its discount label, or nothing at all.
type PricingMode string

const (
	PricingStandard PricingMode = "standard"
	PricingDiscount PricingMode = "discount"
	PricingHidden   PricingMode = "hidden"
)

// RenderMode selects between a structured text+image product card and a
// single pre-composited image that carries all of its text itself.
type RenderMode string

const (
	RenderHTML      RenderMode = "html"
	RenderImageOnly RenderMode = "image-only"
)

// Config is the full input to one compilation. It is treated as an immutable
// snapshot: the compiler reads it and never mutates it, so a caller may reuse
// one value across concurrent compilations.
//
// All string fields pass into the generated markup verbatim unless the
// WithEscaping option is supplied; escaping untrusted input is otherwise the
// caller's responsibility.
type Config struct {
	Template Template  `json:"template" yaml:"template"`
	Layout   Layout    `json:"layout" yaml:"layout"`
	Theme    Theme     `json:"theme" yaml:"theme"`
	Company  Company   `json:"company" yaml:"company"`
	Hero     Hero      `json:"hero" yaml:"hero"`
	Products []Product `json:"products" yaml:"products"`
	Footer   Footer    `json:"footer" yaml:"footer"`
}

// Layout fixes the outer content column width and the product image tier.
// ContentWidth is conventionally 400..800 px but is deliberately not clamped;
// the editing surface owns range enforcement.
type Layout struct {
	ContentWidth     int      `json:"content_width" yaml:"content_width"`
	ProductImageSize SizeTier `json:"product_image_size" yaml:"product_image_size"`
}

// Theme carries the four color strings used across the document. Values are
// opaque to the compiler and emitted as-is into inline styles.
type Theme struct {
	Primary    string `json:"primary" yaml:"primary"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
}

// Company identifies the sender brand. An empty LogoURL falls back to a text
// wordmark in the theme's primary color.
type Company struct {
	Name       string `json:"name" yaml:"name"`
	LogoURL    string `json:"logo_url" yaml:"logo_url"`
	WebsiteURL string `json:"website_url" yaml:"website_url"`
}

// Hero configures the optional banner section between the header and the
// product listing. Show=false omits the section entirely.
type Hero struct {
	Show     bool   `json:"show" yaml:"show"`
	ImageURL string `json:"image_url" yaml:"image_url"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	CTAText  string `json:"cta_text" yaml:"cta_text"`
	CTALink  string `json:"cta_link" yaml:"cta_link"`
}

// Footer holds the closing free text and postal address.
type Footer struct {
	Text    string `json:"text" yaml:"text"`
	Address string `json:"address" yaml:"address"`
}

// Product is one item in the listing. Price and DiscountText are
// pre-formatted display strings, not numeric amounts; which one renders is
// governed solely by Pricing. ID is stable caller-side identity and never
// appears in the output.
type Product struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Price        string      `json:"price" yaml:"price"`
	DiscountText string      `json:"discount_text" yaml:"discount_text"`
	Pricing      PricingMode `json:"pricing_mode" yaml:"pricing_mode"`
	Description  string      `json:"description" yaml:"description"`
	ImageURL     string      `json:"image_url" yaml:"image_url"`
	Link         string      `json:"link" yaml:"link"`
	BrandName    string      `json:"brand_name" yaml:"brand_name"`
	BrandLogoURL string      `json:"brand_logo_url" yaml:"brand_logo_url"`
	Render       RenderMode  `json:"render_mode" yaml:"render_mode"`
}

// ErrParseConfig is returned when a serialized configuration cannot be
// decoded. The underlying decoder error is joined for inspection.
var ErrParseConfig = errors.New("failed to parse email configuration")

// ParseJSON decodes a configuration snapshot from JSON, the format the
// preview API accepts.
func ParseJSON(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}

// ParseYAML decodes a configuration snapshot from YAML, convenient for
// campaign definitions kept in files.
func ParseYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}

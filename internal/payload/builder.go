package payload

import (
	"fmt"

	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// Payload is the canonical listing payload sent to the listings backend.
// After building it never holds nil, "", empty slices or empty maps.
type Payload map[string]any

// Nested returns the category object stored under key, or nil.
func (p Payload) Nested(key string) map[string]any {
	m, _ := p[key].(map[string]any)
	return m
}

// Options holds the defaults a Builder falls back to.
type Options struct {
	Currency    string
	Country     string
	City        string
	KnownCities []string
}

// DefaultOptions returns the marketplace defaults.
func DefaultOptions() Options {
	return Options{
		Currency:    "NGN",
		Country:     "Nigeria",
		City:        "Lagos",
		KnownCities: KnownCities,
	}
}

// Builder maps raw form state to canonical payloads. It holds no mutable
// state and is safe for concurrent use.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder; zero-valued options take the defaults.
func NewBuilder(opts Options) *Builder {
	def := DefaultOptions()
	if opts.Currency == "" {
		opts.Currency = def.Currency
	}
	if opts.Country == "" {
		opts.Country = def.Country
	}
	if opts.City == "" {
		opts.City = def.City
	}
	if opts.KnownCities == nil {
		opts.KnownCities = def.KnownCities
	}
	return &Builder{opts: opts}
}

var defaultBuilder = NewBuilder(DefaultOptions())

// BuildListingPayload builds a payload with the default options.
func BuildListingPayload(category domain.Category, form Form, businessID string, images []ImageRef) (Payload, error) {
	return defaultBuilder.Build(category, form, businessID, images)
}

// Build dispatches to the builder for category. An unknown category is the
// only error; malformed form values never fail the build.
func (b *Builder) Build(category domain.Category, form Form, businessID string, images []ImageRef) (Payload, error) {
	switch category {
	case domain.CategoryCarRental:
		return b.CarRental(form, businessID, images), nil
	case domain.CategoryResort:
		return b.Resort(form, businessID, images), nil
	case domain.CategoryFineDining:
		return b.FineDining(form, businessID, images), nil
	case domain.CategoryConvenienceService:
		return b.Convenience(form, businessID, images), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, category)
	}
}

// base assembles the fields shared by every category.
func (b *Builder) base(category domain.Category, form Form, businessID string, images []ImageRef, title string, basePrice int64) Payload {
	p := Payload{
		catalog.FieldBusinessID:  firstNonEmpty(businessID, form.String("businessId")),
		catalog.FieldTitle:       title,
		catalog.FieldDescription: form.String("description"),
		catalog.FieldCategory:    string(category),
		catalog.FieldBasePrice:   basePrice,
		catalog.FieldCurrency:    firstNonEmpty(form.String("currency"), b.opts.Currency),
		catalog.FieldStatus:      string(domain.NormalizeStatus(form.String("status"))),
		catalog.FieldLocation:    b.location(form),
	}
	if !HasPending(images) {
		p[catalog.FieldImages] = UploadedURLs(images)
	}
	return p
}

// finalize strips empties from the assembled payload.
func finalize(p Payload) Payload {
	m, _ := StripEmptyDeep(p).(map[string]any)
	if m == nil {
		return Payload{}
	}
	return Payload(m)
}

// priceOrZero parses the first price alias; unparseable prices are 0.
func priceOrZero(form Form, keys ...string) int64 {
	n, ok := form.Int(keys...)
	if !ok {
		return 0
	}
	return n
}

// optionalInt parses the first alias; unparseable values are nil and get
// stripped.
func optionalInt(form Form, keys ...string) any {
	n, ok := form.Int(keys...)
	if !ok {
		return nil
	}
	return n
}

func optionalBool(form Form, keys ...string) any {
	v, ok := form.Bool(keys...)
	if !ok {
		return nil
	}
	return v
}

// translate converts a label to its enum token; empty input is nil.
func translate(category domain.Category, field, label string) any {
	token, ok := catalog.LabelToEnum(category, field, label)
	if !ok {
		return nil
	}
	return token
}

// translateAll translates each element independently, dropping empty results.
func translateAll(category domain.Category, field string, labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if token, ok := catalog.LabelToEnum(category, field, l); ok {
			out = append(out, token)
		}
	}
	return out
}

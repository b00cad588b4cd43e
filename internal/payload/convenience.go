package payload

import (
	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// BuildConveniencePayload builds a convenience service payload with the
// default options.
func BuildConveniencePayload(form Form, businessID string, images []ImageRef) Payload {
	return defaultBuilder.Convenience(form, businessID, images)
}

// Convenience builds the payload for a CONVENIENCE_SERVICE listing. Exactly
// one of fixedPrice and hourlyRate is set, chosen by priceType.
//
// Aliases, first truthy wins:
//
//	title           serviceName, title
//	basePrice       basePrice, price, fixedPrice, hourlyRate
//	serviceType     serviceType, type
//	priceType       priceType, pricingType
//	fixedPrice      fixedPrice, price, basePrice
//	hourlyRate      hourlyRate, price, basePrice
//	serviceDuration serviceDuration, duration
//	serviceArea     serviceArea, coverageArea
//	availableDays   availableDays, availability (list)
//	callOutFee      callOutFee, calloutFee
func (b *Builder) Convenience(form Form, businessID string, images []ImageRef) Payload {
	const cat = domain.CategoryConvenienceService
	p := b.base(cat, form, businessID, images,
		form.String("serviceName", "title"),
		priceOrZero(form, "basePrice", "price", "fixedPrice", "hourlyRate"),
	)

	priceType := translate(cat, catalog.FieldPriceType, form.String("priceType", "pricingType"))
	nested := map[string]any{
		catalog.FieldServiceType:   translate(cat, catalog.FieldServiceType, form.String("serviceType", "type")),
		catalog.FieldPriceType:     priceType,
		"serviceDuration":          optionalInt(form, "serviceDuration", "duration"),
		"serviceArea":              form.String("serviceArea", "coverageArea"),
		catalog.FieldAvailableDays: translateAll(cat, catalog.FieldAvailableDays, form.Strings("availableDays", "availability")),
		"callOutFee":               optionalInt(form, "callOutFee", "calloutFee"),
	}
	switch priceType {
	case catalog.PriceTypeFixed:
		nested["fixedPrice"] = optionalInt(form, "fixedPrice", "price", "basePrice")
	case catalog.PriceTypeHourly:
		nested["hourlyRate"] = optionalInt(form, "hourlyRate", "price", "basePrice")
	}
	p["convenience"] = nested
	return finalize(p)
}

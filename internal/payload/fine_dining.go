package payload

import (
	"fmt"
	"strings"

	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// BuildFineDiningPayload builds a fine dining payload with the default options.
func BuildFineDiningPayload(form Form, businessID string, images []ImageRef) Payload {
	return defaultBuilder.FineDining(form, businessID, images)
}

// FineDining builds the payload for a FINE_DINING listing. When the base
// price resolves to 0 and the menu has priced items, the cheapest item price
// becomes the base price.
//
// Aliases, first truthy wins:
//
//	title               restaurantName, title
//	basePrice           basePrice, pricePerPerson, price
//	cuisineType         cuisineTypes, cuisineType, cuisine (list)
//	diningType          diningType
//	dressCode           dressCode
//	seatingCapacity     seatingCapacity, capacity
//	openingTime         openingTime, opensAt
//	closingTime         closingTime, closesAt
//	reservationRequired reservationRequired
//	menuItems           menuItems, menu
func (b *Builder) FineDining(form Form, businessID string, images []ImageRef) Payload {
	const cat = domain.CategoryFineDining

	items, cheapest, priced := menuItems(form.Objects("menuItems", "menu"))
	basePrice := priceOrZero(form, "basePrice", "pricePerPerson", "price")
	if basePrice == 0 && priced {
		basePrice = cheapest
	}

	p := b.base(cat, form, businessID, images, form.String("restaurantName", "title"), basePrice)
	p["dining"] = map[string]any{
		catalog.FieldCuisineType: translateAll(cat, catalog.FieldCuisineType, form.Strings("cuisineTypes", "cuisineType", "cuisine")),
		catalog.FieldDiningType:  translate(cat, catalog.FieldDiningType, form.String("diningType")),
		catalog.FieldDressCode:   translate(cat, catalog.FieldDressCode, form.String("dressCode")),
		"seatingCapacity":        optionalInt(form, "seatingCapacity", "capacity"),
		"openingTime":            form.String("openingTime", "opensAt"),
		"closingTime":            form.String("closingTime", "closesAt"),
		"reservationRequired":    optionalBool(form, "reservationRequired"),
		"menuItems":              items,
	}
	return finalize(p)
}

// menuItems keeps the items with a non-blank name and a price. Items with no
// price are dropped. A price that does not parse is kept as its raw text so
// validation rejects the menu instead of losing the item. cheapest is the
// lowest parsed price and priced reports whether any price parsed.
func menuItems(raw []Form) (out []any, cheapest int64, priced bool) {
	for _, item := range raw {
		name := strings.TrimSpace(item.String("name"))
		if name == "" || !hasPrice(item["price"]) {
			continue
		}
		var price any
		if n, ok := parseInt(item["price"]); ok {
			if !priced || n < cheapest {
				cheapest = n
			}
			priced = true
			price = n
		} else {
			price = rawPrice(item["price"])
		}
		out = append(out, map[string]any{
			"name":        name,
			"description": item.String("description"),
			"category":    item.String("category"),
			"price":       price,
		})
	}
	return out, cheapest, priced
}

func hasPrice(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	}
	return true
}

func rawPrice(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(v)
}

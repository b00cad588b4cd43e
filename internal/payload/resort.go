package payload

import (
	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// BuildResortPayload builds a resort payload with the default options.
func BuildResortPayload(form Form, businessID string, images []ImageRef) Payload {
	return defaultBuilder.Resort(form, businessID, images)
}

// Resort builds the payload for a RESORT listing.
//
// Aliases, first truthy wins:
//
//	title             resortName, title
//	basePrice         pricePerNight, basePrice, price
//	resortType        resortType, type
//	accommodationType accommodationType, roomType
//	capacity          capacity, maxGuests, guestCapacity
//	numberOfRooms     numberOfRooms, rooms
//	minimumStay       minimumStay, minStay, minimumNights
//	amenities         amenities
func (b *Builder) Resort(form Form, businessID string, images []ImageRef) Payload {
	const cat = domain.CategoryResort
	p := b.base(cat, form, businessID, images,
		form.String("resortName", "title"),
		priceOrZero(form, "pricePerNight", "basePrice", "price"),
	)
	p["resort"] = map[string]any{
		catalog.FieldResortType:        translate(cat, catalog.FieldResortType, form.String("resortType", "type")),
		catalog.FieldAccommodationType: translate(cat, catalog.FieldAccommodationType, form.String("accommodationType", "roomType")),
		"capacity":                     optionalInt(form, "capacity", "maxGuests", "guestCapacity"),
		"numberOfRooms":                optionalInt(form, "numberOfRooms", "rooms"),
		"checkInTime":                  form.String("checkInTime"),
		"checkOutTime":                 form.String("checkOutTime"),
		"minimumStay":                  optionalInt(form, "minimumStay", "minStay", "minimumNights"),
		catalog.FieldAmenities:         translateAll(cat, catalog.FieldAmenities, form.Strings("amenities")),
	}
	return finalize(p)
}

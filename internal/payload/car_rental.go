package payload

import (
	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// BuildCarRentalPayload builds a car rental payload with the default options.
func BuildCarRentalPayload(form Form, businessID string, images []ImageRef) Payload {
	return defaultBuilder.CarRental(form, businessID, images)
}

// CarRental builds the payload for a CAR_RENTAL listing.
//
// Aliases, first truthy wins:
//
//	title           vehicleName, title
//	basePrice       pricePerDay, basePrice, price
//	carMake         brand, make, carMake
//	carModel        model, carModel
//	carYear         year, carYear
//	carSeats        seats, carSeats
//	carTransmission transmission, carTransmission
//	carFuelType     fuelType, carFuelType
//	carPlateNumber  carPlateNumber, plateNumber
//	carType         vehicleType, carType
//	carColor        color, carColor
//	mileageLimit    mileageLimit, mileage
//	withDriver      withDriver, driverIncluded
func (b *Builder) CarRental(form Form, businessID string, images []ImageRef) Payload {
	const cat = domain.CategoryCarRental
	p := b.base(cat, form, businessID, images,
		form.String("vehicleName", "title"),
		priceOrZero(form, "pricePerDay", "basePrice", "price"),
	)
	p["carRental"] = map[string]any{
		"carMake":                    form.String("brand", "make", "carMake"),
		"carModel":                   form.String("model", "carModel"),
		"carYear":                    optionalInt(form, "year", "carYear"),
		"carSeats":                   optionalInt(form, "seats", "carSeats"),
		catalog.FieldCarTransmission: translate(cat, catalog.FieldCarTransmission, form.String("transmission", "carTransmission")),
		catalog.FieldCarFuelType:     translate(cat, catalog.FieldCarFuelType, form.String("fuelType", "carFuelType")),
		"carPlateNumber":             form.String("carPlateNumber", "plateNumber"),
		catalog.FieldCarType:         translate(cat, catalog.FieldCarType, form.String("vehicleType", "carType")),
		"carColor":                   form.String("color", "carColor"),
		"mileageLimit":               optionalInt(form, "mileageLimit", "mileage"),
		"withDriver":                 optionalBool(form, "withDriver", "driverIncluded"),
		"features":                   form.Strings("features"),
	}
	return finalize(p)
}

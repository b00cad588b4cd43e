package catalog

import (
	"slices"

	"servicemart/internal/domain"
)

// Label pairs a UI display label with its backend enum token.
type Label struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// EnumField is a closed set of backend tokens for one field of one category.
// Labels is nil when the field has no UI label table; translation then falls
// back to the mechanical transform.
type EnumField struct {
	Name   string   `json:"name"`
	Multi  bool     `json:"multi"`
	Values []string `json:"values"`
	Labels []Label  `json:"labels,omitempty"`
}

// IsToken reports whether v is one of the field's legal backend tokens.
func (f EnumField) IsToken(v string) bool {
	return slices.Contains(f.Values, v)
}

func (f EnumField) clone() EnumField {
	f.Values = slices.Clone(f.Values)
	f.Labels = slices.Clone(f.Labels)
	return f
}

// Field names shared by the catalog, builders and validator.
const (
	FieldCarTransmission = "carTransmission"
	FieldCarFuelType     = "carFuelType"
	FieldCarType         = "carType"

	FieldResortType        = "resortType"
	FieldAccommodationType = "accommodationType"
	FieldAmenities         = "amenities"

	FieldCuisineType = "cuisineType"
	FieldDiningType  = "diningType"
	FieldDressCode   = "dressCode"

	FieldServiceType   = "serviceType"
	FieldPriceType     = "priceType"
	FieldAvailableDays = "availableDays"
)

// Convenience price types.
const (
	PriceTypeFixed  = "FIXED"
	PriceTypeHourly = "HOURLY"
)

func labelled(pairs ...string) []Label {
	out := make([]Label, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Label{Label: pairs[i], Token: pairs[i+1]})
	}
	return out
}

func tokens(labels []Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Token
	}
	return out
}

func mapped(name string, multi bool, labels []Label) EnumField {
	return EnumField{Name: name, Multi: multi, Values: tokens(labels), Labels: labels}
}

var enumCatalog = map[domain.Category][]EnumField{
	domain.CategoryCarRental: {
		mapped(FieldCarTransmission, false, labelled(
			"Automatic", "AUTOMATIC",
			"Manual", "MANUAL",
		)),
		mapped(FieldCarFuelType, false, labelled(
			"Petrol", "PETROL",
			"Diesel", "DIESEL",
			"Electric", "ELECTRIC",
			"Hybrid", "HYBRID",
		)),
		mapped(FieldCarType, false, labelled(
			"Sedan", "SEDAN",
			"SUV", "SUV",
			"Hatchback", "HATCHBACK",
			"Coupe", "COUPE",
			"Convertible", "CONVERTIBLE",
			"Minivan", "MINIVAN",
			"Pickup Truck", "PICKUP_TRUCK",
			"Bus", "BUS",
			"Luxury", "LUXURY",
		)),
	},
	domain.CategoryResort: {
		mapped(FieldResortType, false, labelled(
			"Beach Resort", "BEACH_RESORT",
			"Mountain Resort", "MOUNTAIN_RESORT",
			"Spa Resort", "SPA_RESORT",
			"Golf Resort", "GOLF_RESORT",
			"Eco Resort", "ECO_RESORT",
			"All-Inclusive", "ALL_INCLUSIVE",
			"Boutique", "BOUTIQUE",
		)),
		{
			Name:   FieldAccommodationType,
			Values: []string{"ROOM", "SUITE", "VILLA", "CHALET", "CABIN", "BED_AND_BREAKFAST"},
		},
		mapped(FieldAmenities, true, labelled(
			"Swimming Pool", "POOL",
			"Spa", "SPA",
			"Fitness Centre", "GYM",
			"Wi-Fi", "WIFI",
			"Restaurant", "RESTAURANT",
			"Bar", "BAR",
			"Beach Access", "BEACH_ACCESS",
			"Parking", "PARKING",
			"Airport Shuttle", "AIRPORT_SHUTTLE",
			"Kids Club", "KIDS_CLUB",
		)),
	},
	domain.CategoryFineDining: {
		mapped(FieldCuisineType, true, labelled(
			"Nigerian", "NIGERIAN",
			"African", "AFRICAN",
			"Continental", "CONTINENTAL",
			"Italian", "ITALIAN",
			"Chinese", "CHINESE",
			"Japanese", "JAPANESE",
			"Indian", "INDIAN",
			"French", "FRENCH",
			"Mediterranean", "MEDITERRANEAN",
			"Lebanese", "LEBANESE",
			"American", "AMERICAN",
			"Seafood", "SEAFOOD",
			"Fusion", "FUSION",
		)),
		mapped(FieldDiningType, false, labelled(
			"Fine Dining", "FINE_DINING",
			"Casual Dining", "CASUAL_DINING",
			"Buffet", "BUFFET",
			"Rooftop", "ROOFTOP",
			"Private Dining", "PRIVATE_DINING",
			"Lounge", "LOUNGE",
		)),
		mapped(FieldDressCode, false, labelled(
			"Casual", "CASUAL",
			"Smart Casual", "SMART_CASUAL",
			"Business Casual", "BUSINESS_CASUAL",
			"Formal", "FORMAL",
			"Black Tie", "BLACK_TIE",
		)),
	},
	domain.CategoryConvenienceService: {
		mapped(FieldServiceType, false, labelled(
			"Cleaning", "CLEANING",
			"Laundry", "LAUNDRY",
			"Plumbing", "PLUMBING",
			"Electrical", "ELECTRICAL",
			"Errand Running", "ERRANDS",
			"Grocery Delivery", "GROCERY_DELIVERY",
			"Handyman", "HANDYMAN",
			"Pest Control", "PEST_CONTROL",
			"Moving", "MOVING",
			"Car Wash", "CAR_WASH",
		)),
		mapped(FieldPriceType, false, labelled(
			"Fixed Price", PriceTypeFixed,
			"Hourly Rate", PriceTypeHourly,
		)),
		{
			Name:   FieldAvailableDays,
			Multi:  true,
			Values: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"},
		},
	},
}

// Field returns a copy of the enum field declared for category.
func Field(category domain.Category, name string) (EnumField, bool) {
	for _, f := range enumCatalog[category] {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return EnumField{}, false
}

// Fields returns copies of every enum field declared for category, in
// declaration order.
func Fields(category domain.Category) []EnumField {
	src := enumCatalog[category]
	out := make([]EnumField, len(src))
	for i, f := range src {
		out[i] = f.clone()
	}
	return out
}

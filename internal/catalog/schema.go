package catalog

import (
	"slices"
	"sort"

	"servicemart/internal/domain"
)

// Base payload field names.
const (
	FieldBusinessID  = "businessId"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldBasePrice   = "basePrice"
	FieldCurrency    = "currency"
	FieldStatus      = "status"
	FieldImages      = "images"
	FieldLocation    = "location"
)

// requiredBase lists the fields every listing needs regardless of category.
var requiredBase = []string{
	FieldTitle,
	FieldDescription,
	FieldBasePrice,
	FieldCurrency,
	FieldImages,
	FieldBusinessID,
	FieldStatus,
}

// Schema declares the shape of one category's payload.
type Schema struct {
	Category         domain.Category      `json:"category"`
	CategoryObject   string               `json:"category_object"`
	RequiredBase     []string             `json:"required_base"`
	RequiredCategory []string             `json:"required_category"`
	OptionalCategory []string             `json:"optional_category"`
	Enums            map[string]EnumField `json:"enums"`
}

// EnumFieldNames returns the schema's enum field names in sorted order.
func (s *Schema) EnumFieldNames() []string {
	names := make([]string, 0, len(s.Enums))
	for name := range s.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Schema) clone() *Schema {
	out := *s
	out.RequiredBase = slices.Clone(s.RequiredBase)
	out.RequiredCategory = slices.Clone(s.RequiredCategory)
	out.OptionalCategory = slices.Clone(s.OptionalCategory)
	out.Enums = make(map[string]EnumField, len(s.Enums))
	for k, v := range s.Enums {
		out.Enums[k] = v.clone()
	}
	return &out
}

// Registry maps categories to their schemas.
type Registry struct {
	schemas map[domain.Category]*Schema
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[domain.Category]*Schema)}
}

// Register adds a schema to the registry, replacing any schema for the same category.
func (r *Registry) Register(s *Schema) {
	r.schemas[s.Category] = s.clone()
}

// Get returns a copy of the schema for category, or nil if none is registered.
func (r *Registry) Get(category domain.Category) *Schema {
	s, ok := r.schemas[category]
	if !ok {
		return nil
	}
	return s.clone()
}

// All returns copies of all registered schemas in category display order.
func (r *Registry) All() []*Schema {
	out := make([]*Schema, 0, len(r.schemas))
	for _, c := range domain.Categories {
		if s, ok := r.schemas[c]; ok {
			out = append(out, s.clone())
		}
	}
	return out
}

// DefaultRegistry returns a registry populated with the four marketplace categories.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(newSchema(domain.CategoryCarRental, "carRental",
		[]string{"carMake", "carModel", "carYear", "carSeats", FieldCarTransmission, FieldCarFuelType, "carPlateNumber"},
		[]string{FieldCarType, "carColor", "withDriver", "mileageLimit", "features"},
	))
	r.Register(newSchema(domain.CategoryResort, "resort",
		[]string{FieldResortType, "capacity"},
		[]string{FieldAccommodationType, "numberOfRooms", "checkInTime", "checkOutTime", "minimumStay", FieldAmenities},
	))
	r.Register(newSchema(domain.CategoryFineDining, "dining",
		[]string{FieldCuisineType, FieldDiningType, "seatingCapacity"},
		[]string{FieldDressCode, "menuItems", "openingTime", "closingTime", "reservationRequired"},
	))
	r.Register(newSchema(domain.CategoryConvenienceService, "convenience",
		[]string{FieldServiceType, FieldPriceType},
		[]string{"fixedPrice", "hourlyRate", "serviceDuration", "serviceArea", FieldAvailableDays, "callOutFee"},
	))
	return r
}

// newSchema binds every catalog enum field of category into the schema.
func newSchema(category domain.Category, object string, required, optional []string) *Schema {
	enums := make(map[string]EnumField)
	for _, f := range enumCatalog[category] {
		enums[f.Name] = f
	}
	return &Schema{
		Category:         category,
		CategoryObject:   object,
		RequiredBase:     requiredBase,
		RequiredCategory: required,
		OptionalCategory: optional,
		Enums:            enums,
	}
}

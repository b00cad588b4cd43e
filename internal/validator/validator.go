package validator

import (
	"servicemart/internal/catalog"
	"servicemart/internal/domain"
	"servicemart/internal/payload"
)

// FieldError is a single failed check, keyed by payload field name.
type FieldError struct {
	Field   string
	Message string
}

// Rule is a category-specific check run against the nested category object.
type Rule interface {
	RuleKey() string
	Validate(nested map[string]any) []FieldError
}

// Errors groups failures by where the field lives in the payload.
// Category["general"] is set when the category object is missing.
type Errors struct {
	Common   map[string]string `json:"common"`
	Category map[string]string `json:"category"`
}

// ValidationResult is the outcome of validating a listing payload. Both
// error maps are always non-nil.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Errors  Errors `json:"errors"`
}

// GeneralKey is the category error key used when the category object is absent.
const GeneralKey = "general"

// Validator checks payloads against category schemas and rules. It never
// mutates its inputs and is safe for concurrent use.
type Validator struct {
	schemas *catalog.Registry
	rules   *Registry
}

// New creates a Validator from a schema registry and rule registry.
func New(schemas *catalog.Registry, rules *Registry) *Validator {
	return &Validator{schemas: schemas, rules: rules}
}

// Default returns a Validator over the built-in schemas and rules.
func Default() *Validator {
	return New(catalog.DefaultRegistry(), BuiltinRules(nil))
}

var defaultValidator = Default()

// ValidateListingPayload validates p with the default Validator.
func ValidateListingPayload(p payload.Payload) ValidationResult {
	return defaultValidator.Validate(p)
}

// Validate records every failing check instead of stopping at the first.
func (v *Validator) Validate(p payload.Payload) ValidationResult {
	errs := Errors{
		Common:   make(map[string]string),
		Category: make(map[string]string),
	}

	category := v.validateCommon(p, errs.Common)
	if category != "" {
		v.validateCategory(category, p, errs.Category)
	}

	return ValidationResult{
		IsValid: len(errs.Common) == 0 && len(errs.Category) == 0,
		Errors:  errs,
	}
}

// validateCommon checks cross-category fields and returns the payload's
// category when it is a known one.
func (v *Validator) validateCommon(p payload.Payload, errs map[string]string) domain.Category {
	if isBlank(p[catalog.FieldTitle]) {
		errs[catalog.FieldTitle] = "Title is required"
	}

	var category domain.Category
	switch raw := p[catalog.FieldCategory]; {
	case isAbsent(raw):
		errs[catalog.FieldCategory] = "Category is required"
	default:
		s, _ := raw.(string)
		category = domain.Category(s)
		if !category.Valid() || v.schemas.Get(category) == nil {
			errs[catalog.FieldCategory] = "Category is not supported"
			category = ""
		}
	}

	if isAbsent(p[catalog.FieldBusinessID]) {
		errs[catalog.FieldBusinessID] = "Business ID is required"
	}

	switch price := p[catalog.FieldBasePrice]; {
	case price == nil:
		errs[catalog.FieldBasePrice] = "Base price is required"
	default:
		n, ok := asNumber(price)
		if !ok {
			errs[catalog.FieldBasePrice] = "Base price must be a number"
		} else if n < 0 {
			errs[catalog.FieldBasePrice] = "Base price cannot be negative"
		}
	}

	loc, _ := asObject(p[catalog.FieldLocation])
	if isBlank(loc["address"]) {
		errs[catalog.FieldLocation] = "Address is required"
	}

	return category
}

func (v *Validator) validateCategory(category domain.Category, p payload.Payload, errs map[string]string) {
	schema := v.schemas.Get(category)
	nested, ok := asObject(p[schema.CategoryObject])
	if !ok {
		errs[GeneralKey] = schema.CategoryObject + " details are required"
		return
	}

	for _, field := range schema.RequiredCategory {
		if isAbsent(nested[field]) {
			setOnce(errs, field, field+" is required")
		}
	}

	for _, name := range schema.EnumFieldNames() {
		val := nested[name]
		if isAbsent(val) {
			continue
		}
		if !enumMember(schema.Enums[name], val) {
			setOnce(errs, name, name+" has an invalid value")
		}
	}

	if v.rules == nil {
		return
	}
	for _, rule := range v.rules.Rules(category) {
		for _, fe := range rule.Validate(nested) {
			setOnce(errs, fe.Field, fe.Message)
		}
	}
}

// enumMember reports whether val, or every element of val when it is a
// list, is a legal token of f.
func enumMember(f catalog.EnumField, val any) bool {
	if list, ok := asList(val); ok {
		for _, e := range list {
			s, isStr := e.(string)
			if !isStr || !f.IsToken(s) {
				return false
			}
		}
		return true
	}
	s, ok := val.(string)
	return ok && f.IsToken(s)
}

func setOnce(errs map[string]string, field, msg string) {
	if _, exists := errs[field]; !exists {
		errs[field] = msg
	}
}

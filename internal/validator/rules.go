package validator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"servicemart/internal/domain"
)

// rangeRule checks that a numeric field, when present, lies within bounds.
type rangeRule struct {
	ruleKey string
	field   string
	bounds  func() (lo, hi float64)
}

func (r *rangeRule) RuleKey() string { return r.ruleKey }

func (r *rangeRule) Validate(nested map[string]any) []FieldError {
	val := nested[r.field]
	if isAbsent(val) {
		return nil
	}
	n, ok := asNumber(val)
	if !ok {
		return []FieldError{{Field: r.field, Message: r.field + " must be a number"}}
	}
	lo, hi := r.bounds()
	if n >= lo && n <= hi {
		return nil
	}
	if math.IsInf(hi, 1) {
		return []FieldError{{Field: r.field, Message: fmt.Sprintf("%s must be at least %g", r.field, lo)}}
	}
	return []FieldError{{Field: r.field, Message: fmt.Sprintf("%s must be between %g and %g", r.field, lo, hi)}}
}

func atLeast(lo float64) func() (float64, float64) {
	return func() (float64, float64) { return lo, math.Inf(1) }
}

// menuRule checks the optional menu list as a whole: it must be non-empty
// and every item needs a name and a non-negative price. Any violation yields
// one error for the field.
type menuRule struct {
	ruleKey string
	field   string
}

func (r *menuRule) RuleKey() string { return r.ruleKey }

func (r *menuRule) Validate(nested map[string]any) []FieldError {
	val, present := nested[r.field]
	if !present || val == nil {
		return nil
	}
	fail := []FieldError{{Field: r.field, Message: "Each menu item needs a name and a non-negative price"}}

	items, ok := asList(val)
	if !ok || len(items) == 0 {
		return fail
	}
	for _, it := range items {
		item, isObj := asObject(it)
		if !isObj {
			return fail
		}
		name, _ := item["name"].(string)
		if strings.TrimSpace(name) == "" {
			return fail
		}
		price, isNum := asNumber(item["price"])
		if _, isStr := item["price"].(string); isStr || !isNum || price < 0 {
			return fail
		}
	}
	return nil
}

// BuiltinRules returns the fixed category rules. now supplies the current
// time for the car year ceiling; nil means time.Now.
func BuiltinRules(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	r := NewRegistry()
	r.Register(domain.CategoryCarRental, &rangeRule{
		ruleKey: "range.car_rental.year",
		field:   "carYear",
		bounds:  func() (float64, float64) { return 1900, float64(now().Year() + 1) },
	})
	r.Register(domain.CategoryCarRental, &rangeRule{
		ruleKey: "range.car_rental.seats",
		field:   "carSeats",
		bounds:  func() (float64, float64) { return 1, 60 },
	})
	r.Register(domain.CategoryResort, &rangeRule{
		ruleKey: "range.resort.capacity",
		field:   "capacity",
		bounds:  atLeast(1),
	})
	r.Register(domain.CategoryFineDining, &rangeRule{
		ruleKey: "range.dining.seating_capacity",
		field:   "seatingCapacity",
		bounds:  atLeast(1),
	})
	r.Register(domain.CategoryFineDining, &menuRule{
		ruleKey: "menu.dining.items",
		field:   "menuItems",
	})
	return r
}

package payload

import "strings"

// KnownCities are matched, in order, against addresses that carry no comma.
// Neighbourhoods come before the cities that contain them.
var KnownCities = []string{
	"Victoria Island",
	"Lekki",
	"Ikoyi",
	"Ikeja",
	"Yaba",
	"Surulere",
	"Lagos",
	"Abuja",
	"Port Harcourt",
	"Ibadan",
	"Kano",
	"Enugu",
	"Benin City",
	"Calabar",
	"Kaduna",
	"Jos",
	"Owerri",
	"Abeokuta",
	"Uyo",
	"Warri",
}

// ExtractCity guesses a city from a free-form address: the first
// comma-delimited segment, else the first known city the address mentions,
// else fallback.
func ExtractCity(address string, known []string, fallback string) string {
	address = strings.TrimSpace(address)
	if i := strings.Index(address, ","); i >= 0 {
		if seg := strings.TrimSpace(address[:i]); seg != "" {
			return seg
		}
	}
	lower := strings.ToLower(address)
	if lower != "" {
		for _, c := range known {
			if strings.Contains(lower, strings.ToLower(c)) {
				return c
			}
		}
	}
	return fallback
}

func (b *Builder) location(form Form) map[string]any {
	loc := form.Object("location")
	address := firstNonEmpty(loc.String("address"), form.String("address"))
	return map[string]any{
		"address": address,
		"city":    firstNonEmpty(loc.String("city"), form.String("city"), ExtractCity(address, b.opts.KnownCities, b.opts.City)),
		"state":   firstNonEmpty(loc.String("state"), form.String("state")),
		"country": firstNonEmpty(loc.String("country"), form.String("country"), b.opts.Country),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

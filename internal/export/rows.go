package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// columns defines the header row shared by every export format.
var columns = []string{
	"Listing ID",
	"Title",
	"Category",
	"Status",
	"Base Price",
	"Currency",
	"Address",
	"City",
	"State",
	"Country",
	"Details",
	"Image Count",
	"Created At",
	"Updated At",
}

// Columns returns a copy of the export header row.
func Columns() []string {
	return append([]string(nil), columns...)
}

// listingToRow flattens a listing. Location, details and image count come
// from the stored payload; a payload that does not decode leaves them empty.
func listingToRow(l *domain.Listing) []string {
	row := make([]string, len(columns))
	row[0] = l.ID.String()
	row[1] = l.Title
	row[2] = string(l.Category)
	row[3] = string(l.Status)
	row[4] = strconv.FormatInt(l.BasePrice, 10)
	row[5] = l.Currency
	row[12] = l.CreatedAt.UTC().Format(time.RFC3339)
	row[13] = l.UpdatedAt.UTC().Format(time.RFC3339)

	var doc map[string]any
	if len(l.Payload) == 0 || json.Unmarshal(l.Payload, &doc) != nil {
		return row
	}

	loc, _ := doc[catalog.FieldLocation].(map[string]any)
	row[6] = str(loc["address"])
	row[7] = str(loc["city"])
	row[8] = str(loc["state"])
	row[9] = str(loc["country"])

	if schema := catalog.DefaultRegistry().Get(l.Category); schema != nil {
		nested, _ := doc[schema.CategoryObject].(map[string]any)
		row[10] = details(l.Category, schema, nested)
	}

	images, _ := doc[catalog.FieldImages].([]any)
	row[11] = strconv.Itoa(len(images))
	return row
}

// details renders the enum fields of the category object as
// "field: Label; field: Label, Label" using display labels.
func details(category domain.Category, schema *catalog.Schema, nested map[string]any) string {
	if len(nested) == 0 {
		return ""
	}
	var parts []string
	for _, name := range schema.EnumFieldNames() {
		var labels []string
		switch v := nested[name].(type) {
		case string:
			labels = append(labels, catalog.EnumToLabel(category, name, v))
		case []any:
			for _, e := range v {
				if s, ok := e.(string); ok {
					labels = append(labels, catalog.EnumToLabel(category, name, s))
				}
			}
		}
		if len(labels) > 0 {
			parts = append(parts, name+": "+strings.Join(labels, ", "))
		}
	}
	return strings.Join(parts, "; ")
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename makes name safe for a Content-Disposition header and
// truncates it to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_prefix}_{YYYY-MM-DD}.{format}.
func BuildFilename(prefix string, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(prefix), now.Format("2006-01-02"), format)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

func TestLabelToEnum_CanonicalTokensAreIdempotent(t *testing.T) {
	for _, cat := range domain.Categories {
		for _, f := range catalog.Fields(cat) {
			for _, token := range f.Values {
				got, ok := catalog.LabelToEnum(cat, f.Name, token)
				require.True(t, ok)
				assert.Equal(t, token, got, "%s.%s", cat, f.Name)
			}
		}
	}
}

func TestLabelToEnum_MappedLabelsRoundTrip(t *testing.T) {
	for _, cat := range domain.Categories {
		for _, f := range catalog.Fields(cat) {
			for _, l := range f.Labels {
				got, ok := catalog.LabelToEnum(cat, f.Name, l.Label)
				require.True(t, ok)
				assert.Equal(t, l.Token, got, "%s.%s label %q", cat, f.Name, l.Label)
				assert.Equal(t, l.Label, catalog.EnumToLabel(cat, f.Name, l.Token))
			}
		}
	}
}

func TestLabelToEnum(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		field    string
		label    string
		want     string
		wantOK   bool
	}{
		{"exact label", domain.CategoryCarRental, catalog.FieldCarTransmission, "Automatic", "AUTOMATIC", true},
		{"case-insensitive label", domain.CategoryCarRental, catalog.FieldCarType, "suv", "SUV", true},
		{"surrounding whitespace", domain.CategoryFineDining, catalog.FieldDressCode, "  Smart Casual ", "SMART_CASUAL", true},
		{"padded transmission label", domain.CategoryCarRental, catalog.FieldCarTransmission, " Automatic ", "AUTOMATIC", true},
		{"padded unknown label", domain.CategoryResort, catalog.FieldAccommodationType, "\tBed and Breakfast\n", "BED_AND_BREAKFAST", true},
		{"unknown label keeps hyphen", domain.CategoryCarRental, catalog.FieldCarTransmission, "Semi-Auto", "SEMI-AUTO", true},
		{"no label table", domain.CategoryResort, catalog.FieldAccommodationType, "Bed and Breakfast", "BED_AND_BREAKFAST", true},
		{"slashes and whitespace runs", domain.CategoryResort, "unknownField", "Indoor/Outdoor   pool", "INDOOR_OUTDOOR_POOL", true},
		{"empty", domain.CategoryCarRental, catalog.FieldCarFuelType, "", "", false},
		{"blank", domain.CategoryCarRental, catalog.FieldCarFuelType, "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := catalog.LabelToEnum(tt.category, tt.field, tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumToLabel(t *testing.T) {
	assert.Equal(t, "Hourly Rate", catalog.EnumToLabel(domain.CategoryConvenienceService, catalog.FieldPriceType, "HOURLY"))
	assert.Equal(t, "Bed And Breakfast", catalog.EnumToLabel(domain.CategoryResort, catalog.FieldAccommodationType, "BED_AND_BREAKFAST"))
	assert.Equal(t, "Saturday", catalog.EnumToLabel(domain.CategoryConvenienceService, catalog.FieldAvailableDays, "SATURDAY"))
	assert.Equal(t, "Semi-auto", catalog.EnumToLabel(domain.CategoryCarRental, catalog.FieldCarTransmission, "SEMI-AUTO"))
	assert.Equal(t, "", catalog.EnumToLabel(domain.CategoryCarRental, catalog.FieldCarTransmission, ""))
}

func TestOptions(t *testing.T) {
	opts := catalog.Options(domain.CategoryCarRental, catalog.FieldCarFuelType)
	require.Len(t, opts, 4)
	assert.Equal(t, catalog.Option{Value: "PETROL", Label: "Petrol"}, opts[0])

	assert.Nil(t, catalog.Options(domain.CategoryCarRental, "nope"))
}

func TestFields_ReturnsCopies(t *testing.T) {
	fields := catalog.Fields(domain.CategoryCarRental)
	require.NotEmpty(t, fields)
	fields[0].Values[0] = "MUTATED"

	f, ok := catalog.Field(domain.CategoryCarRental, fields[0].Name)
	require.True(t, ok)
	assert.NotEqual(t, "MUTATED", f.Values[0])
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"servicemart/internal/domain"
)

func sampleListing(t *testing.T) domain.Listing {
	t.Helper()
	doc := map[string]any{
		"title":    "Nok",
		"location": map[string]any{"address": "2 Akin Olugbade St", "city": "Victoria Island", "country": "Nigeria"},
		"images":   []any{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		"dining": map[string]any{
			"cuisineType": []any{"NIGERIAN", "FUSION"},
			"diningType":  "FINE_DINING",
			"dressCode":   "SMART_CASUAL",
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.Listing{
		ID:         uuid.MustParse("7f1b6c1e-9a0a-4b8e-9a57-2f7d8f1c0a11"),
		BusinessID: "B2",
		Category:   domain.CategoryFineDining,
		Title:      "Nok",
		Status:     domain.ListingStatusActive,
		BasePrice:  3000,
		Currency:   "NGN",
		Payload:    raw,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestListingToRow(t *testing.T) {
	l := sampleListing(t)
	row := listingToRow(&l)

	require.Len(t, row, len(columns))
	assert.Equal(t, "Nok", row[1])
	assert.Equal(t, "FINE_DINING", row[2])
	assert.Equal(t, "3000", row[4])
	assert.Equal(t, "Victoria Island", row[7])
	assert.Equal(t, "", row[8])
	assert.Equal(t, "cuisineType: Nigerian, Fusion; diningType: Fine Dining; dressCode: Smart Casual", row[10])
	assert.Equal(t, "2", row[11])
	assert.Equal(t, "2026-03-01T10:00:00Z", row[12])
}

func TestListingToRow_BadPayload(t *testing.T) {
	l := sampleListing(t)
	l.Payload = []byte("not json")
	row := listingToRow(&l)
	assert.Equal(t, "Nok", row[1])
	assert.Empty(t, row[6])
	assert.Empty(t, row[11])
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, domain.ExportFormatCSV, []domain.Listing{sampleListing(t)}))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Columns(), rows[0])
	assert.Equal(t, "Nok", rows[1][1])
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, domain.ExportFormatXLSX, []domain.Listing{sampleListing(t)}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Listing ID", rows[0][0])
	assert.Equal(t, "3000", rows[1][4])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "pdf", nil)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedExport))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatCSV, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "listings_B_1_2026-10-18.xlsx", BuildFilename("listings B/1", domain.ExportFormatXLSX, now))
	assert.Equal(t, "a_b", SanitizeFilename("__a!!b__"))
}

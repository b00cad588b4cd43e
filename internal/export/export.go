// Package export renders listings as CSV or XLSX downloads.
package export

import (
	"fmt"
	"io"

	"servicemart/internal/domain"
)

// ContentType returns the MIME type for format.
func ContentType(format domain.ExportFormat) string {
	if format == domain.ExportFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// ParseFormat maps a query value to a format; empty means CSV.
func ParseFormat(s string) (domain.ExportFormat, error) {
	switch domain.ExportFormat(s) {
	case "", domain.ExportFormatCSV:
		return domain.ExportFormatCSV, nil
	case domain.ExportFormatXLSX:
		return domain.ExportFormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, s)
}

// Write renders listings to w in the given format. CSV output starts with
// a UTF-8 BOM.
func Write(w io.Writer, format domain.ExportFormat, listings []domain.Listing) error {
	switch format {
	case domain.ExportFormatXLSX:
		return WriteXLSX(w, listings)
	case domain.ExportFormatCSV:
		if _, err := w.Write(BOM); err != nil {
			return fmt.Errorf("export.Write bom: %w", err)
		}
		cw := NewCSVWriter(w)
		if err := cw.WriteHeader(); err != nil {
			return fmt.Errorf("export.Write header: %w", err)
		}
		if err := cw.WriteListings(listings); err != nil {
			return fmt.Errorf("export.Write rows: %w", err)
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, format)
	}
}

package domain

import "strings"

// Category identifies which listing schema and payload builder apply.
type Category string

const (
	CategoryCarRental          Category = "CAR_RENTAL"
	CategoryResort             Category = "RESORT"
	CategoryFineDining         Category = "FINE_DINING"
	CategoryConvenienceService Category = "CONVENIENCE_SERVICE"
)

// Categories lists every supported category in display order.
var Categories = []Category{
	CategoryCarRental,
	CategoryResort,
	CategoryFineDining,
	CategoryConvenienceService,
}

// Valid reports whether c is one of the four supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCarRental, CategoryResort, CategoryFineDining, CategoryConvenienceService:
		return true
	}
	return false
}

// ListingStatus represents the lifecycle of a listing.
type ListingStatus string

const (
	ListingStatusDraft         ListingStatus = "DRAFT"
	ListingStatusPendingReview ListingStatus = "PENDING_REVIEW"
	ListingStatusActive        ListingStatus = "ACTIVE"
	ListingStatusInactive      ListingStatus = "INACTIVE"
	ListingStatusSuspended     ListingStatus = "SUSPENDED"
)

var listingStatuses = map[ListingStatus]bool{
	ListingStatusDraft:         true,
	ListingStatusPendingReview: true,
	ListingStatusActive:        true,
	ListingStatusInactive:      true,
	ListingStatusSuspended:     true,
}

// statusSynonyms maps loose lowercase inputs to canonical statuses.
var statusSynonyms = map[string]ListingStatus{
	"available":   ListingStatusActive,
	"unavailable": ListingStatusInactive,
}

// NormalizeStatus maps a loosely-typed status to one of the five canonical
// values. Unrecognized and empty input yields DRAFT.
func NormalizeStatus(status string) ListingStatus {
	if st, ok := ParseStatus(status); ok {
		return st
	}
	return ListingStatusDraft
}

// ParseStatus is the strict form of NormalizeStatus: it reports false for
// empty or unrecognized input instead of falling back to DRAFT.
func ParseStatus(status string) (ListingStatus, bool) {
	s := strings.TrimSpace(status)
	if s == "" {
		return "", false
	}
	if mapped, ok := statusSynonyms[strings.ToLower(s)]; ok {
		return mapped, true
	}
	candidate := ListingStatus(strings.ReplaceAll(strings.ToUpper(s), " ", "_"))
	if listingStatuses[candidate] {
		return candidate, true
	}
	return "", false
}

// ImageContentTypes are the MIME types accepted for listing images.
var ImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// MaxImageSizeBytes is the largest listing image accepted for upload.
const MaxImageSizeBytes int64 = 5 * 1024 * 1024

// ExportFormat selects the file format for listing exports.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrListingNotFound     = errors.New("listing not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrForbidden           = errors.New("forbidden")
	ErrUnsupportedCategory = errors.New("unsupported category")
	ErrInvalidListing      = errors.New("listing payload failed validation")
	ErrInvalidImages       = errors.New("listing images failed validation")
	ErrInvalidStatus       = errors.New("invalid listing status")
	ErrCategoryChange      = errors.New("listing category cannot change")
	ErrTooManyImages       = errors.New("too many images")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrUnsupportedExport   = errors.New("unsupported export format")
)

package validator

import (
	"fmt"
	"strings"

	"servicemart/internal/domain"
	"servicemart/internal/payload"
)

// ImageValidation is the outcome of checking pending uploads.
type ImageValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateImages checks size and MIME type of every pending image against
// the default 5MB limit. Already-uploaded images are skipped.
func ValidateImages(images []payload.ImageRef) ImageValidation {
	return ValidateImagesWithLimit(images, domain.MaxImageSizeBytes)
}

// ValidateImagesWithLimit is ValidateImages with a custom size limit in bytes.
func ValidateImagesWithLimit(images []payload.ImageRef, maxBytes int64) ImageValidation {
	errs := []string{}
	for i, img := range images {
		var pending payload.PendingImage
		switch t := img.(type) {
		case payload.PendingImage:
			pending = t
		case *payload.PendingImage:
			if t == nil {
				continue
			}
			pending = *t
		default:
			continue
		}

		name := pending.Name
		if name == "" {
			name = fmt.Sprintf("image %d", i+1)
		}
		if pending.Size > maxBytes {
			errs = append(errs, fmt.Sprintf("%s exceeds the %dMB size limit", name, maxBytes/(1024*1024)))
		}
		if !domain.ImageContentTypes[strings.ToLower(strings.TrimSpace(pending.ContentType))] {
			errs = append(errs, fmt.Sprintf("%s has unsupported type %q; allowed: jpeg, jpg, png, webp", name, pending.ContentType))
		}
	}
	return ImageValidation{IsValid: len(errs) == 0, Errors: errs}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"servicemart/internal/catalog"
	"servicemart/internal/config"
	"servicemart/internal/domain"
	"servicemart/internal/export"
	"servicemart/internal/payload"
	"servicemart/internal/port"
	"servicemart/internal/validator"
)

// ListingInput is the DTO for building a listing from raw form state.
type ListingInput struct {
	BusinessID string
	Category   domain.Category
	Form       payload.Form
	Images     []payload.ImageRef
}

// PreviewResult is what a dry run produces: the canonical payload and both
// validation outcomes. Nothing is uploaded or stored.
type PreviewResult struct {
	Payload    payload.Payload            `json:"payload"`
	Validation validator.ValidationResult `json:"validation"`
	Images     validator.ImageValidation  `json:"images"`
}

// ValidationError reports a payload or image validation failure. It
// unwraps to domain.ErrInvalidListing or domain.ErrInvalidImages.
type ValidationError struct {
	Result      validator.ValidationResult
	ImageErrors []string
}

func (e *ValidationError) Error() string {
	if len(e.ImageErrors) > 0 {
		return "listing images failed validation: " + strings.Join(e.ImageErrors, "; ")
	}
	return fmt.Sprintf("listing payload failed validation: %d common, %d category errors",
		len(e.Result.Errors.Common), len(e.Result.Errors.Category))
}

func (e *ValidationError) Unwrap() error {
	if len(e.ImageErrors) > 0 {
		return domain.ErrInvalidImages
	}
	return domain.ErrInvalidListing
}

// ListingService defines the listing management contract.
type ListingService interface {
	Preview(ctx context.Context, input ListingInput) (*PreviewResult, error)
	Create(ctx context.Context, input ListingInput) (*domain.Listing, error)
	Update(ctx context.Context, id uuid.UUID, input ListingInput) (*domain.Listing, error)
	GetByID(ctx context.Context, businessID string, id uuid.UUID) (*domain.Listing, error)
	List(ctx context.Context, businessID string, filter port.ListingFilter, offset, limit int) ([]domain.Listing, int, error)
	UpdateStatus(ctx context.Context, businessID string, id uuid.UUID, status string) (*domain.Listing, error)
	Delete(ctx context.Context, businessID string, id uuid.UUID) error
	Export(ctx context.Context, businessID string, filter port.ListingFilter, format domain.ExportFormat, w io.Writer) error
}

type listingService struct {
	repo      port.ListingRepository
	storage   port.ObjectStorage
	builder   *payload.Builder
	validator *validator.Validator
	cfg       *config.ListingConfig
}

// NewListingService creates a new ListingService implementation.
func NewListingService(
	repo port.ListingRepository,
	storage port.ObjectStorage,
	v *validator.Validator,
	cfg *config.ListingConfig,
) ListingService {
	return &listingService{
		repo:    repo,
		storage: storage,
		builder: payload.NewBuilder(payload.Options{
			Currency:    cfg.DefaultCurrency,
			Country:     cfg.DefaultCountry,
			City:        cfg.DefaultCity,
			KnownCities: cfg.KnownCities,
		}),
		validator: v,
		cfg:       cfg,
	}
}

func (s *listingService) Preview(ctx context.Context, input ListingInput) (*PreviewResult, error) {
	p, err := s.builder.Build(input.Category, input.Form, input.BusinessID, input.Images)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Payload:    p,
		Validation: s.validator.Validate(p),
		Images:     s.checkImages(input.Images),
	}, nil
}

func (s *listingService) Create(ctx context.Context, input ListingInput) (*domain.Listing, error) {
	listingID := uuid.New()
	p, uploaded, err := s.prepare(ctx, listingID, input)
	if err != nil {
		return nil, err
	}

	listing, err := toListing(listingID, input.BusinessID, p)
	if err != nil {
		s.cleanup(ctx, uploaded)
		return nil, err
	}

	log.Printf("listingService.Create: creating %s listing %s for business %s with %d new images",
		listing.Category, listing.ID, listing.BusinessID, len(uploaded))

	if err := s.repo.Create(ctx, listing); err != nil {
		log.Printf("listingService.Create: failed to persist listing %s: %v", listing.ID, err)
		s.cleanup(ctx, uploaded)
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	return listing, nil
}

func (s *listingService) Update(ctx context.Context, id uuid.UUID, input ListingInput) (*domain.Listing, error) {
	existing, err := s.repo.GetByID(ctx, input.BusinessID, id)
	if err != nil {
		return nil, err
	}
	if input.Category == "" {
		input.Category = existing.Category
	}
	if input.Category != existing.Category {
		return nil, domain.ErrCategoryChange
	}

	p, uploaded, err := s.prepare(ctx, id, input)
	if err != nil {
		return nil, err
	}

	listing, err := toListing(id, input.BusinessID, p)
	if err != nil {
		s.cleanup(ctx, uploaded)
		return nil, err
	}
	listing.CreatedAt = existing.CreatedAt

	log.Printf("listingService.Update: updating listing %s for business %s", id, input.BusinessID)

	if err := s.repo.Update(ctx, listing); err != nil {
		log.Printf("listingService.Update: failed to persist listing %s: %v", id, err)
		s.cleanup(ctx, uploaded)
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating listing: %w", err)
	}
	return listing, nil
}

func (s *listingService) GetByID(ctx context.Context, businessID string, id uuid.UUID) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, businessID, id)
}

func (s *listingService) List(ctx context.Context, businessID string, filter port.ListingFilter, offset, limit int) ([]domain.Listing, int, error) {
	return s.repo.ListByBusiness(ctx, businessID, filter, offset, limit)
}

func (s *listingService) UpdateStatus(ctx context.Context, businessID string, id uuid.UUID, status string) (*domain.Listing, error) {
	st, ok := domain.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	log.Printf("listingService.UpdateStatus: setting listing %s to %s for business %s", id, st, businessID)

	if err := s.repo.UpdateStatus(ctx, businessID, id, st); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, businessID, id)
}

// Delete removes the listing row only; its images stay in the bucket.
func (s *listingService) Delete(ctx context.Context, businessID string, id uuid.UUID) error {
	log.Printf("listingService.Delete: deleting listing %s for business %s", id, businessID)
	return s.repo.Delete(ctx, businessID, id)
}

func (s *listingService) Export(ctx context.Context, businessID string, filter port.ListingFilter, format domain.ExportFormat, w io.Writer) error {
	listings, err := s.repo.ListAllByBusiness(ctx, businessID, filter)
	if err != nil {
		return fmt.Errorf("listing export: %w", err)
	}
	log.Printf("listingService.Export: exporting %d listings as %s for business %s", len(listings), format, businessID)
	return export.Write(w, format, listings)
}

// prepare builds and validates the payload, then uploads any pending images
// and rebuilds with their URLs. Nothing is uploaded unless the payload and
// images are valid. The returned keys are the objects uploaded by this call.
func (s *listingService) prepare(ctx context.Context, listingID uuid.UUID, input ListingInput) (payload.Payload, []string, error) {
	if imgs := s.checkImages(input.Images); !imgs.IsValid {
		return nil, nil, &ValidationError{ImageErrors: imgs.Errors}
	}

	p, err := s.builder.Build(input.Category, input.Form, input.BusinessID, input.Images)
	if err != nil {
		return nil, nil, err
	}
	if res := s.validator.Validate(p); !res.IsValid {
		return nil, nil, &ValidationError{Result: res}
	}

	if !payload.HasPending(input.Images) {
		return p, nil, nil
	}

	resolved, keys, err := s.upload(ctx, listingID, input.BusinessID, input.Images)
	if err != nil {
		return nil, nil, err
	}
	p, err = s.builder.Build(input.Category, input.Form, input.BusinessID, resolved)
	if err != nil {
		s.cleanup(ctx, keys)
		return nil, nil, err
	}
	return p, keys, nil
}

// upload stores every pending image and returns the image list with each
// pending entry replaced by its uploaded URL, preserving order.
func (s *listingService) upload(ctx context.Context, listingID uuid.UUID, businessID string, images []payload.ImageRef) ([]payload.ImageRef, []string, error) {
	resolved := make([]payload.ImageRef, 0, len(images))
	var keys []string
	for _, img := range images {
		pending, ok := asPending(img)
		if !ok {
			resolved = append(resolved, img)
			continue
		}

		key := imageKey(businessID, listingID, pending.ContentType)
		out, err := s.storage.Upload(ctx, port.UploadInput{
			Key:         key,
			Body:        pending.Body,
			ContentType: pending.ContentType,
			Size:        pending.Size,
		})
		if err != nil {
			log.Printf("listingService.upload: upload of %s failed: %v", pending.Name, err)
			s.cleanup(ctx, keys)
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrUploadFailed, pending.Name)
		}
		keys = append(keys, key)
		resolved = append(resolved, payload.UploadedImage{URL: out.URL})
	}
	return resolved, keys, nil
}

// cleanup deletes objects uploaded for a listing that was never stored.
// Failures are logged and otherwise ignored.
func (s *listingService) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("listingService.cleanup: failed to delete %s: %v", key, err)
		}
	}
}

func (s *listingService) checkImages(images []payload.ImageRef) validator.ImageValidation {
	res := validator.ValidateImagesWithLimit(images, s.cfg.MaxImageSizeBytes())
	if s.cfg.MaxImages > 0 && len(images) > s.cfg.MaxImages {
		res.IsValid = false
		res.Errors = append(res.Errors, fmt.Sprintf("at most %d images are allowed, got %d", s.cfg.MaxImages, len(images)))
	}
	return res
}

func asPending(img payload.ImageRef) (payload.PendingImage, bool) {
	switch t := img.(type) {
	case payload.PendingImage:
		return t, true
	case *payload.PendingImage:
		if t != nil {
			return *t, true
		}
	}
	return payload.PendingImage{}, false
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func imageKey(businessID string, listingID uuid.UUID, contentType string) string {
	ext := imageExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	return fmt.Sprintf("listings/%s/%s/%s%s", export.SanitizeFilename(businessID), listingID, uuid.New(), ext)
}

// toListing copies the scalar columns out of a validated payload.
func toListing(id uuid.UUID, businessID string, p payload.Payload) (*domain.Listing, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding listing payload: %w", err)
	}
	title, _ := p[catalog.FieldTitle].(string)
	category, _ := p[catalog.FieldCategory].(string)
	currency, _ := p[catalog.FieldCurrency].(string)
	status, _ := p[catalog.FieldStatus].(string)

	return &domain.Listing{
		ID:         id,
		BusinessID: businessID,
		Category:   domain.Category(category),
		Title:      strings.TrimSpace(title),
		Status:     domain.NormalizeStatus(status),
		BasePrice:  basePrice(p[catalog.FieldBasePrice]),
		Currency:   currency,
		Payload:    raw,
	}, nil
}

func basePrice(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	}
	return 0
}

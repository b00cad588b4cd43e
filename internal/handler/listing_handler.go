package handler

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"servicemart/internal/domain"
	"servicemart/internal/export"
	"servicemart/internal/payload"
	"servicemart/internal/port"
	"servicemart/internal/service"
)

// ListingHandler serves the listing endpoints of the business dashboard.
type ListingHandler struct {
	listingService service.ListingService
	now            func() time.Time
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService, now: time.Now}
}

// Preview handles POST /api/v1/listings/preview
// @Summary Preview a listing payload
// @Description Build the canonical payload from raw form state and validate it. Nothing is uploaded or stored.
// @Tags listings
// @Accept json
// @Produce json
// @Param body body ListingRequest true "Raw form state"
// @Success 200 {object} Response{data=service.PreviewResult} "Built payload with validation results"
// @Failure 400 {object} ErrorResponseBody "Invalid request or unsupported category"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /listings/preview [post]
func (h *ListingHandler) Preview(c *gin.Context) {
	input, closeFiles, ok := h.bindListingInput(c)
	if !ok {
		return
	}
	defer closeFiles()

	result, err := h.listingService.Preview(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Create handles POST /api/v1/listings
// @Summary Create a listing
// @Description Build, validate and store a listing. Accepts JSON or multipart/form-data with fields category, form (JSON object), image_urls and files under images.
// @Tags listings
// @Accept json,mpfd
// @Produce json
// @Param body body ListingRequest false "Raw form state (JSON requests)"
// @Param category formData string false "Listing category (multipart requests)"
// @Param form formData string false "Raw form state as a JSON object (multipart requests)"
// @Param images formData file false "Image files (jpeg, png, webp; up to 5MB each)"
// @Success 201 {object} Response{data=domain.Listing} "Listing created"
// @Failure 400 {object} ErrorResponseBody "Invalid request or unsupported category"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Payload or images failed validation"
// @Failure 502 {object} ErrorResponseBody "Image upload failed"
// @Security BearerAuth
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	input, closeFiles, ok := h.bindListingInput(c)
	if !ok {
		return
	}
	defer closeFiles()

	listing, err := h.listingService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, listing)
}

// List handles GET /api/v1/listings
// @Summary List listings
// @Description List the business's listings with optional category and status filters
// @Tags listings
// @Produce json
// @Param category query string false "Filter by category" Enums(CAR_RENTAL, RESORT, FINE_DINING, CONVENIENCE_SERVICE)
// @Param status query string false "Filter by status"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Listing,meta=PagMeta} "List of listings"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	filter, err := parseListingFilter(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	offset, limit := parsePagination(c)

	listings, total, err := h.listingService.List(c.Request.Context(), businessID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, listings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/listings/:id
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Success 200 {object} Response{data=domain.Listing} "Listing"
// @Failure 400 {object} ErrorResponseBody "Invalid listing ID"
// @Failure 404 {object} ErrorResponseBody "Listing not found"
// @Security BearerAuth
// @Router /listings/{id} [get]
func (h *ListingHandler) GetByID(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	listing, err := h.listingService.GetByID(c.Request.Context(), businessID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, listing)
}

// Update handles PUT /api/v1/listings/:id
// @Summary Replace a listing
// @Description Rebuild and revalidate a listing from raw form state. The category cannot change.
// @Tags listings
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Param body body ListingRequest true "Raw form state"
// @Success 200 {object} Response{data=domain.Listing} "Listing updated"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Listing not found"
// @Failure 409 {object} ErrorResponseBody "Category change attempted"
// @Failure 422 {object} ErrorResponseBody "Payload or images failed validation"
// @Security BearerAuth
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}
	input, closeFiles, ok := h.bindListingInput(c)
	if !ok {
		return
	}
	defer closeFiles()

	listing, err := h.listingService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, listing)
}

// UpdateStatus handles PATCH /api/v1/listings/:id/status
// @Summary Change a listing's status
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} Response{data=domain.Listing} "Listing with its new status"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Failure 404 {object} ErrorResponseBody "Listing not found"
// @Security BearerAuth
// @Router /listings/{id}/status [patch]
func (h *ListingHandler) UpdateStatus(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	listing, err := h.listingService.UpdateStatus(c.Request.Context(), businessID, id, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, listing)
}

// Delete handles DELETE /api/v1/listings/:id
// @Summary Delete a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Listing deleted"
// @Failure 404 {object} ErrorResponseBody "Listing not found"
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), businessID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "listing deleted"})
}

// Export handles GET /api/v1/listings/export
// @Summary Export listings
// @Description Download the business's listings as CSV (UTF-8 with BOM) or XLSX
// @Tags listings
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Success 200 {file} file "Listings export"
// @Failure 400 {object} ErrorResponseBody "Unsupported format or filter"
// @Security BearerAuth
// @Router /listings/export [get]
func (h *ListingHandler) Export(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	format, err := export.ParseFormat(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	if err != nil {
		HandleError(c, err)
		return
	}
	filter, err := parseListingFilter(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.listingService.Export(c.Request.Context(), businessID, filter, format, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("listings_"+businessID, format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}

// bindListingInput reads a listing request from either a JSON body or a
// multipart form. The returned func closes any opened upload files. Returns
// false if the request is malformed (error response already written).
func (h *ListingHandler) bindListingInput(c *gin.Context) (service.ListingInput, func(), bool) {
	noop := func() {}
	businessID, ok := extractBusinessID(c)
	if !ok {
		return service.ListingInput{}, noop, false
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return bindMultipartListing(c, businessID)
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return service.ListingInput{}, noop, false
	}
	form := payload.Form(req.Form)
	if form == nil {
		form = payload.Form{}
	}
	return service.ListingInput{
		BusinessID: businessID,
		Category:   domain.Category(strings.TrimSpace(req.Category)),
		Form:       form,
		Images:     payload.URLImages(nonEmpty(req.ImageURLs)...),
	}, noop, true
}

func bindMultipartListing(c *gin.Context, businessID string) (service.ListingInput, func(), bool) {
	noop := func() {}
	mf, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid multipart form")
		return service.ListingInput{}, noop, false
	}

	form := payload.Form{}
	if raw := strings.TrimSpace(c.PostForm("form")); raw != "" {
		form, err = payload.ParseForm([]byte(raw))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FORM", "form must be a JSON object")
			return service.ListingInput{}, noop, false
		}
	}

	images := payload.URLImages(nonEmpty(c.PostFormArray("image_urls"))...)
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, fh := range mf.File["images"] {
		img, file, err := pendingImage(fh)
		if err != nil {
			closeAll()
			RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read "+fh.Filename)
			return service.ListingInput{}, noop, false
		}
		opened = append(opened, file)
		images = append(images, img)
	}

	return service.ListingInput{
		BusinessID: businessID,
		Category:   domain.Category(strings.TrimSpace(c.PostForm("category"))),
		Form:       form,
		Images:     images,
	}, closeAll, true
}

// pendingImage opens an uploaded file and sniffs its content type from the
// first 512 bytes. The sniffed bytes are replayed ahead of the rest of the
// file.
func pendingImage(fh *multipart.FileHeader) (payload.PendingImage, multipart.File, error) {
	file, err := fh.Open()
	if err != nil {
		return payload.PendingImage{}, nil, err
	}
	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		_ = file.Close()
		return payload.PendingImage{}, nil, err
	}
	return payload.PendingImage{
		Name:        fh.Filename,
		ContentType: http.DetectContentType(buf[:n]),
		Size:        fh.Size,
		Body:        io.MultiReader(bytes.NewReader(buf[:n]), file),
	}, file, nil
}

func parseListingFilter(c *gin.Context) (port.ListingFilter, error) {
	var filter port.ListingFilter
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		cat := domain.Category(strings.ToUpper(raw))
		if !cat.Valid() {
			return filter, fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, raw)
		}
		filter.Category = cat
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, ok := domain.ParseStatus(raw)
		if !ok {
			return filter, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, raw)
		}
		filter.Status = st
	}
	return filter, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicemart/internal/domain"
	"servicemart/internal/handler"
	"servicemart/internal/middleware"
	"servicemart/internal/payload"
	"servicemart/internal/port"
	"servicemart/internal/service"
	"servicemart/internal/validator"
	"servicemart/mocks"
)

const testBusinessID = "biz-1"

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, businessID string) {
	c.Set(middleware.ContextKeyBusinessID, businessID)
}

func newListingContext(method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, testBusinessID)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListingHandler_Create_JSON(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	listing := &domain.Listing{ID: uuid.New(), BusinessID: testBusinessID, Category: domain.CategoryCarRental, Title: "Toyota Camry"}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.ListingInput) bool {
		return in.BusinessID == testBusinessID &&
			in.Category == domain.CategoryCarRental &&
			in.Form["title"] == "Toyota Camry" &&
			len(in.Images) == 1
	})).Return(listing, nil)

	body := `{"category":"CAR_RENTAL","form":{"title":"Toyota Camry"},"image_urls":["https://cdn.example.com/a.jpg"," "]}`
	c, w := newListingContext(http.MethodPost, "/api/v1/listings", strings.NewReader(body))

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestListingHandler_Create_ValidationFailed(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	verr := &service.ValidationError{Result: validator.ValidationResult{
		Errors: validator.Errors{
			Common:   map[string]string{"title": "title is required"},
			Category: map[string]string{},
		},
	}}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, verr)

	c, w := newListingContext(http.MethodPost, "/api/v1/listings", strings.NewReader(`{"category":"CAR_RENTAL","form":{}}`))

	h.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	common, ok := details["common"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "title is required", common["title"])
}

func TestListingHandler_Create_InvalidImages(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, &service.ValidationError{ImageErrors: []string{"a.gif: unsupported file type"}})

	c, w := newListingContext(http.MethodPost, "/api/v1/listings", strings.NewReader(`{"category":"RESORT"}`))

	h.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "INVALID_IMAGES", resp.Error.Code)
}

func TestListingHandler_Create_Multipart(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	pngBytes := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("category", "FINE_DINING"))
	require.NoError(t, mw.WriteField("form", `{"restaurantName":"Kitchen 21","cuisineType":"Nigerian"}`))
	require.NoError(t, mw.WriteField("image_urls", "https://cdn.example.com/old.jpg"))
	fw, err := mw.CreateFormFile("images", "dish.png")
	require.NoError(t, err)
	_, err = fw.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	listing := &domain.Listing{ID: uuid.New(), Category: domain.CategoryFineDining}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.ListingInput) bool {
		if in.Category != domain.CategoryFineDining || in.Form["restaurantName"] != "Kitchen 21" || len(in.Images) != 2 {
			return false
		}
		if _, ok := in.Images[0].(payload.UploadedImage); !ok {
			return false
		}
		pending, ok := in.Images[1].(payload.PendingImage)
		if !ok || pending.ContentType != "image/png" || pending.Name != "dish.png" || pending.Size != int64(len(pngBytes)) {
			return false
		}
		data, err := io.ReadAll(pending.Body)
		return err == nil && bytes.Equal(data, pngBytes)
	})).Return(listing, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/listings", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	setAuthContext(c, testBusinessID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestListingHandler_Create_MultipartBadForm(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("category", "RESORT"))
	require.NoError(t, mw.WriteField("form", `not json`))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/listings", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	setAuthContext(c, testBusinessID)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingHandler_Create_Unauthenticated(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/listings", strings.NewReader(`{}`))

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListingHandler_Preview(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	result := &service.PreviewResult{
		Payload:    payload.Payload{"title": "Lagoon Resort"},
		Validation: validator.ValidationResult{IsValid: true},
		Images:     validator.ImageValidation{IsValid: true},
	}
	svc.On("Preview", mock.Anything, mock.Anything).Return(result, nil)

	c, w := newListingContext(http.MethodPost, "/api/v1/listings/preview", strings.NewReader(`{"category":"RESORT","form":{"resortName":"Lagoon Resort"}}`))

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isValid":true`)
}

func TestListingHandler_Preview_UnsupportedCategory(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	svc.On("Preview", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: BOAT_RENTAL", domain.ErrUnsupportedCategory))

	c, w := newListingContext(http.MethodPost, "/api/v1/listings/preview", strings.NewReader(`{"category":"BOAT_RENTAL"}`))

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_CATEGORY", decodeResponse(t, w).Error.Code)
}

func TestListingHandler_GetByID(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, testBusinessID, id).Return(&domain.Listing{ID: id}, nil)

	c, w := newListingContext(http.MethodGet, "/api/v1/listings/"+id.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListingHandler_GetByID_InvalidID(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	c, w := newListingContext(http.MethodGet, "/api/v1/listings/nope", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decodeResponse(t, w).Error.Code)
}

func TestListingHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, testBusinessID, id).Return(nil, domain.ErrListingNotFound)

	c, w := newListingContext(http.MethodGet, "/api/v1/listings/"+id.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListingHandler_List(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	filter := port.ListingFilter{Category: domain.CategoryResort, Status: domain.ListingStatusActive}
	listings := []domain.Listing{{ID: uuid.New()}, {ID: uuid.New()}}
	svc.On("List", mock.Anything, testBusinessID, filter, 10, 5).Return(listings, 12, nil)

	c, w := newListingContext(http.MethodGet, "/api/v1/listings?category=resort&status=available&offset=10&limit=5", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 12, resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.Offset)
	assert.Equal(t, 5, resp.Meta.Limit)
	svc.AssertExpectations(t)
}

func TestListingHandler_List_InvalidFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"unknown category", "category=BOATS", "UNSUPPORTED_CATEGORY"},
		{"unknown status", "status=archived", "INVALID_STATUS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockListingService)
			h := handler.NewListingHandler(svc)

			c, w := newListingContext(http.MethodGet, "/api/v1/listings?"+tt.query, http.NoBody)

			h.List(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decodeResponse(t, w).Error.Code)
			svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestListingHandler_Update_CategoryChange(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, domain.ErrCategoryChange)

	c, w := newListingContext(http.MethodPut, "/api/v1/listings/"+id.String(), strings.NewReader(`{"category":"RESORT","form":{}}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListingHandler_UpdateStatus(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	svc.On("UpdateStatus", mock.Anything, testBusinessID, id, "active").
		Return(&domain.Listing{ID: id, Status: domain.ListingStatusActive}, nil)

	c, w := newListingContext(http.MethodPatch, "/api/v1/listings/"+id.String()+"/status", strings.NewReader(`{"status":"active"}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ACTIVE"`)
}

func TestListingHandler_UpdateStatus_Invalid(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	svc.On("UpdateStatus", mock.Anything, testBusinessID, id, "archived").
		Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, "archived"))

	c, w := newListingContext(http.MethodPatch, "/api/v1/listings/"+id.String()+"/status", strings.NewReader(`{"status":"archived"}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATUS", decodeResponse(t, w).Error.Code)
}

func TestListingHandler_UpdateStatus_MissingBody(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	c, w := newListingContext(http.MethodPatch, "/api/v1/listings/"+id.String()+"/status", strings.NewReader(`{}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeResponse(t, w).Error.Code)
}

func TestListingHandler_Delete(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, testBusinessID, id).Return(nil)

	c, w := newListingContext(http.MethodDelete, "/api/v1/listings/"+id.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListingHandler_Export_CSV(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	svc.On("Export", mock.Anything, testBusinessID, port.ListingFilter{}, domain.ExportFormatCSV, mock.Anything).
		Run(func(args mock.Arguments) {
			w := args.Get(4).(io.Writer)
			_, _ = w.Write([]byte("Listing ID,Title\n"))
		}).
		Return(nil)

	c, w := newListingContext(http.MethodGet, "/api/v1/listings/export", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "listings_biz")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Equal(t, "Listing ID,Title\n", w.Body.String())
}

func TestListingHandler_Export_UnsupportedFormat(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	c, w := newListingContext(http.MethodGet, "/api/v1/listings/export?format=pdf", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_EXPORT", decodeResponse(t, w).Error.Code)
}

func TestListingHandler_Export_Failure(t *testing.T) {
	svc := new(mocks.MockListingService)
	h := handler.NewListingHandler(svc)

	svc.On("Export", mock.Anything, testBusinessID, mock.Anything, domain.ExportFormatXLSX, mock.Anything).
		Return(errors.New("db down"))

	c, w := newListingContext(http.MethodGet, "/api/v1/listings/export?format=XLSX", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

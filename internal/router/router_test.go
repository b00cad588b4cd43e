package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicemart/internal/auth"
	"servicemart/internal/catalog"
	"servicemart/internal/config"
	"servicemart/internal/domain"
	"servicemart/internal/handler"
	"servicemart/internal/port"
	"servicemart/internal/router"
	"servicemart/mocks"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func setup(t *testing.T) (*gin.Engine, *mocks.MockListingService, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := new(mocks.MockListingService)
	tokens := auth.NewTokenManager(&config.JWTConfig{Secret: "test-secret", TokenExpiry: time.Hour, Issuer: "servicemart"})
	r := router.Setup(
		tokens,
		[]string{"http://localhost:3000"},
		handler.NewListingHandler(svc),
		handler.NewCatalogHandler(catalog.DefaultRegistry()),
		handler.NewHealthHandler(okPinger{}),
	)
	return r, svc, tokens
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, _, _ := setup(t)

	for _, path := range []string{"/healthz", "/readyz", "/api/v1/catalog/categories", "/api/v1/catalog/categories/RESORT/enums"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	r, _, _ := setup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", http.NoBody)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath    string                    `json:"basePath"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths["/listings/{id}"], "put")
	assert.Contains(t, doc.Paths["/listings/{id}/status"], "patch")
	assert.Contains(t, doc.Paths["/catalog/translate"], "post")
	assert.Contains(t, doc.Definitions, "domain.Listing")
	assert.Contains(t, doc.Definitions, "service.PreviewResult")
}

func TestRouter_ListingsRequireToken(t *testing.T) {
	r, svc, _ := setup(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_ListingsWithToken(t *testing.T) {
	r, svc, tokens := setup(t)

	token, _, err := tokens.Issue("biz-42")
	require.NoError(t, err)
	svc.On("List", mock.Anything, "biz-42", port.ListingFilter{}, 0, 20).Return([]domain.Listing{}, 0, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestRouter_ExportRouteIsNotAnID(t *testing.T) {
	r, svc, tokens := setup(t)

	token, _, err := tokens.Issue("biz-42")
	require.NoError(t, err)
	svc.On("Export", mock.Anything, "biz-42", port.ListingFilter{}, domain.ExportFormatCSV, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/listings/export", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

// CatalogHandler exposes the category schemas and enum option tables the
// dashboard renders its forms from.
type CatalogHandler struct {
	schemas *catalog.Registry
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(schemas *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{schemas: schemas}
}

// Categories handles GET /api/v1/catalog/categories
// @Summary List category schemas
// @Tags catalog
// @Produce json
// @Success 200 {object} Response{data=[]catalog.Schema} "All category schemas"
// @Router /catalog/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	RespondOK(c, h.schemas.All())
}

// Enums handles GET /api/v1/catalog/categories/:category/enums
// @Summary List enum options for a category
// @Description Every enum field of the category with its legal tokens and display labels
// @Tags catalog
// @Produce json
// @Param category path string true "Category" Enums(CAR_RENTAL, RESORT, FINE_DINING, CONVENIENCE_SERVICE)
// @Success 200 {object} Response{data=map[string][]catalog.Option} "Options keyed by field"
// @Failure 400 {object} ErrorResponseBody "Unsupported category"
// @Router /catalog/categories/{category}/enums [get]
func (h *CatalogHandler) Enums(c *gin.Context) {
	category := domain.Category(strings.ToUpper(strings.TrimSpace(c.Param("category"))))
	schema := h.schemas.Get(category)
	if schema == nil {
		HandleError(c, domain.ErrUnsupportedCategory)
		return
	}

	out := make(map[string][]catalog.Option, len(schema.Enums))
	for _, name := range schema.EnumFieldNames() {
		out[name] = catalog.Options(category, name)
	}
	RespondOK(c, out)
}

// Translate handles POST /api/v1/catalog/translate
// @Summary Translate between UI labels and enum tokens
// @Description Label to token when label is set, token to label otherwise
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body TranslateRequest true "Translation request"
// @Success 200 {object} Response{data=TranslateResponse} "Both sides of the translation"
// @Failure 400 {object} ErrorResponseBody "Invalid request or unsupported category"
// @Router /catalog/translate [post]
func (h *CatalogHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	category := domain.Category(strings.ToUpper(strings.TrimSpace(req.Category)))
	if !category.Valid() {
		HandleError(c, domain.ErrUnsupportedCategory)
		return
	}

	resp := TranslateResponse{Category: string(category), Field: req.Field}
	switch {
	case strings.TrimSpace(req.Label) != "":
		token, _ := catalog.LabelToEnum(category, req.Field, req.Label)
		resp.Token = token
		resp.Label = catalog.EnumToLabel(category, req.Field, token)
	case strings.TrimSpace(req.Token) != "":
		resp.Token = strings.TrimSpace(req.Token)
		resp.Label = catalog.EnumToLabel(category, req.Field, resp.Token)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "label or token is required")
		return
	}
	RespondOK(c, resp)
}

package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "servicemart/docs"
	"servicemart/internal/handler"
	"servicemart/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	tokens middleware.TokenValidator,
	allowedOrigins []string,
	listingH *handler.ListingHandler,
	catalogH *handler.CatalogHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public catalog routes
	catalog := v1.Group("/catalog")
	catalog.GET("/categories", catalogH.Categories)
	catalog.GET("/categories/:category/enums", catalogH.Enums)
	catalog.POST("/translate", catalogH.Translate)

	// Protected routes - require a valid business token
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	listings := protected.Group("/listings")
	listings.POST("/preview", listingH.Preview)
	listings.GET("/export", listingH.Export)
	listings.POST("", listingH.Create)
	listings.GET("", listingH.List)
	listings.GET("/:id", listingH.GetByID)
	listings.PUT("/:id", listingH.Update)
	listings.PATCH("/:id/status", listingH.UpdateStatus)
	listings.DELETE("/:id", listingH.Delete)

	return r
}

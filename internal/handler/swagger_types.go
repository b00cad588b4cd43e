package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ListingRequest is the JSON body for preview, create and update. Form holds
// raw form state keyed by any of the accepted aliases.
type ListingRequest struct {
	Category  string                 `json:"category" example:"CAR_RENTAL"`
	Form      map[string]interface{} `json:"form" swaggertype:"object"`
	ImageURLs []string               `json:"image_urls" example:"https://cdn.example.com/listings/b1/car.jpg"`
}

// UpdateStatusRequest represents the status change request body.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"ACTIVE"`
}

// TranslateRequest asks for a label to token translation, or the reverse
// when Token is set.
type TranslateRequest struct {
	Category string `json:"category" binding:"required" example:"CAR_RENTAL"`
	Field    string `json:"field" binding:"required" example:"carTransmission"`
	Label    string `json:"label" example:"Automatic"`
	Token    string `json:"token" example:"AUTOMATIC"`
}

// --- Response Types ---

// TranslateResponse carries both sides of a translation.
type TranslateResponse struct {
	Category string `json:"category" example:"CAR_RENTAL"`
	Field    string `json:"field" example:"carTransmission"`
	Label    string `json:"label" example:"Automatic"`
	Token    string `json:"token" example:"AUTOMATIC"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

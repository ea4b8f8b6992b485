package models

// ErrorResponse is the body returned when a single resource cannot be served
type ErrorResponse struct {
	Error string `json:"error" example:"Restaurant not found"`
}

// ValidationErrorResponse is the body returned when a write is rejected
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"price must be between 1 and 30"`
}

// Error message constants
const (
	MsgRestaurantNotFound      = "Restaurant not found"
	MsgPizzaNotFound           = "Pizza not found"
	MsgRestaurantPizzaNotFound = "RestaurantPizza not found"

	// MsgValidationErrors is reported when a write fails for an unclassified reason
	MsgValidationErrors = "validation errors"

	// OAuth/Auth errors (maintain RFC 6749 compatibility)
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrInvalidToken         = "invalid_token"
	ErrUnauthorizedClient   = "unauthorized_client"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrServerError          = "server_error"
)

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a validation body, falling back to the generic message
func NewValidationErrorResponse(errors ...string) ValidationErrorResponse {
	if len(errors) == 0 {
		errors = []string{MsgValidationErrors}
	}
	return ValidationErrorResponse{Errors: errors}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}

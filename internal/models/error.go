package models

// APIError is the standardized error response body for the API.
// MissingMenuItems is populated only for unresolved menu-item references so
// the client can show every missing name at once.
type APIError struct {
	Code             string                 `json:"code,omitempty"`
	Message          string                 `json:"message"`
	MissingMenuItems []string               `json:"missingMenuItems,omitempty"`
	Details          map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Order pipeline errors
	ErrOrderMalformed   = "ORDER_MALFORMED"
	ErrCustomerUnknown  = "CUSTOMER_UNKNOWN"
	ErrMenuItemsUnknown = "MENU_ITEMS_UNKNOWN"
	ErrDuplicateKey     = "DUPLICATE_KEY"

	// OAuth/Auth errors (maintain RFC 6749 compatibility)
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrInvalidGrant         = "invalid_grant"
	ErrUnauthorizedClient   = "unauthorized_client"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrInvalidScope         = "invalid_scope"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

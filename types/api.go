package types

// APIResponse represents a standardized API error envelope. Successful
// endpoints return their own payload shapes; failures share this one.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries a stable machine code plus a human-readable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error API response.
func NewErrorResponse(code, message string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	}
}

// Common error codes
const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeNotFound   = "NOT_FOUND"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)

package dto

// MessageResponse is the standard success envelope for mutations that return
// no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the wire shape for every failed request. Clients surface
// the string directly.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

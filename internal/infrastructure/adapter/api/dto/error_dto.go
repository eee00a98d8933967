package dto

// ErrorResponse is the standardized failure envelope: plain JSON with a
// machine-readable code and a human-readable error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Code:    code,
		Error:   message,
	}
}

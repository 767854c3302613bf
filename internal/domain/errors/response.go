package errors

// ErrorInfo contains detailed error information for the wire envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "LOCATION_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope shared by success and failure responses.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

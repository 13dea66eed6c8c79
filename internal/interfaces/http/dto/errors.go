package dto

import "net/http"

// Error codes exposed by the API. Domain errors carry the same codes, so the
// handler layer can translate them without inspecting messages.
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeStoreFailed   = "STORE_FAILED"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeInternal      = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Rendering runs
// against a browser process behind the API, so its failures surface as a bad
// gateway rather than a server error.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeRenderFailed:  http.StatusBadGateway,
	ErrCodeStoreFailed:   http.StatusInternalServerError,
	ErrCodeRateLimited:   http.StatusTooManyRequests,
	ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

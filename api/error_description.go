package api

import (
	"net/http"
	"time"
)

// ErrorDescription is used as the response body in case an error response
// is sent to the caller. The timestamp can be used to identify
// corresponding log entries when a consumer is reporting issues.
type ErrorDescription struct {
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Timestamp string   `json:"timestamp"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
}

// newErrorDescription builds an ErrorDescription for the given status code.
func newErrorDescription(status int, now time.Time, message string, details ...string) ErrorDescription {
	return ErrorDescription{
		Status:    status,
		Error:     http.StatusText(status),
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Message:   message,
		Details:   details,
	}
}

package httputil

import "time"

// HTTPErrorInfo is the structured error body every service in the landscape
// returns on 4xx/5xx responses. The composite both parses it from downstream
// responses and renders it on its own error responses.
type HTTPErrorInfo struct {
	Path      string    `json:"path"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHTTPErrorInfo stamps an error body for the given request path.
func NewHTTPErrorInfo(path, message string) HTTPErrorInfo {
	return HTTPErrorInfo{Path: path, Message: message, Timestamp: time.Now().UTC()}
}

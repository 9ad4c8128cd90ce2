// Package response defines the uniform JSON envelope every ticketly
// endpoint replies with.
package response

// APIResponse wraps every handler reply, success or error. Business
// rejections ride in Errors with enough detail for the caller to adjust
// and retry (remaining availability, the conflicting seat).
type APIResponse struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // mirrors the HTTP status
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

package models

// ErrorResponse is the uniform rejection shape produced by the trust layer
// for every 401/403/500/503 it emits. The same shape is used across all
// platform services so that callers can handle failures generically.
type ErrorResponse struct {
	// Status is always "error" for rejections.
	Status string `json:"status"`

	// StatusCode mirrors the HTTP status code of the response.
	StatusCode int `json:"statusCode"`

	// Message is a caller-safe description of the failure.
	Message string `json:"message"`

	// Error carries the underlying error string. Populated only when the
	// service runs in development mode; always omitted in production.
	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by the unauthenticated /health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

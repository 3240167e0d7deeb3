// Package handlers implements the keja-match HTTP API: listings, user
// preferences, recommendations, rent-to-own applications, and scheduler
// job history. Resource handlers register with huma; health probes stay
// echo-native.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

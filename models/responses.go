package models

// ErrorResponse is the JSON body sent when a downstream service fails
// during a mint.
type ErrorResponse struct {
	Error string `json:"error"`
}

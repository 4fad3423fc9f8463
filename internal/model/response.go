// internal/model/response.go
package model

// MessageResponse is the plain acknowledgment body used by mutations that
// have nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

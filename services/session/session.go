package session

import "github.com/google/uuid"

// NewCallID mints a reference for a video consultation channel. The actual
// media transport is provisioned by an external service against this id.
func NewCallID() string {
	return "call_" + uuid.New().String()
}

package session

import "fmt"

// Reasons reported by AuthError.
const (
	ReasonInvalidInput       = "invalid login request"
	ReasonInvalidCredentials = "Authentication failed: Invalid credentials"
	ReasonUnreachable        = "authentication server unreachable"
	ReasonMalformedResponse  = "malformed authentication response"
)

// AuthError is returned by Authenticate for every failure. Reason is meant
// for display; Err holds the cause when there is one.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Reason
	}

	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

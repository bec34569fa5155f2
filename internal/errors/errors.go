// Package errors defines the failure taxonomy of the admin console: missing
// credentials, expired authentication, application-level (embedded status)
// failures, and client-side validation failures. Transport failures are plain
// wrapped errors from net/http.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTokens means no token pair is stored; the call was never attempted.
	ErrNoTokens = errors.New("no authentication tokens found")

	// ErrAuthExpired means the server answered 401; the stored tokens have been
	// cleared and the caller has been redirected to the login route.
	ErrAuthExpired = errors.New("authentication expired")
)

// APIError is an application-level failure: the HTTP exchange succeeded but the
// response envelope carried an embedded status other than 200.
type APIError struct {
	Status  int    // embedded status from the envelope
	Message string // server-supplied message, may be empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (status %d)", e.Status)
	}
	return e.Message
}

// NewAPIError builds an APIError, substituting fallback when the server sent
// no message.
func NewAPIError(status int, message, fallback string) *APIError {
	if message == "" {
		message = fallback
	}
	return &APIError{Status: status, Message: message}
}

// ValidationError is a client-side failure raised before any network call when
// required fields are blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "please fill in all required fields"
	}
	return fmt.Sprintf("please fill in all required fields: %s", strings.Join(e.Fields, ", "))
}

// IsAPIError reports whether err is an application-level failure and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the collaborator backend, carrying
// the display message from the response body when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the backend. By the
// time the caller sees it the stored credential has already been cleared.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// AuthExchangeError means the backend rejected the identity exchange or
// answered with a malformed body. No credential has been persisted.
type AuthExchangeError struct {
	Err error
}

func (e *AuthExchangeError) Error() string {
	return fmt.Sprintf("identity exchange failed: %v", e.Err)
}

func (e *AuthExchangeError) Unwrap() error { return e.Err }

// SubmissionError means the onboarding submission was rejected. The wizard
// state is unchanged and the user may retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("onboarding submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// UserMessage extracts the text worth showing a user from an error chain:
// the collaborator's message when present, a generic line otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

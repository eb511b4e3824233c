package vybe

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx analytics API response. The raw
// body is kept for diagnostics only and is never shown to the user.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vybe: %s returned status %d", e.Endpoint, e.StatusCode)
}

// Retryable reports whether repeating the request can possibly succeed.
// Client errors are final: retrying a malformed request wastes attempts.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// UserMessage maps the failure to a reply fit for the chat, without
// leaking the raw upstream error.
func (e *APIError) UserMessage() string {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return "That address doesn't look valid. Double-check it and try again."
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return "There's an authentication issue with the analytics service. Please contact the bot operator."
	case e.StatusCode >= 500:
		return "The analytics service is having trouble. Please try again later."
	default:
		return "Couldn't fetch that data right now. Please try again later."
	}
}

// UserFacingMessage translates any error from an analytics call into the
// reply text for the chat.
func UserFacingMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Couldn't fetch that data right now. Please try again later."
}

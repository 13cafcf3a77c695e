package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoData       = errors.New("no data received")
)

// APIError is a non-2xx reply. Message is the server's "message" field when
// it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return e.Message
}

// Unwrap maps 400/401 to ErrUnauthorized so callers can match login
// rejections with errors.Is.
func (e *APIError) Unwrap() error {
	if e.Status == 400 || e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}

// UserMessage returns the text to show the user for err: the server's
// message when there is one, fallback otherwise.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx response from the booking API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}

	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

func newError(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = payload.Error
		}
	}

	return apiErr
}

// IsUnauthorized reports whether err is an API error with HTTP status 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Package errors turns failed HTTP API responses into structured errors.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MinErrorStatusCode is the first status treated as a failure.
const MinErrorStatusCode = 300

// maxErrorBody bounds how much of an error body is kept.
const maxErrorBody = 4096

// HTTPError is a non-2xx response from one of the Nokair APIs.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (%d %s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// ParseHTTPError returns nil for 2xx responses. Otherwise it reads the body
// and extracts the {"error": "..."} message the backends send.
func ParseHTTPError(resp *http.Response) error {
	if resp.StatusCode < MinErrorStatusCode && resp.StatusCode >= http.StatusOK {
		return nil
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Message:    fmt.Sprintf("failed to read error response body: %v", err),
		}
	}

	body := strings.TrimSpace(string(bodyBytes))
	httpErr := &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
		Body:       body,
		Message:    body,
	}

	var jsonErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(bodyBytes, &jsonErr) == nil {
		switch {
		case jsonErr.Error != "":
			httpErr.Message = jsonErr.Error
		case jsonErr.Message != "":
			httpErr.Message = jsonErr.Message
		}
	}

	return httpErr
}

// StatusCode extracts the HTTP status from err, following wraps.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}

// IsNotFound reports whether err carries a 404.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

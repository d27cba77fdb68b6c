package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Error is the single error shape the client returns. Status 0 means the
// request never produced a response (transport failure).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by an API error, or -1 for
// non-API errors.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

// IsNetworkError reports whether no response was received at all.
func IsNetworkError(err error) bool {
	return StatusOf(err) == 0
}

// IsUnauthorized reports a 401 response.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// checkResponse folds transport failures and 4xx/5xx responses into *Error.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return &Error{Status: 0, Message: err.Error()}
	}
	if resp.IsError() {
		return &Error{Status: resp.StatusCode(), Message: errorMessage(resp)}
	}
	return nil
}

func errorMessage(resp *resty.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(resp.StatusCode())
}

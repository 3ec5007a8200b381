package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// maxErrorBody caps how much of a failed response body is kept.
const maxErrorBody = 4 << 10

// StatusError is returned when the backend answers with a non-2xx status.
// Body is the response text, which the backend writes for end users.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

// Message returns the body as user-facing text. FastAPI-style JSON errors
// of the form {"detail": "..."} are unwrapped to their detail.
func (e *StatusError) Message() string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal([]byte(e.Body), &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	if msg := strings.TrimSpace(e.Body); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// AsStatusError reports whether err carries a backend status and returns it.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

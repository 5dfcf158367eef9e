package kazoo

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is returned when the platform answers with a non-2xx status.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

func newAPIError(method, url string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
	}
	return apiErr
}

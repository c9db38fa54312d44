package sdk

import (
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx response. The response body text
// becomes the error detail, reported alongside the status code.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error is a 404-class failure, rendered
// by callers as a dedicated not-found view rather than a generic error.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

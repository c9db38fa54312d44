package cli

import (
	"errors"
	"fmt"

	"github.com/clauseguard/clausectl/pkg/sdk"
)

// CLIError wraps service errors with user-facing messages and hints.
type CLIError struct {
	Message string
	Hint    string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// MapError converts known API failures into CLIErrors with actionable
// hints. A 404 becomes a dedicated not-found message rather than a raw
// status line. Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return &CLIError{
			Message: "contract not found",
			Hint:    "Run 'clausectl contracts' to list uploaded contracts",
			Err:     err,
		}
	}

	return err
}

// Package report serializes scrape results to disk: the company envelope
// JSON and an optional metadata sidecar.
package report

import "fmt"

// Error represents a failure to serialize or write an output file.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("output error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

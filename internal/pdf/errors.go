// Package pdf extracts text content from PDF documents.
package pdf

import "fmt"

// Error represents a failure to read or parse a PDF document.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Package extract pulls readable paragraph text out of HTML documents.
package extract

import "fmt"

// ParseError represents a failure to parse HTML content
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// LinkError represents a failure in extracting links from HTML
type LinkError struct {
	Message string
	Cause   error
}

func (e *LinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("link extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("link extraction error: %s", e.Message)
}

func (e *LinkError) Unwrap() error {
	return e.Cause
}

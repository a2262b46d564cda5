package source

import "fmt"

// ErrorKind classifies read failures.
type ErrorKind string

const (
	// ErrFetch covers transport failures and non-2xx HTTP statuses
	ErrFetch ErrorKind = "fetch"
	// ErrFile covers missing or unreadable local files
	ErrFile ErrorKind = "file"
	// ErrParse covers malformed HTML or PDF content
	ErrParse ErrorKind = "parse"
)

// Error is the unified failure type returned by every read strategy. The
// strategies never embed error text into document content themselves; the
// driver owns that policy.
type Error struct {
	Kind    ErrorKind
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error for %s: %s: %v", e.Kind, e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error for %s: %s", e.Kind, e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

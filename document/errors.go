package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an input document does not exist
	ErrNotFound = errors.New("document not found")
	// ErrParse is returned when a document is not valid JSON
	ErrParse = errors.New("document is not valid JSON")
	// ErrMissingField is returned when a required field is absent or has the wrong type
	ErrMissingField = errors.New("required field missing")
)

// NotFoundError reports a missing document. Tried lists the fallback
// candidates that were checked after Path, if any.
type NotFoundError struct {
	Path  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
	}
	return fmt.Sprintf("%s: tried %s and [%s]", ErrNotFound, e.Path, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ParseError reports a document whose content is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrParse, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrParse, e.Path)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// MissingFieldError reports a required field that is absent or malformed.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
	}
	return fmt.Sprintf("%s: %s in %s", ErrMissingField, e.Field, e.Path)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

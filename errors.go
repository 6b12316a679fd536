package ctxeval

import "github.com/datar-psa/ctxeval/document"

var (
	// ErrNotFound is returned when the conversation document, or the context
	// document and all of its fallbacks, do not exist
	ErrNotFound = document.ErrNotFound
	// ErrParse is returned when an input document is not valid JSON
	ErrParse = document.ErrParse
	// ErrMissingField is returned when a required input field is absent
	ErrMissingField = document.ErrMissingField
)

type NotFoundError = document.NotFoundError
type ParseError = document.ParseError
type MissingFieldError = document.MissingFieldError

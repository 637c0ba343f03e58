package processor

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports a transport failure or a non-success HTTP status.
type FetchError struct {
	Err        error
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse response: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports valid JSON that lacks a field the converter reads.
// Index is the feature position, or -1 for the collection itself.
type SchemaError struct {
	Err   error
	Field string
	Index int
}

func (e *SchemaError) Error() string {
	msg := "schema: "
	if e.Index >= 0 {
		msg += fmt.Sprintf("feature %d: ", e.Index)
	}
	msg += e.Field
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

var (
	errMissing   = errors.New("missing")
	errWrongType = errors.New("unexpected type")
)

// Stage names the pipeline stage an error came from, for log fields.
func Stage(err error) string {
	var (
		fetchErr  *FetchError
		parseErr  *ParseError
		schemaErr *SchemaError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &schemaErr):
		return "schema"
	default:
		return "write"
	}
}

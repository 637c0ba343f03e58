package main

import (
	"errors"
	"testing"

	"github.com/woozymasta/motopark/internal/processor"

	"github.com/stretchr/testify/assert"
)

func TestReportExitCode(t *testing.T) {
	errs := []error{
		&processor.FetchError{URL: "http://example.invalid", StatusCode: 403},
		&processor.FetchError{URL: "http://example.invalid", Err: errors.New("connection refused")},
		&processor.ParseError{Err: errors.New("invalid character '<'")},
		&processor.SchemaError{Index: 0, Field: "properties.STREET_NAME_TC"},
		errors.New("disk full"),
	}

	for _, err := range errs {
		assert.Equal(t, 1, report(err), err.Error())
	}
}

package processor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/woozymasta/motopark/internal/geo"
)

// Parse decodes a feature collection. Malformed JSON is a *ParseError;
// well-formed JSON of the wrong shape is a *SchemaError.
func Parse(data []byte) (*geo.FeatureCollection, error) {
	var fc geo.FeatureCollection

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&fc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "collection"
			}
			return nil, &SchemaError{Index: -1, Field: field, Err: errWrongType}
		}
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ParseError{Err: err}
	}

	// trailing garbage after the object
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &ParseError{Err: err}
	}

	if fc.Features == nil {
		return nil, &SchemaError{Index: -1, Field: "features", Err: errMissing}
	}

	return &fc, nil
}

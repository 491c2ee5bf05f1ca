// Package jsonstream decodes the -json output mode of the go tool: a
// concatenation of JSON values with no separator besides optional whitespace.
package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MalformedStreamError reports a byte range that did not parse as a JSON
// value at the expected offset.
type MalformedStreamError struct {
	Offset int64
	Err    error
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("malformed JSON stream at offset %d: %v", e.Offset, e.Err)
}

func (e *MalformedStreamError) Unwrap() error {
	return e.Err
}

// Decode reads every JSON value from the stream into a value of type T,
// in stream order. Whitespace and newlines between values are tolerated.
// The first value that fails to decode fails the whole stream.
func Decode[T any](r io.Reader) ([]T, error) {
	decoder := json.NewDecoder(r)

	var values []T
	for {
		var value T
		if err := decoder.Decode(&value); err != nil {
			if errors.Is(err, io.EOF) {
				return values, nil
			}
			return nil, &MalformedStreamError{Offset: decoder.InputOffset(), Err: err}
		}
		values = append(values, value)
	}
}

// DecodeString is a convenience wrapper over Decode for already-captured
// tool output.
func DecodeString[T any](stream string) ([]T, error) {
	return Decode[T](strings.NewReader(stream))
}

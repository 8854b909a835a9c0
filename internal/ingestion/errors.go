package ingestion

import (
	"errors"
	"fmt"
)

// ErrNoText is the cause recorded when a document decodes to nothing but whitespace.
var ErrNoText = errors.New("no extractable text")

// DecodeError is returned when a document cannot be turned into text.
type DecodeError struct {
	Format Format
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// UnsupportedFileTypeError is returned for files whose extension is not accepted.
type UnsupportedFileTypeError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFileTypeError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported file type: %q has no extension", e.Filename)
	}
	return fmt.Sprintf("unsupported file type %q for %q", e.Extension, e.Filename)
}

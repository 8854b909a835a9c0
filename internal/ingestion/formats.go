package ingestion

import (
	"path/filepath"
	"strings"
)

// Format is a lower-case file extension without the leading dot.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatTXT  Format = "txt"
	FormatHTML Format = "html"
	FormatHTM  Format = "htm"
)

var supportedFormats = map[Format]bool{
	FormatPDF:  true,
	FormatDOCX: true,
	FormatDOC:  true,
	FormatTXT:  true,
	FormatHTML: true,
	FormatHTM:  true,
}

// FormatOf returns the lower-cased extension of filename, or "" if it has none.
func FormatOf(filename string) Format {
	ext := filepath.Ext(filename)
	return Format(strings.ToLower(strings.TrimPrefix(ext, ".")))
}

// Supported reports whether f can be decoded.
func Supported(f Format) bool {
	return supportedFormats[f]
}

// CheckFilename returns an UnsupportedFileTypeError when filename's extension
// is not a supported format.
func CheckFilename(filename string) (Format, error) {
	f := FormatOf(filename)
	if !Supported(f) {
		return f, &UnsupportedFileTypeError{Filename: filename, Extension: string(f)}
	}
	return f, nil
}

package analysis

import "fmt"

// Input field names reported by InputMissingError; they match the form
// fields of the HTTP API.
const (
	FieldResume         = "resume"
	FieldJobDescription = "jd_file"
	FieldJobText        = "jd_text"
)

// InputMissingError indicates a required input was not supplied.
type InputMissingError struct {
	Field   string
	Message string
}

func (e *InputMissingError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("missing input %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("missing input: %s", e.Field)
}

package types

import (
	"github.com/go-playground/validator/v10"
)

// Upload is a single uploaded document: the client-supplied filename and its raw bytes.
type Upload struct {
	Filename string `validate:"required"`
	Data     []byte
}

// AnalysisRequest carries the inputs of one analysis: a resume file plus a job
// description given either as a file or as plain text.
type AnalysisRequest struct {
	Resume             *Upload `validate:"required"`
	JobDescriptionFile *Upload `validate:"omitempty"`
	JobDescriptionText string
}

// Validate validates the AnalysisRequest using the validator.
// The either-or rule for the job description is checked by the caller.
func (r *AnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

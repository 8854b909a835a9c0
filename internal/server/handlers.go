package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/types"
)

// Multipart form field names.
const (
	fieldResume = "resume"
	fieldJDFile = "jd_file"
	fieldJDText = "jd_text"
)

// maxMemory is how much of a multipart body is held in memory before parts
// spill to temporary files.
const maxMemory = 8 << 20

// handleAnalyze scores an uploaded resume against a job description given as
// an uploaded file or as text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	req, err := s.readAnalysisRequest(w, r)
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				s.logger.Warn("failed to remove multipart temp files", zap.Error(err))
			}
		}()
	}
	if err != nil {
		s.analysisError(w, r, err)
		return
	}

	card, err := s.analyzer.Analyze(ctx, req)
	if err != nil {
		s.analysisError(w, r, err)
		return
	}

	s.metrics.analyses.WithLabelValues("ok").Inc()
	s.metrics.overallScore.Observe(float64(card.OverallScore))
	s.jsonResponse(w, http.StatusOK, card)
}

func (s *Server) readAnalysisRequest(w http.ResponseWriter, r *http.Request) (*types.AnalysisRequest, error) {
	if s.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ErrBodyTooLarge{Limit: tooLarge.Limit}
		}
		// Some multipart read paths flatten the error to text.
		if strings.Contains(err.Error(), "request body too large") {
			return nil, &ErrBodyTooLarge{Limit: s.cfg.MaxUploadBytes}
		}
		return nil, &ErrMalformedRequest{Cause: err}
	}

	resume, err := formUpload(r, fieldResume)
	if err != nil {
		return nil, err
	}
	jdFile, err := formUpload(r, fieldJDFile)
	if err != nil {
		return nil, err
	}

	return &types.AnalysisRequest{
		Resume:             resume,
		JobDescriptionFile: jdFile,
		JobDescriptionText: r.FormValue(fieldJDText),
	}, nil
}

// formUpload reads the named file part, returning nil when it is absent.
func formUpload(r *http.Request, field string) (*types.Upload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, &ErrMalformedRequest{Cause: fmt.Errorf("%s: %w", field, err)}
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ErrMalformedRequest{Cause: fmt.Errorf("%s: %w", field, err)}
	}
	return &types.Upload{Filename: header.Filename, Data: data}, nil
}

// analysisError logs err and writes it as a JSON error. Internal errors are
// not echoed to the client.
func (s *Server) analysisError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	s.metrics.analyses.WithLabelValues(errorKind(err)).Inc()

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", status),
		zap.String("request_id", requestID(r.Context())),
	}
	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.Error("analysis failed", fields...)
		message = http.StatusText(status)
	} else {
		s.logger.Info("analysis rejected", fields...)
	}

	s.errorResponse(w, status, message)
}

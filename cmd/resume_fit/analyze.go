package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/schemas"
	"github.com/jonathan/resume-fit/internal/types"
)

type analyzeOptions struct {
	resume  string
	jdFile  string
	jdText  string
	asJSON  bool
	outFile string
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var ao analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a resume against a job description",
		Long: `Decode a resume (PDF, DOCX, DOC, TXT or HTML) and a job description given
as a file or as text, then print the fit scores and suggestions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts, &ao)
		},
	}

	cmd.Flags().StringVarP(&ao.resume, "resume", "r", "", "Path to resume file (required)")
	cmd.Flags().StringVarP(&ao.jdFile, "jd", "j", "", "Path to job description file")
	cmd.Flags().StringVar(&ao.jdText, "jd-text", "", "Job description text (used when --jd is not given)")
	cmd.Flags().BoolVar(&ao.asJSON, "json", false, "Print the score card as JSON")
	cmd.Flags().StringVarP(&ao.outFile, "out", "o", "", "Write output to this file instead of stdout")

	if err := cmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions, ao *analyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := opts.newApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	req, err := ao.request()
	if err != nil {
		return err
	}

	if a.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.RequestTimeout)
		defer cancel()
	}

	card, err := a.service.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if ao.outFile != "" {
		f, err := os.Create(ao.outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if !ao.asJSON {
		observability.NewPrinter(out).PrintScoreCard(card)
		return nil
	}
	return writeJSON(out, card, a.logger)
}

// request reads the input files into an AnalysisRequest.
func (ao *analyzeOptions) request() (*types.AnalysisRequest, error) {
	resume, err := readUpload(ao.resume)
	if err != nil {
		return nil, err
	}
	req := &types.AnalysisRequest{Resume: resume, JobDescriptionText: ao.jdText}
	if ao.jdFile != "" {
		if req.JobDescriptionFile, err = readUpload(ao.jdFile); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func readUpload(path string) (*types.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &types.Upload{Filename: filepath.Base(path), Data: data}, nil
}

// writeJSON writes the card and checks it against the published schema.
func writeJSON(out io.Writer, card *types.ScoreCard, log *zap.Logger) error {
	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score card: %w", err)
	}
	if err := schemas.ValidateScoreCard(data); err != nil {
		log.Warn("score card does not match schema", zap.Error(err))
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

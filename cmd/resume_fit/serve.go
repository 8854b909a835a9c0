package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/server"
	"github.com/jonathan/resume-fit/internal/server/ratelimit"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server exposing POST /analyze, GET /health and GET /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().Int("port", 8080, "Port to listen on")
	cmd.Flags().Int64("max-upload-bytes", 10<<20, "Maximum multipart request size in bytes")
	mustBind(opts.loader, "port", cmd.Flags().Lookup("port"))
	mustBind(opts.loader, "max-upload-bytes", cmd.Flags().Lookup("max-upload-bytes"))
	return cmd
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	a, err := opts.newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	limits := ratelimit.LoadConfig()
	a.logger.Info("rate limiting",
		zap.Bool("enabled", limits.Enabled),
		zap.Int("default_limit", limits.DefaultLimit),
		zap.Duration("default_window", limits.DefaultWindow),
	)

	srv := server.New(server.Config{
		Port:           a.cfg.Port,
		MaxUploadBytes: a.cfg.MaxUploadBytes,
		RequestTimeout: a.cfg.RequestTimeout,
	}, a.service, ratelimit.NewLimiter(limits), a.logger)

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

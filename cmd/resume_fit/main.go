// Package main provides the resume_fit command: an HTTP API and a one-shot
// CLI that score a resume against a job description.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jonathan/resume-fit/internal/config"
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	configPath string
	loader     *config.Loader
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{loader: config.NewLoader()}

	cmd := &cobra.Command{
		Use:           "resume_fit",
		Short:         "Resume / job description fit scoring",
		Long:          "resume_fit scores how well a resume matches a job description and suggests what to improve.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default ./resume-fit.yaml)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("json-logs", false, "Write logs as JSON")
	mustBind(opts.loader, "log.debug", flags.Lookup("debug"))
	mustBind(opts.loader, "log.json", flags.Lookup("json-logs"))

	cmd.AddCommand(newServeCmd(opts), newAnalyzeCmd(opts))
	return cmd
}

func mustBind(loader *config.Loader, key string, flag *pflag.Flag) {
	if err := loader.BindFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag for %s: %v", key, err))
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

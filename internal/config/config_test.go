package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume-fit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "antiword", cfg.AntiwordPath)
	assert.Equal(t, ProviderRules, cfg.NLP.Provider)
	assert.Equal(t, "lite", cfg.NLP.Gemini.Tier)
	assert.Equal(t, 20*time.Second, cfg.NLP.Gemini.Timeout)
	assert.NotEmpty(t, cfg.UploadDir)
	assert.False(t, cfg.Log.JSON)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 9090
request-timeout: 5s
upload-dir: /tmp/uploads
nlp:
  provider: gemini
  gemini:
    api-key: file-key
    tier: standard
log:
  json: true
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, ProviderGemini, cfg.NLP.Provider)
	assert.Equal(t, "file-key", cfg.NLP.Gemini.APIKey)
	assert.Equal(t, "standard", cfg.NLP.Gemini.Tier)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port: 9090\n")
	t.Setenv("RESUME_FIT_PORT", "7070")
	t.Setenv("RESUME_FIT_MAX_UPLOAD_BYTES", "1024")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoad_GeminiAPIKeyFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("RESUME_FIT_NLP_PROVIDER", "gemini")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.NLP.Gemini.APIKey)
}

func TestLoad_FlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESUME_FIT_PORT", "7070")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--port", "6060"}))

	loader := NewLoader()
	require.NoError(t, loader.BindFlag("port", flags.Lookup("port")))
	assert.Error(t, loader.BindFlag("missing", flags.Lookup("missing")))

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "port: [unclosed\n")

	_, err := NewLoader().Load(path)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:           8080,
			UploadDir:      "/tmp/x",
			MaxUploadBytes: 1,
			AntiwordPath:   "antiword",
			NLP:            NLPConfig{Provider: ProviderRules},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = 70000 }, "Port"},
		{"no upload dir", func(c *Config) { c.UploadDir = "" }, "UploadDir"},
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }, "MaxUploadBytes"},
		{"unknown provider", func(c *Config) { c.NLP.Provider = "spacy" }, "Provider"},
		{"bad tier", func(c *Config) { c.NLP.Gemini.Tier = "ultra" }, "Tier"},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "request-timeout"},
		{"gemini without key", func(c *Config) {
			c.NLP.Provider = ProviderGemini
			c.NLP.Gemini.Timeout = time.Second
		}, "api-key"},
		{"gemini without timeout", func(c *Config) {
			c.NLP.Provider = ProviderGemini
			c.NLP.Gemini.APIKey = "k"
		}, "timeout"},
		{"missing skills file", func(c *Config) { c.NLP.SkillsFile = "/nonexistent/skills.txt" }, "skills file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

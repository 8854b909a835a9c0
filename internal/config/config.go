// Package config provides configuration loading and validation for the
// resume-fit server and CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppName is used for the config file name and the environment prefix.
const AppName = "resume-fit"

// NLP providers.
const (
	ProviderRules  = "rules"
	ProviderGemini = "gemini"
)

// Config is the full runtime configuration.
type Config struct {
	Port           int           `mapstructure:"port" validate:"min=1,max=65535"`
	UploadDir      string        `mapstructure:"upload-dir" validate:"required"`
	MaxUploadBytes int64         `mapstructure:"max-upload-bytes" validate:"min=1"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	AntiwordPath   string        `mapstructure:"antiword-path" validate:"required"`
	NLP            NLPConfig     `mapstructure:"nlp"`
	Log            LogConfig     `mapstructure:"log"`
}

// NLPConfig selects and configures the entity recognizer.
type NLPConfig struct {
	Provider   string       `mapstructure:"provider" validate:"oneof=rules gemini"`
	SkillsFile string       `mapstructure:"skills-file"`
	Gemini     GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig configures the Gemini-backed recognizer.
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api-key"`
	Tier    string        `mapstructure:"tier" validate:"omitempty,oneof=lite standard"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls the logger format and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Loader reads Config from defaults, an optional YAML file, the environment
// (RESUME_FIT_*) and bound command-line flags, in increasing precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment bindings in place.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("upload-dir", filepath.Join(os.TempDir(), AppName))
	v.SetDefault("max-upload-bytes", 10<<20)
	v.SetDefault("request-timeout", 60*time.Second)
	v.SetDefault("antiword-path", "antiword")
	v.SetDefault("nlp.provider", ProviderRules)
	v.SetDefault("nlp.skills-file", "")
	v.SetDefault("nlp.gemini.api-key", "")
	v.SetDefault("nlp.gemini.tier", "lite")
	v.SetDefault("nlp.gemini.timeout", 20*time.Second)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)

	v.SetEnvPrefix("RESUME_FIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	// GEMINI_API_KEY is honoured as well.
	_ = v.BindEnv("nlp.gemini.api-key", "RESUME_FIT_NLP_GEMINI_API_KEY", "GEMINI_API_KEY")

	return &Loader{v: v}
}

// BindFlag lets a command-line flag override key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %q", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file at path, or resume-fit.yaml in the working
// directory when path is empty (a missing default file is not an error),
// and returns the validated Config.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.AddConfigPath(".")
		l.v.SetConfigName(AppName)
		l.v.SetConfigType("yaml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and cross-field requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config error: 'request-timeout' must be non-negative")
	}
	if c.NLP.Provider == ProviderGemini {
		if c.NLP.Gemini.APIKey == "" {
			return fmt.Errorf("config error: 'nlp.gemini.api-key' (or GEMINI_API_KEY) is required for the gemini provider")
		}
		if c.NLP.Gemini.Timeout <= 0 {
			return fmt.Errorf("config error: 'nlp.gemini.timeout' must be positive")
		}
	}
	if c.NLP.SkillsFile != "" {
		if _, err := os.Stat(c.NLP.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.NLP.SkillsFile)
		}
	}
	return nil
}

package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches by prefix
	Method string        // HTTP method
	Limit  int           // Requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(30, time.Minute, 5),
	}
}

// DefaultEndpointConfigs returns the endpoint rules. Analysis decodes
// documents and runs the NLP model, so it gets its own tighter budget.
func DefaultEndpointConfigs(analyzeLimit int, analyzeWindow time.Duration, analyzeBurst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze", Method: http.MethodPost, Limit: analyzeLimit, Window: analyzeWindow, Burst: analyzeBurst},
		{Path: "/health", Method: http.MethodGet},
		{Path: "/metrics", Method: http.MethodGet},
	}
}

// LoadConfig reads RATE_LIMIT_* environment variables over DefaultConfig:
// ENABLED, DEFAULT_LIMIT, DEFAULT_WINDOW, CLEANUP_INTERVAL, IDLE_TTL,
// WHITELIST, BLACKLIST (comma-separated IPs), and ANALYZE_LIMIT,
// ANALYZE_WINDOW, ANALYZE_BURST.
func LoadConfig() *Config {
	def := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("RATE_LIMIT")
	v.AutomaticEnv()
	v.SetDefault("enabled", def.Enabled)
	v.SetDefault("default_limit", def.DefaultLimit)
	v.SetDefault("default_window", def.DefaultWindow)
	v.SetDefault("cleanup_interval", def.CleanupInterval)
	v.SetDefault("idle_ttl", def.IdleTTL)
	v.SetDefault("whitelist", "")
	v.SetDefault("blacklist", "")
	v.SetDefault("analyze_limit", 30)
	v.SetDefault("analyze_window", time.Minute)
	v.SetDefault("analyze_burst", 5)

	if !v.GetBool("enabled") {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    v.GetInt("default_limit"),
		DefaultWindow:   v.GetDuration("default_window"),
		CleanupInterval: v.GetDuration("cleanup_interval"),
		IdleTTL:         v.GetDuration("idle_ttl"),
		Whitelist:       parseIPList(v.GetString("whitelist")),
		Blacklist:       parseIPList(v.GetString("blacklist")),
		EndpointConfigs: DefaultEndpointConfigs(
			v.GetInt("analyze_limit"),
			v.GetDuration("analyze_window"),
			v.GetInt("analyze_burst"),
		),
	}
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}

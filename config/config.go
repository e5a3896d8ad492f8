// Package config loads recipepipe settings from defaults, an optional YAML
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/recipepipe/core/fetch"
	"github.com/gaurav-prasanna/recipepipe/crawl"
	"github.com/gaurav-prasanna/recipepipe/logger"
)

// Default values for settings not provided elsewhere.
const (
	DefaultConcurrency = 4
	DefaultLogLevel    = "info"
	DefaultLogEncoding = logger.EncodingConsole
)

// ErrConfigInvalid is wrapped by every validation failure.
var ErrConfigInvalid = errors.New("invalid configuration")

// Config is the complete recipepipe configuration.
type Config struct {
	Fetch  FetchConfig   `mapstructure:"fetch"`
	Crawl  CrawlConfig   `mapstructure:"crawl"`
	Output OutputConfig  `mapstructure:"output"`
	Logger logger.Config `mapstructure:"logger"`
}

// FetchConfig controls how pages are retrieved.
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	// FixturesDir, when set, serves pages from <dir>/<host>.html instead of
	// the network.
	FixturesDir string `mapstructure:"fixtures_dir"`
}

// CrawlConfig bounds discovery and batch scraping.
type CrawlConfig struct {
	MaxPages    int `mapstructure:"max_pages"`
	Concurrency int `mapstructure:"concurrency"`
}

// OutputConfig says where rendered recipes go. An empty Dir means stdout.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fetch", map[string]any{
		"timeout":      fetch.DefaultTimeout,
		"user_agent":   fetch.DefaultUserAgent,
		"fixtures_dir": "",
	})
	v.SetDefault("crawl", map[string]any{
		"max_pages":   crawl.DefaultMaxPages,
		"concurrency": DefaultConcurrency,
	})
	v.SetDefault("output.dir", "")
	v.SetDefault("logger", map[string]any{
		"level":       DefaultLogLevel,
		"encoding":    DefaultLogEncoding,
		"development": false,
	})
}

// Load reads configuration into a Config. When path is empty, config.yaml is
// looked up in the working directory and ./config; a missing file is not an
// error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	SetDefaults(v)

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func bindEnv(v *viper.Viper) error {
	bindings := []struct{ key, env string }{
		{"logger.level", "LOG_LEVEL"},
		{"logger.encoding", "LOG_FORMAT"},
		{"fetch.user_agent", "RECIPEPIPE_USER_AGENT"},
		{"fetch.fixtures_dir", "RECIPEPIPE_FIXTURES"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: fetch.timeout must be positive, got %s", ErrConfigInvalid, c.Fetch.Timeout)
	}
	if strings.TrimSpace(c.Fetch.UserAgent) == "" {
		return fmt.Errorf("%w: fetch.user_agent is required", ErrConfigInvalid)
	}
	if c.Crawl.MaxPages < 1 {
		return fmt.Errorf("%w: crawl.max_pages must be at least 1, got %d", ErrConfigInvalid, c.Crawl.MaxPages)
	}
	if c.Crawl.Concurrency < 1 {
		return fmt.Errorf("%w: crawl.concurrency must be at least 1, got %d", ErrConfigInvalid, c.Crawl.Concurrency)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return nil
}

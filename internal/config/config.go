// Package config loads optional .growthkit.toml settings. All fields are
// pointers so an absent key falls back to the built-in default rather
// than a zero value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory first, then in
// the user's home directory.
const ConfigFileName = ".growthkit.toml"

// Config holds tunable thresholds for the validators and the SEO auditor.
type Config struct {
	MinTouchTargetPx  *int    `toml:"min_touch_target_px,omitempty"`
	MinTouchSpacingPx *int    `toml:"min_touch_spacing_px,omitempty"`
	MinFontSizePx     *int    `toml:"min_font_size_px,omitempty"`
	LintRulesPath     *string `toml:"lint_rules_path,omitempty"`
	SentimentLexicon  *string `toml:"sentiment_lexicon,omitempty"`

	SEO *SEOConfig `toml:"seo,omitempty"`
}

// SEOConfig holds auditor settings.
type SEOConfig struct {
	FetchTimeoutSeconds *int    `toml:"fetch_timeout_seconds,omitempty"`
	ProbeTimeoutSeconds *int    `toml:"probe_timeout_seconds,omitempty"`
	UserAgent           *string `toml:"user_agent,omitempty"`
}

// Load reads the first config file found, searching the working directory
// and then the home directory. A missing file yields an empty config.
func Load() (*Config, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return &Config{}, nil
}

// LoadFile reads a specific config file.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

func searchDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Helper methods return configured values with defaults.

func (c *Config) GetMinTouchTargetPx() int {
	if c == nil || c.MinTouchTargetPx == nil {
		return 44
	}
	return *c.MinTouchTargetPx
}

func (c *Config) GetMinTouchSpacingPx() int {
	if c == nil || c.MinTouchSpacingPx == nil {
		return 8
	}
	return *c.MinTouchSpacingPx
}

func (c *Config) GetMinFontSizePx() int {
	if c == nil || c.MinFontSizePx == nil {
		return 16
	}
	return *c.MinFontSizePx
}

func (c *Config) GetLintRulesPath() string {
	if c == nil || c.LintRulesPath == nil {
		return ""
	}
	return *c.LintRulesPath
}

func (c *Config) GetSentimentLexicon() string {
	if c == nil || c.SentimentLexicon == nil {
		return ""
	}
	return *c.SentimentLexicon
}

func (c *Config) GetSEOFetchTimeout() time.Duration {
	if c == nil || c.SEO == nil || c.SEO.FetchTimeoutSeconds == nil {
		return 10 * time.Second
	}
	return time.Duration(*c.SEO.FetchTimeoutSeconds) * time.Second
}

func (c *Config) GetSEOProbeTimeout() time.Duration {
	if c == nil || c.SEO == nil || c.SEO.ProbeTimeoutSeconds == nil {
		return 5 * time.Second
	}
	return time.Duration(*c.SEO.ProbeTimeoutSeconds) * time.Second
}

func (c *Config) GetSEOUserAgent() string {
	if c == nil || c.SEO == nil || c.SEO.UserAgent == nil {
		return "Mozilla/5.0 (SEO Audit Bot)"
	}
	return *c.SEO.UserAgent
}

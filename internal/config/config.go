// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/onboardr/internal/hooks"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CountryCode is one entry of the dialing-code menu.
type CountryCode struct {
	Code  string `mapstructure:"code" yaml:"code"`
	Label string `mapstructure:"label" yaml:"label"`
}

// Review controls how the finished record is shown and printed.
type Review struct {
	Format      string `mapstructure:"format" yaml:"format"`
	MaskSecrets bool   `mapstructure:"mask_secrets" yaml:"mask_secrets"`
}

// Hooks lists the shell commands run at wizard events.
type Hooks struct {
	OnSubmit hooks.HookConfig `mapstructure:"on_submit" yaml:"on_submit"`
}

// Config holds all configuration values for onboardr.
type Config struct {
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile      string        `mapstructure:"log_file" yaml:"log_file"`
	Review       Review        `mapstructure:"review" yaml:"review"`
	CountryCodes []CountryCode `mapstructure:"country_codes" yaml:"country_codes"`
	Hooks        Hooks         `mapstructure:"hooks" yaml:"hooks"`
}

// Default returns the configuration used when no file or env var says
// otherwise.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Review: Review{
			Format: "json",
		},
		CountryCodes: []CountryCode{
			{Code: "+91", Label: "+91 India"},
			{Code: "+1", Label: "+1 America"},
		},
		Hooks: Hooks{
			OnSubmit: hooks.HookConfig{Timeout: hooks.DefaultTimeout},
		},
	}
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("onboardr")

	def := Default()
	codes := make([]map[string]any, 0, len(def.CountryCodes))
	for _, c := range def.CountryCodes {
		codes = append(codes, map[string]any{"code": c.Code, "label": c.Label})
	}
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("review.format", def.Review.Format)
	v.SetDefault("review.mask_secrets", false)
	v.SetDefault("country_codes", codes)
	v.SetDefault("hooks.on_submit.command", "")
	v.SetDefault("hooks.on_submit.timeout", def.Hooks.OnSubmit.Timeout)

	v.SetEnvPrefix("ONBOARDR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so nested keys and bools resolve from env
	bindings := map[string]string{
		"log_level":           "ONBOARDR_LOG_LEVEL",
		"log_file":            "ONBOARDR_LOG_FILE",
		"review.format":       "ONBOARDR_REVIEW_FORMAT",
		"review.mask_secrets": "ONBOARDR_REVIEW_MASK_SECRETS",

		"hooks.on_submit.command": "ONBOARDR_HOOKS_ON_SUBMIT_COMMAND",
		"hooks.on_submit.timeout": "ONBOARDR_HOOKS_ON_SUBMIT_TIMEOUT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values Load cannot type-check.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Review.Format) {
	case "", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid review.format %q (want json or yaml)", c.Review.Format)
	}
	seen := make(map[string]bool, len(c.CountryCodes))
	for i, cc := range c.CountryCodes {
		code := strings.TrimSpace(cc.Code)
		if code == "" {
			return fmt.Errorf("country_codes[%d]: code is empty", i)
		}
		if seen[code] {
			return fmt.Errorf("country_codes[%d]: duplicate code %s", i, code)
		}
		seen[code] = true
	}
	if c.Hooks.OnSubmit.Timeout < 0 {
		return fmt.Errorf("invalid hooks.on_submit.timeout %d (must be >= 0)", c.Hooks.OnSubmit.Timeout)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/onboardr/onboardr.yml or $XDG_CONFIG_HOME/onboardr/onboardr.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "onboardr", "onboardr.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "onboardr", "onboardr.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "onboardr.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

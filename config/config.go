// Package config loads service configuration from defaults, an optional
// config file, and HEADLINE_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wudi/headline/headline"
	"github.com/wudi/headline/session"
)

// Config is the full service configuration.
type Config struct {
	Host             string   `mapstructure:"host"`
	Port             string   `mapstructure:"port"`
	SessionLimit     int      `mapstructure:"session_limit"`
	MaxUploadMB      int      `mapstructure:"max_upload_mb"`
	MaxConns         int      `mapstructure:"max_conns"`
	Languages        []string `mapstructure:"languages"`
	MinCandidateLen  int      `mapstructure:"min_candidate_len"`
	SegmentationMode int      `mapstructure:"segmentation_mode"`
	LogLevel         string   `mapstructure:"log_level"`
}

// Load reads configuration. cfgFile may be empty, in which case headline.yaml
// is searched for in the working directory and ~/.headline; a missing file is
// not an error then.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8080")
	v.SetDefault("session_limit", session.DefaultLimit)
	v.SetDefault("max_upload_mb", 20)
	v.SetDefault("max_conns", 16)
	v.SetDefault("languages", headline.DefaultLanguages())
	v.SetDefault("min_candidate_len", headline.DefaultMinCandidateLen)
	v.SetDefault("segmentation_mode", headline.DefaultSegmentationMode)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("HEADLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("headline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.headline")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ExtractorConfig maps the loaded values onto the heuristic knobs.
func (c *Config) ExtractorConfig() headline.Config {
	return headline.Config{
		MinCandidateLen:  c.MinCandidateLen,
		Languages:        c.Languages,
		SegmentationMode: c.SegmentationMode,
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CORS holds the opt-in CORS settings for the HTTP server.
type CORS struct {
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	Origins []string `json:"origins,omitempty" yaml:"origins" toml:"origins"`
	Methods []string `json:"methods,omitempty" yaml:"methods" toml:"methods"`
	Headers []string `json:"headers,omitempty" yaml:"headers" toml:"headers"`
}

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and are replaced by defaults downstream.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	ModelsDir    string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	DefaultModel string `json:"default_model" yaml:"default_model" toml:"default_model"`

	// Engine tunables. Context window and batch size default to the values
	// proven out on mobile GPU drivers; raise them on desktop hardware.
	ContextWindow int    `json:"context_window" yaml:"context_window" toml:"context_window"`
	BatchSize     int    `json:"batch_size" yaml:"batch_size" toml:"batch_size"`
	Threads       int    `json:"threads" yaml:"threads" toml:"threads"`
	GPULayers     int    `json:"gpu_layers" yaml:"gpu_layers" toml:"gpu_layers"`
	Seed          int64  `json:"seed" yaml:"seed" toml:"seed"`
	LibDir        string `json:"lib_dir" yaml:"lib_dir" toml:"lib_dir"`

	// Serving tunables.
	MaxQueueDepth      int   `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth"`
	MaxWaitSeconds     int64 `json:"max_wait_seconds" yaml:"max_wait_seconds" toml:"max_wait_seconds"`
	MaxBodyBytes       int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	GenerateTimeoutSec int64 `json:"generate_timeout_seconds" yaml:"generate_timeout_seconds" toml:"generate_timeout_seconds"`

	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	CORS     CORS   `json:"cors" yaml:"cors" toml:"cors"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// LoadAndValidate loads a configuration file and checks it against the
// embedded schema, so range mistakes fail at startup instead of at the
// first generation.
func LoadAndValidate(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"flyfund/internal/config"
)

func main() {
	root := buildRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	var cfgPath string
	var logLevel string

	root := &cobra.Command{
		Use:           "flyfund",
		Short:         "Local GGUF model daemon: registry, single-model engine, NDJSON streaming",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", os.Getenv("FLYFUND_CONFIG"), "Path to config file (json|yaml|toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")

	root.AddCommand(
		buildServeCmd(&cfgPath, &logLevel),
		buildModelsCmd(&cfgPath),
		buildGenerateCmd(&cfgPath, &logLevel),
	)
	return root
}

// loadConfig reads the optional config file and applies baked-in defaults.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		cfg, err = config.LoadAndValidate(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
		if v := os.Getenv("FLYFUND_ADDR"); v != "" {
			cfg.Addr = v
		}
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = "~/models/llm"
		if v := os.Getenv("FLYFUND_MODELS_DIR"); v != "" {
			cfg.ModelsDir = v
		}
	}
	return cfg, nil
}

// newLogger builds the process logger. An empty level means info.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// splitCSV splits a comma-separated flag value, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"flyfund/internal/bridge"
	"flyfund/internal/registry"
)

// buildGenerateCmd is the one-shot path: load one model, stream one
// completion to stdout, shut down. No HTTP, no queue.
func buildGenerateCmd(cfgPath, logLevel *string) *cobra.Command {
	var model string
	var maxTokens int
	var temperature float32
	var seed int64
	var stop string

	cmd := &cobra.Command{
		Use:     "generate [prompt...]",
		Short:   "Run a single generation and print tokens to stdout",
		Example: "  flyfund generate --model tiny.gguf \"Why is the sky blue?\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			lvl := cfg.LogLevel
			if *logLevel != "" {
				lvl = *logLevel
			}
			log := newLogger(lvl)

			reg, err := registry.New(cfg.ModelsDir)
			if err != nil {
				return err
			}
			id := model
			if id == "" {
				id = cfg.DefaultModel
			}
			mdl, ok := reg.Resolve(id)
			if !ok {
				return fmt.Errorf("model not found in %s: %s", reg.Dir(), id)
			}

			eng := bridge.New(bridge.NewDefaultRuntime(cfg.LibDir), bridge.Config{
				ContextWindow: cfg.ContextWindow,
				BatchSize:     cfg.BatchSize,
				Threads:       cfg.Threads,
				Seed:          cfg.Seed,
				LibDir:        cfg.LibDir,
			}, bridge.WithLogger(log))
			if err := eng.Initialize(); err != nil {
				return err
			}
			defer eng.Shutdown()

			if err := eng.LoadModel(mdl.Path, cfg.GPULayers); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			sink := bridge.SinkFunc(func(fragment string) {
				fmt.Fprint(os.Stdout, fragment)
			})
			_, err = eng.GenerateWithOptions(ctx, bridge.GenerateOptions{
				Prompt:      strings.Join(args, " "),
				MaxTokens:   maxTokens,
				Temperature: temperature,
				Seed:        seed,
				Stop:        splitCSV(stop),
			}, sink)
			fmt.Fprintln(os.Stdout)
			return err
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Model id (defaults to config default_model)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Maximum new tokens (0 = engine default)")
	cmd.Flags().Float32Var(&temperature, "temperature", 0.7, "Sampling temperature")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Sampling seed (0 = library default)")
	cmd.Flags().StringVar(&stop, "stop", "", "Comma-separated stop sequences")
	return cmd
}

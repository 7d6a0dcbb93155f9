package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"flyfund/internal/bridge"
	"flyfund/internal/config"
	"flyfund/internal/httpapi"
	"flyfund/internal/registry"
	"flyfund/internal/service"
)

func buildServeCmd(cfgPath, logLevel *string) *cobra.Command {
	var addr, modelsDir, defaultModel, libDir string
	var gpuLayers int
	var corsOrigins string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP daemon",
		Example: "  flyfund serve --models-dir ~/models/llm --addr :8080",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			// Flags win over config file values.
			if addr != "" {
				cfg.Addr = addr
			}
			if modelsDir != "" {
				cfg.ModelsDir = modelsDir
			}
			if defaultModel != "" {
				cfg.DefaultModel = defaultModel
			}
			if libDir != "" {
				cfg.LibDir = libDir
			}
			if cmd.Flags().Changed("gpu-layers") {
				cfg.GPULayers = gpuLayers
			}
			if corsOrigins != "" {
				cfg.CORS.Enabled = true
				cfg.CORS.Origins = splitCSV(corsOrigins)
			}
			lvl := cfg.LogLevel
			if *logLevel != "" {
				lvl = *logLevel
			}
			return runServe(cfg, lvl)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address, e.g. :8080")
	cmd.Flags().StringVar(&modelsDir, "models-dir", "", "Directory to scan for *.gguf model files")
	cmd.Flags().StringVar(&defaultModel, "default-model", "", "Default model id when request omits model")
	cmd.Flags().StringVar(&libDir, "lib-dir", "", "Directory holding the native inference shared libraries")
	cmd.Flags().IntVar(&gpuLayers, "gpu-layers", 0, "Number of layers to offload to the GPU (-1 = all)")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins (enables CORS)")
	return cmd
}

func runServe(cfg config.Config, logLevel string) error {
	log := newLogger(logLevel)

	reg, err := registry.New(cfg.ModelsDir)
	if err != nil {
		return err
	}
	watcher, err := registry.Watch(reg, log)
	if err != nil {
		// A missing inotify backend should not keep the daemon down.
		log.Warn().Err(err).Msg("model dir watcher unavailable, registry is scan-on-start only")
	} else {
		defer watcher.Close()
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

	svc := service.New(eng, reg, service.Config{
		DefaultModel:  cfg.DefaultModel,
		GPULayers:     cfg.GPULayers,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxWait:       time.Duration(cfg.MaxWaitSeconds) * time.Second,
	}, log)

	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetGenerateTimeoutSeconds(cfg.GenerateTimeoutSec)
	httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.Origins, cfg.CORS.Methods, cfg.CORS.Headers)

	baseCtx, stopBase := context.WithCancel(context.Background())
	defer stopBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(svc)}
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("models_dir", reg.Dir()).Int("models", reg.Len()).Msg("flyfund listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
	stopBase() // cancels in-flight generations between tokens
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

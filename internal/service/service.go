// Package service glues the model registry to the inference engine: it
// resolves request model ids, loads weights on demand (replacing the
// loaded model when a different one is asked for), applies bounded
// admission in front of the engine's single generation slot, and streams
// results as NDJSON.
package service

import (
	"context"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"flyfund/internal/bridge"
	"flyfund/internal/registry"
	"flyfund/pkg/types"
)

// Config encapsulates service tunables.
type Config struct {
	DefaultModel  string
	GPULayers     int
	MaxQueueDepth int
	MaxWait       time.Duration
}

// Service serves generations over one engine and one registry.
type Service struct {
	eng *bridge.Engine
	reg *registry.Registry
	cfg Config
	adm *admission
	log zerolog.Logger

	startTime time.Time
}

// New constructs a Service. The engine must already be initialized.
func New(eng *bridge.Engine, reg *registry.Registry, cfg Config, log zerolog.Logger) *Service {
	return &Service{
		eng:       eng,
		reg:       reg,
		cfg:       cfg,
		adm:       newAdmission(cfg.MaxQueueDepth, cfg.MaxWait),
		log:       log,
		startTime: time.Now(),
	}
}

// Engine exposes the underlying engine (CLI one-shot path).
func (s *Service) Engine() *bridge.Engine { return s.eng }

// Models returns the registry's current view.
func (s *Service) Models() []types.Model { return s.reg.List() }

// Ready reports whether the service can accept generations: the backend
// is up and at least one model is discoverable.
func (s *Service) Ready() bool {
	snap := s.eng.Snapshot()
	if snap.State == bridge.StateUninitialized || snap.State == bridge.StateClosed {
		return false
	}
	return s.reg.Len() > 0
}

// Generate resolves the requested model, ensures it is the loaded one,
// runs a generation, and writes NDJSON lines to w: one {"token":...}
// line per fragment and a final {"done":true,...} summary line.
func (s *Service) Generate(ctx context.Context, req types.GenerateRequest, w io.Writer, flush func()) error {
	modelID := req.Model
	if modelID == "" {
		modelID = s.cfg.DefaultModel
		if modelID == "" {
			return ErrModelNotFound("(unspecified)")
		}
	}
	mdl, ok := s.reg.Resolve(modelID)
	if !ok {
		return ErrModelNotFound(modelID)
	}

	// Admission: FIFO queue in front of the single in-flight slot.
	release, err := s.adm.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.ensureLoaded(mdl); err != nil {
		return err
	}

	reqID := uuid.NewString()
	log := s.log.With().Str("request_id", reqID).Str("model", modelID).Logger()

	// A failed write (client gone) cancels the context; the engine
	// observes it between tokens and returns the partial result.
	genCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var writeErr error
	tokens := 0
	sink := bridge.SinkFunc(func(fragment string) {
		if writeErr != nil {
			return
		}
		if _, e := w.Write(tokenLineJSON(fragment)); e != nil {
			writeErr = e
			cancel()
			return
		}
		tokens++
		if flush != nil {
			flush()
		}
	})

	text, err := s.eng.GenerateWithOptions(genCtx, bridge.GenerateOptions{
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		Seed:        req.Seed,
		Stop:        req.Stop,
	}, sink)
	if writeErr != nil {
		log.Debug().Err(writeErr).Msg("client went away mid-stream")
		return writeErr
	}
	if err != nil {
		log.Error().Err(err).Int("tokens", tokens).Msg("generation failed")
		return err
	}

	end := map[string]any{
		"done":       true,
		"content":    text,
		"request_id": reqID,
		"tokens":     tokens,
	}
	jb, _ := json.Marshal(end)
	if _, err := w.Write(append(jb, '\n')); err != nil {
		return err
	}
	if flush != nil {
		flush()
	}
	log.Info().Int("tokens", tokens).Msg("generation done")
	return nil
}

// ensureLoaded makes mdl the loaded model, replacing whatever was loaded
// before. The engine's load path guarantees the previous pair is fully
// released first.
func (s *Service) ensureLoaded(mdl types.Model) error {
	if cur := s.eng.LoadedModel(); cur != nil && cur.Path == mdl.Path {
		return nil
	}
	return s.eng.LoadModel(mdl.Path, s.cfg.GPULayers)
}

// tokenLineJSON formats a token NDJSON line.
func tokenLineJSON(tok string) []byte {
	type tokenMsg struct {
		Token string `json:"token"`
	}
	b, _ := json.Marshal(tokenMsg{Token: tok})
	return append(b, '\n')
}

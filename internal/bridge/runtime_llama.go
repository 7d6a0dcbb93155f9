//go:build llama

package bridge

import (
	"context"
	"errors"
	"os"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// NewDefaultRuntime returns the runtime selected by build tags.
// libDir is unused by the CGO runtime; the library is linked in.
func NewDefaultRuntime(libDir string) Runtime {
	return &llamaRuntime{}
}

// llamaRuntime drives llama.cpp in-process through go-llama.cpp. The
// binding performs its own backend setup when a model is created, so Init
// and Shutdown have nothing to do here.
type llamaRuntime struct{}

func (r *llamaRuntime) Name() string { return "llama-cgo" }

func (r *llamaRuntime) Init() error { return nil }

func (r *llamaRuntime) Shutdown() {}

func (r *llamaRuntime) Open(path string, cfg ModelConfig) (Session, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model path is empty")
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	mo := []llama.ModelOption{
		llama.SetContext(cfg.ContextWindow),
		llama.SetNBatch(cfg.BatchSize),
		llama.SetGPULayers(cfg.GPULayers),
	}
	m, err := llama.New(path, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaSession{
		model:    m,
		threads:  cfg.Threads,
		fileSize: fi.Size(),
	}, nil
}

// llamaSession owns the loaded model. go-llama.cpp manages the decode
// context internally with the same lifetime as the model.
type llamaSession struct {
	model    *llama.LLama
	threads  int
	fileSize int64
}

func (s *llamaSession) Generate(ctx context.Context, prompt string, params GenerateParams, onToken func(string) error) (Result, error) {
	if s.model == nil {
		return Result{}, errors.New("llama model not initialized")
	}

	// Bridge token streaming to onToken and observe cancellation between
	// tokens. Returning false stops the prediction loop.
	var cbErr error
	tokens := 0
	s.model.SetTokenCallback(func(tok string) bool {
		select {
		case <-ctx.Done():
			cbErr = ctx.Err()
			return false
		default:
		}
		if err := onToken(tok); err != nil {
			cbErr = err
			return false
		}
		tokens++
		return true
	})

	po := []llama.PredictOption{
		llama.SetTokens(params.MaxTokens),
		llama.SetThreads(s.threads),
		llama.SetTemperature(params.Temperature),
	}
	if params.Seed != 0 {
		po = append(po, llama.SetSeed(int(params.Seed)))
	}
	if len(params.Stop) > 0 {
		po = append(po, llama.SetStopWords(params.Stop...))
	}

	text, err := s.model.Predict(prompt, po...)
	if cbErr != nil {
		// The binding treats a false callback as a clean stop; surface the
		// callback's own stop signal so the engine can classify it.
		return Result{Text: text, Tokens: tokens, FinishReason: "stop"}, cbErr
	}
	if err != nil {
		return Result{Text: text, Tokens: tokens}, ErrGeneration(StageDecode, err)
	}
	return Result{Text: text, Tokens: tokens, FinishReason: "stop"}, nil
}

// StateSize approximates resident size with the weights file size; the
// binding does not expose the native state accounting.
func (s *llamaSession) StateSize() int64 { return s.fileSize }

func (s *llamaSession) Close() error {
	if s.model != nil {
		s.model.Free()
		s.model = nil
	}
	return nil
}

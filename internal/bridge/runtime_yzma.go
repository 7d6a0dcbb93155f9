//go:build yzma && !llama

package bridge

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hybridgroup/yzma/pkg/llama"
)

// NewDefaultRuntime returns the runtime selected by build tags. libDir is
// where the prebuilt llama.cpp shared libraries live (yzma install).
func NewDefaultRuntime(libDir string) Runtime {
	return &yzmaRuntime{libDir: libDir}
}

// yzmaRuntime drives llama.cpp through purego FFI, no CGO required.
// The decode loop lives here token by token, so the contract steps
// (tokenize, clean window, chunked prefill, sample, detokenize) are
// explicit rather than delegated to a one-shot predict call.
type yzmaRuntime struct {
	libDir string
}

func (r *yzmaRuntime) Name() string { return "yzma" }

func (r *yzmaRuntime) Init() error {
	if r.libDir == "" {
		r.libDir = "./lib/llama"
	}
	if err := llama.Load(r.libDir); err != nil {
		return ErrDependencyUnavailable(fmt.Sprintf("load llama.cpp libraries from %s: %v", r.libDir, err))
	}
	llama.Init()
	return nil
}

// Shutdown is a no-op: yzma keeps the shared libraries mapped for the
// remainder of the process.
func (r *yzmaRuntime) Shutdown() {}

func (r *yzmaRuntime) Open(path string, cfg ModelConfig) (Session, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	// Probe-load to validate the file and the GPU layer setting up front;
	// the weights are mapped again per generation (fresh context = clean
	// window for every call).
	mp := llama.ModelDefaultParams()
	mp.NGpuLayers = int32(cfg.GPULayers)
	m, err := llama.ModelLoadFromFile(path, mp)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	llama.ModelFree(m)
	return &yzmaSession{path: path, cfg: cfg, fileSize: fi.Size()}, nil
}

type yzmaSession struct {
	path     string
	cfg      ModelConfig
	fileSize int64
	closed   bool
}

func (s *yzmaSession) Generate(ctx context.Context, prompt string, params GenerateParams, onToken func(string) error) (Result, error) {
	if s.closed {
		return Result{}, errors.New("session closed")
	}

	mp := llama.ModelDefaultParams()
	mp.NGpuLayers = int32(s.cfg.GPULayers)
	model, err := llama.ModelLoadFromFile(s.path, mp)
	if err != nil {
		return Result{}, fmt.Errorf("load model: %w", err)
	}
	defer llama.ModelFree(model)

	cp := llama.ContextDefaultParams()
	cp.NCtx = uint32(s.cfg.ContextWindow)
	cp.NBatch = uint32(s.cfg.BatchSize)
	cp.Embeddings = 0
	lctx, err := llama.InitFromModel(model, cp)
	if err != nil {
		return Result{}, fmt.Errorf("create context: %w", err)
	}
	defer llama.Free(lctx)

	vocab := llama.ModelGetVocab(model)
	tokens := llama.Tokenize(vocab, prompt, true, true)
	if len(tokens) == 0 {
		return Result{}, ErrGeneration(StageTokenize, errors.New("prompt produced no tokens"))
	}

	// Prefill the prompt in contiguous batches of at most BatchSize
	// tokens; positions continue across chunks.
	batchSize := s.cfg.BatchSize
	for i := 0; i < len(tokens); i += batchSize {
		end := i + batchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := llama.BatchGetOne(tokens[i:end])
		if _, err := llama.Decode(lctx, chunk); err != nil {
			return Result{}, ErrGeneration(StageDecode, fmt.Errorf("prompt batch %d..%d: %w", i, end-1, err))
		}
	}

	sp := llama.DefaultSamplerParams()
	sp.Temp = params.Temperature
	sampler := llama.NewSampler(model, llama.DefaultSamplers, sp)
	defer llama.SamplerFree(sampler)

	var out []byte
	emitted := 0
	buf := make([]byte, 256)
	for i := 0; i < params.MaxTokens; i++ {
		tok := llama.SamplerSample(sampler, lctx, -1)
		if llama.VocabIsEOG(vocab, tok) {
			return Result{Text: string(out), Tokens: emitted, FinishReason: "stop"}, nil
		}
		n := llama.TokenToPiece(vocab, tok, buf, 0, true)
		if n < 0 {
			return Result{Text: string(out), Tokens: emitted}, ErrGeneration(StageDetokenize, fmt.Errorf("token %d", tok))
		}
		piece := string(buf[:n])
		out = append(out, piece...)
		emitted++
		if err := onToken(piece); err != nil {
			return Result{Text: string(out), Tokens: emitted, FinishReason: "stop"}, err
		}
		if matchesStop(out, params.Stop) {
			return Result{Text: string(out), Tokens: emitted, FinishReason: "stop"}, nil
		}

		next := llama.BatchGetOne([]llama.Token{tok})
		if _, err := llama.Decode(lctx, next); err != nil {
			return Result{Text: string(out), Tokens: emitted}, ErrGeneration(StageDecode, fmt.Errorf("token %d: %w", i, err))
		}

		select {
		case <-ctx.Done():
			return Result{Text: string(out), Tokens: emitted, FinishReason: "canceled"}, ctx.Err()
		default:
		}
	}
	return Result{Text: string(out), Tokens: emitted, FinishReason: "length"}, nil
}

func matchesStop(out []byte, stop []string) bool {
	for _, s := range stop {
		if s == "" {
			continue
		}
		if len(out) >= len(s) && string(out[len(out)-len(s):]) == s {
			return true
		}
	}
	return false
}

// StateSize approximates resident size with the weights file size.
func (s *yzmaSession) StateSize() int64 {
	if s.closed {
		return 0
	}
	return s.fileSize
}

func (s *yzmaSession) Close() error {
	s.closed = true
	return nil
}

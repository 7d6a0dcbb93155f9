package bridge

import "context"

// Runtime abstracts the native inference library behind the engine.
// Concrete implementations are selected by build tags; tests use a fake.
type Runtime interface {
	// Name identifies the runtime in logs and status output.
	Name() string
	// Init performs the library's one-time global setup. The engine calls
	// it exactly once per process; re-invocation is undefined in the
	// underlying library contract and is guarded by the engine, not here.
	Init() error
	// Open loads the model weights at path and creates the paired decode
	// context. The returned session owns both; Close releases the context
	// first and the model second.
	Open(path string, cfg ModelConfig) (Session, error)
	// Shutdown releases backend-global resources after all sessions are
	// closed.
	Shutdown()
}

// ModelConfig carries per-load settings derived from the engine Config.
type ModelConfig struct {
	ContextWindow int
	BatchSize     int
	Threads       int
	GPULayers     int
	Seed          int64
}

// GenerateParams captures one generation call's sampling settings.
type GenerateParams struct {
	MaxTokens   int
	Temperature float32
	Seed        int64
	Stop        []string
}

// Result summarizes a generation after streaming.
type Result struct {
	Text         string
	Tokens       int
	FinishReason string
}

// Session is a loaded model/context pair. Generate invokes onToken once
// per decoded token, synchronously and in generation order, before
// requesting the next token; a non-nil error from onToken stops the loop.
// Sessions are not safe for concurrent use; the engine serializes access.
type Session interface {
	Generate(ctx context.Context, prompt string, params GenerateParams, onToken func(string) error) (Result, error)
	// StateSize reports the approximate resident size of the pair in bytes.
	StateSize() int64
	Close() error
}

package bridge

// Defaults applied when corresponding Config fields are unset. The context
// window and batch size match the values the mobile deployment settled on
// (small batches avoid instability on some mobile GPU drivers); they are
// tunables here, not invariants.
const (
	DefaultContextWindow = 2048
	DefaultBatchSize     = 32
	DefaultThreads       = 8
	DefaultMaxTokens     = 256
)

// Config encapsulates all tunables for Engine construction.
type Config struct {
	// ContextWindow is the maximum number of tokens (prompt + generated)
	// the model attends to in one generation.
	ContextWindow int
	// BatchSize caps how many prompt tokens are fed to the decoder per
	// prefill step.
	BatchSize int
	// Threads used by the native decoder.
	Threads int
	// Seed for the sampler. 0 means the library default seed, which makes
	// generation deterministic for a fixed prompt and temperature.
	Seed int64
	// LibDir is where the purego runtime looks for the native llama.cpp
	// shared libraries. Ignored by the CGO runtime.
	LibDir string
}

// withDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.ContextWindow <= 0 {
		c.ContextWindow = DefaultContextWindow
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Threads <= 0 {
		c.Threads = DefaultThreads
	}
	return c
}

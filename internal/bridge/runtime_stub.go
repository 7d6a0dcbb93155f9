//go:build !llama && !yzma

package bridge

// This file provides the runtime compiled when neither the 'llama' nor the
// 'yzma' build tag is set, keeping default builds and CI free of native
// dependencies. Open fails fast with a dependency-unavailable error so the
// caller can fall back to its remote API path; nothing is mocked.

// NewDefaultRuntime returns the runtime selected by build tags.
// libDir is unused by the stub.
func NewDefaultRuntime(libDir string) Runtime {
	return stubRuntime{}
}

type stubRuntime struct{}

func (stubRuntime) Name() string { return "stub" }

func (stubRuntime) Init() error { return nil }

func (stubRuntime) Open(path string, cfg ModelConfig) (Session, error) {
	return nil, ErrDependencyUnavailable("local inference not built (missing 'llama' or 'yzma' build tag)")
}

func (stubRuntime) Shutdown() {}

package bridge

import "time"

// State represents the engine lifecycle state.
type State string

const (
	// StateUninitialized is the process-start state; no backend resources.
	StateUninitialized State = "uninitialized"
	// StateReady means the backend is initialized but no model is loaded.
	StateReady State = "ready"
	// StateLoaded means a model/context pair is live. Generation is a
	// sub-state of loaded and is not externally visible.
	StateLoaded State = "loaded"
	// StateClosed is terminal; no operation is valid after Shutdown.
	StateClosed State = "closed"
)

// ModelInfo describes the currently loaded model.
type ModelInfo struct {
	ID        string
	Path      string
	GPULayers int
	LoadedAt  time.Time
}

// Snapshot is a read-only projection of the engine state. It is served
// from a mirror guarded separately from the model lock, so reading it
// does not block behind an in-flight generation.
type Snapshot struct {
	State            State
	Model            *ModelInfo
	LastError        string
	LoadsTotal       uint64
	GenerationsTotal uint64
}

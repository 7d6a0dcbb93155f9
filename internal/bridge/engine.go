package bridge

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Engine owns at most one loaded model/context pair. A single lock (mu)
// guards the pair: LoadModel, Generate, Unload, and Shutdown hold it for
// their full duration, so all model operations are mutually exclusive
// writers. A second, cheap lock (smu) guards a read-only mirror of the
// lifecycle state so IsLoaded/Snapshot do not block behind an in-flight
// generation.
type Engine struct {
	mu sync.Mutex // guards rt init state, sess, and all native resources

	rt  Runtime
	cfg Config

	sess Session

	smu      sync.RWMutex // guards the mirror below
	info     *ModelInfo
	state    State
	lastErr  string
	loads    uint64
	gens     uint64
	initDone bool

	log zerolog.Logger
	pub EventPublisher
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs a structured logger used by the engine.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithPublisher installs a lifecycle event publisher.
func WithPublisher(p EventPublisher) Option {
	return func(e *Engine) { e.pub = p }
}

// New constructs an Engine over the given runtime. The engine starts
// uninitialized; call Initialize exactly once before loading models.
func New(rt Runtime, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		rt:    rt,
		cfg:   cfg.withDefaults(),
		state: StateUninitialized,
		log:   zerolog.Nop(),
		pub:   noopPublisher{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Initialize performs the backend's one-time global setup
// (Uninitialized -> Ready). The underlying library does not guarantee
// idempotence, so a second call is rejected as a misuse error instead of
// being forwarded.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.getState() == StateClosed {
		return closedError{}
	}
	if e.initDoneLocked() {
		return initError{msg: "backend already initialized"}
	}
	if err := e.rt.Init(); err != nil {
		e.setLastErr(err)
		return err
	}
	e.smu.Lock()
	e.initDone = true
	e.state = StateReady
	e.smu.Unlock()
	e.log.Info().Str("runtime", e.rt.Name()).Msg("backend initialized")
	e.pub.Publish(Event{Name: "backend_init", Fields: map[string]any{"runtime": e.rt.Name()}})
	return nil
}

// LoadModel loads the weights file at path, replacing any previously
// loaded model. The previous pair is fully released (context first, then
// model) before the new load is attempted; if the new load fails the
// engine is left in Ready with nothing loaded, never half-loaded.
// Missing or corrupt files surface as a load error, not a panic.
func (e *Engine) LoadModel(path string, gpuLayers int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.getState() {
	case StateClosed:
		return closedError{}
	case StateUninitialized:
		return initError{msg: "backend not initialized"}
	}

	// Release any previous pair before touching the new file.
	e.releaseLocked()

	e.log.Info().Str("path", path).Int("gpu_layers", gpuLayers).Msg("loading model")
	sess, err := e.rt.Open(path, ModelConfig{
		ContextWindow: e.cfg.ContextWindow,
		BatchSize:     e.cfg.BatchSize,
		Threads:       e.cfg.Threads,
		GPULayers:     gpuLayers,
		Seed:          e.cfg.Seed,
	})
	if err != nil {
		lerr := ErrLoadFailed(path, err)
		e.setLastErr(lerr)
		loadsTotal.WithLabelValues("failure").Inc()
		e.log.Error().Err(err).Str("path", path).Msg("model load failed")
		e.pub.Publish(Event{Name: "load_failed", ModelID: filepath.Base(path), Fields: map[string]any{"error": err.Error()}})
		if IsDependencyUnavailable(err) {
			return err
		}
		return lerr
	}

	e.sess = sess
	info := &ModelInfo{
		ID:        filepath.Base(path),
		Path:      path,
		GPULayers: gpuLayers,
		LoadedAt:  time.Now(),
	}
	e.smu.Lock()
	e.info = info
	e.state = StateLoaded
	e.lastErr = ""
	e.loads++
	e.smu.Unlock()
	loadsTotal.WithLabelValues("success").Inc()
	e.log.Info().Str("model", info.ID).Msg("model loaded")
	e.pub.Publish(Event{Name: "load_done", ModelID: info.ID, Fields: map[string]any{}})
	return nil
}

// IsLoaded reports whether a model is currently loaded. Served from the
// state mirror; does not block behind an in-flight generation.
func (e *Engine) IsLoaded() bool {
	return e.getState() == StateLoaded
}

// Unload releases the loaded pair (context first, then model) and returns
// the engine to Ready. Safe to call when nothing is loaded.
func (e *Engine) Unload() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.getState() != StateLoaded {
		return
	}
	e.releaseLocked()
}

// Shutdown unloads any model and releases backend-global resources.
// Terminal: every operation afterwards fails with a closed error.
// Idempotent for convenience even though the spec only requires Unload
// to be.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.getState() == StateClosed {
		return
	}
	e.releaseLocked()
	if e.initDoneLocked() {
		e.rt.Shutdown()
	}
	e.smu.Lock()
	e.state = StateClosed
	e.smu.Unlock()
	e.log.Info().Msg("backend shut down")
	e.pub.Publish(Event{Name: "backend_shutdown", Fields: map[string]any{}})
}

// MemoryUsage returns the approximate resident size of the loaded pair in
// bytes, or 0 when nothing is loaded. Takes the model lock: reading the
// native state while a generation mutates it is not safe.
func (e *Engine) MemoryUsage() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil {
		return 0
	}
	return e.sess.StateSize()
}

// Snapshot returns a read-only view of the engine state.
func (e *Engine) Snapshot() Snapshot {
	e.smu.RLock()
	defer e.smu.RUnlock()
	s := Snapshot{
		State:            e.state,
		LastError:        e.lastErr,
		LoadsTotal:       e.loads,
		GenerationsTotal: e.gens,
	}
	if e.info != nil && e.state == StateLoaded {
		cp := *e.info
		s.Model = &cp
	}
	return s
}

// LoadedModel returns a copy of the loaded model's info, or nil.
func (e *Engine) LoadedModel() *ModelInfo {
	return e.Snapshot().Model
}

// releaseLocked frees the current pair, if any. Caller holds mu.
// Session.Close releases the context before the model, so no dangling
// context is ever observable.
func (e *Engine) releaseLocked() {
	if e.sess == nil {
		return
	}
	e.smu.RLock()
	id := ""
	if e.info != nil {
		id = e.info.ID
	}
	e.smu.RUnlock()
	if err := e.sess.Close(); err != nil {
		e.log.Warn().Err(err).Str("model", id).Msg("session close")
	}
	e.sess = nil
	e.smu.Lock()
	e.info = nil
	if e.state == StateLoaded {
		e.state = StateReady
	}
	e.smu.Unlock()
	unloadsTotal.Inc()
	e.log.Info().Str("model", id).Msg("model unloaded")
	e.pub.Publish(Event{Name: "unload_done", ModelID: id, Fields: map[string]any{}})
}

func (e *Engine) getState() State {
	e.smu.RLock()
	defer e.smu.RUnlock()
	return e.state
}

func (e *Engine) initDoneLocked() bool {
	e.smu.RLock()
	defer e.smu.RUnlock()
	return e.initDone
}

func (e *Engine) setLastErr(err error) {
	e.smu.Lock()
	e.lastErr = err.Error()
	e.smu.Unlock()
}

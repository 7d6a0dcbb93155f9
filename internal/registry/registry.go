package registry

import (
	"sync"

	"flyfund/pkg/types"
)

// Registry holds the current view of discoverable models. Reads vastly
// outnumber writes (rescans), so it is guarded by an RWMutex.
type Registry struct {
	mu     sync.RWMutex
	dir    string
	models []types.Model
}

// New builds a Registry over dir with an initial scan.
func New(dir string) (*Registry, error) {
	models, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return &Registry{dir: dir, models: models}, nil
}

// Dir returns the scanned directory.
func (r *Registry) Dir() string { return r.dir }

// List returns a copy of the current models.
func (r *Registry) List() []types.Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Model, len(r.models))
	copy(out, r.models)
	return out
}

// Len returns the number of known models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// Resolve looks up a model by ID.
func (r *Registry) Resolve(id string) (types.Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.models {
		if m.ID == id {
			return m, true
		}
	}
	return types.Model{}, false
}

// Rescan re-reads the directory and swaps the model list atomically.
func (r *Registry) Rescan() error {
	models, err := LoadDir(r.dir)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.models = models
	r.mu.Unlock()
	return nil
}

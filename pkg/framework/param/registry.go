package param

import (
	"fmt"
	"sync"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// Registry holds one plugin's parameters. Declaration order is the host's
// index order; IDs are the stable identity and must never be reused across
// plugin versions.
type Registry struct {
	mu     sync.RWMutex
	params map[clap.ID]*Parameter
	order  []clap.ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{params: make(map[clap.ID]*Parameter)}
}

// Add registers parameters, initializing each to its default. A duplicate
// ID is an error, not a silent skip, so collisions surface during
// development rather than as host-visible misbehavior.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, dup := r.params[p.ID]; dup {
			return fmt.Errorf("parameter ID %d already registered", p.ID)
		}
		p.Reset()
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return nil
}

// Get returns a parameter by ID, or nil.
func (r *Registry) Get(id clap.ID) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params[id]
}

// GetByIndex returns a parameter by declaration order, or nil.
func (r *Registry) GetByIndex(index uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index >= uint32(len(r.order)) {
		return nil
	}
	return r.params[r.order[index]]
}

// Count returns the number of parameters.
func (r *Registry) Count() uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint32(len(r.order))
}

// All returns the parameters in declaration order.
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		out[i] = r.params[id]
	}
	return out
}

// ResetAll restores every parameter to its default.
func (r *Registry) ResetAll() {
	for _, p := range r.All() {
		p.Reset()
	}
}

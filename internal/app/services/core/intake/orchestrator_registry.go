package intake

import "sync"

// OrchestratorFactory builds the orchestrator of a new form instance.
type OrchestratorFactory func(ownerID string) *Orchestrator

type registryEntry struct {
	orchestrator *Orchestrator
	refs         int
}

// Registry keeps one orchestrator per owner while anyone is using it, so
// concurrent submits for the same owner share a single-flight gate.
type Registry struct {
	mu      sync.Mutex
	factory OrchestratorFactory
	entries map[string]*registryEntry
}

func NewRegistry(factory OrchestratorFactory) *Registry {
	return &Registry{
		factory: factory,
		entries: map[string]*registryEntry{},
	}
}

// Acquire returns the owner's orchestrator and a release func that must be
// called exactly once when the caller is done with it.
func (r *Registry) Acquire(ownerID string) (*Orchestrator, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[ownerID]
	if !ok {
		entry = &registryEntry{orchestrator: r.factory(ownerID)}
		r.entries[ownerID] = entry
	}
	entry.refs++

	var once sync.Once
	return entry.orchestrator, func() {
		once.Do(func() { r.release(ownerID, entry) })
	}
}

func (r *Registry) release(ownerID string, entry *registryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.refs--
	if entry.refs <= 0 && r.entries[ownerID] == entry {
		delete(r.entries, ownerID)
	}
}

// Len reports how many owners currently hold an orchestrator.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

package chaincfg

import (
	"fmt"
	"sort"
	"sync"
)

// Definition produces the literal parameters of one network.
type Definition func() Config

// Registry hands out exactly one shared *Params per network identity.
//
// Each entry moves from uninitialized to ready once, on the first Profile
// call for its id. Concurrent first callers block on the same construction
// and all receive the same instance; nobody builds and discards a duplicate.
// There is no reset: network identity cannot change while a process runs.
//
// Create one Registry at process start and pass it to every subsystem that
// reads network parameters.
type Registry struct {
	opts []Option

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	def Definition

	once   sync.Once
	params *Params
	err    error
}

// NewRegistry returns a registry that knows the built-in networks. The
// options apply to every profile it builds.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		opts:    opts,
		entries: make(map[string]*entry),
	}
	r.mustRegister(MainNetID, MainNetConfig)
	r.mustRegister(RegTestID, RegTestConfig)
	return r
}

// Register adds a network definition under id. It fails with
// ErrDuplicateNetwork if id is already known, either as a built-in network or
// from an earlier Register call.
func (r *Registry) Register(id string, def Definition) error {
	if def == nil {
		return fmt.Errorf("%w: nil definition for %q", ErrInvalidConfig, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNetwork, id)
	}
	r.entries[id] = &entry{def: def}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. It is only called for the built-in networks.
func (r *Registry) mustRegister(id string, def Definition) {
	if err := r.Register(id, def); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// Profile returns the shared profile for id, building it on first use.
// A construction error is permanent for the life of the registry.
func (r *Registry) Profile(id string) (*Params, error) {
	r.mu.Lock()
	e, ok := r.entries[id]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, id)
	}

	e.once.Do(func() {
		e.params, e.err = r.build(id, e.def)
	})
	return e.params, e.err
}

// MustProfile is like Profile but panics on error.
func (r *Registry) MustProfile(id string) *Params {
	p, err := r.Profile(id)
	if err != nil {
		panic(err)
	}
	return p
}

// MainNet returns the main network profile.
func (r *Registry) MainNet() (*Params, error) {
	return r.Profile(MainNetID)
}

// Networks returns the registered network ids in sorted order.
func (r *Registry) Networks() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) build(id string, def Definition) (*Params, error) {
	cfg := def()
	if cfg.ID != id {
		return nil, fmt.Errorf("%w: definition registered as %q describes %q",
			ErrInvalidConfig, id, cfg.ID)
	}
	p, err := New(cfg, r.opts...)
	if err != nil {
		return nil, err
	}
	p.log.WithField("fingerprint", p.Fingerprint().String()).Debug("Network profile ready")
	return p, nil
}

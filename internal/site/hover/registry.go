package hover

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL is how long an idle page view keeps its state.
const DefaultTTL = 30 * time.Minute

// ErrViewNotFound is returned for unknown or expired page views.
var ErrViewNotFound = errors.New("hover: page view not found")

type view struct {
	state     *State
	mountedAt time.Time
	lastSeen  time.Time
}

// Registry tracks the hover state of every mounted page view.
type Registry struct {
	mu    sync.Mutex
	views map[string]*view
	ttl   time.Duration
	newID func() string
}

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithTTL overrides the idle timeout after which Sweep discards a view.
func WithTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithIDGenerator overrides the page view id generator (ULIDs by default).
func WithIDGenerator(fn func() string) RegistryOption {
	return func(r *Registry) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRegistry constructs an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		views: map[string]*view{},
		ttl:   DefaultTTL,
		newID: func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount creates the state for a new page view, initialised to nothing hovered.
func (r *Registry) Mount(now time.Time) (string, *State) {
	state := NewState()
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for r.views[id] != nil {
		id = r.newID()
	}
	r.views[id] = &view{state: state, mountedAt: now, lastSeen: now}
	return id, state
}

// Lookup returns the state of a mounted view and marks it as seen at now.
func (r *Registry) Lookup(id string, now time.Time) (*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	if now.Sub(v.lastSeen) > r.ttl {
		delete(r.views, id)
		return nil, ErrViewNotFound
	}
	v.lastSeen = now
	return v.state, nil
}

// Unmount discards the view's state. It reports whether the view existed.
func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[id]; !ok {
		return false
	}
	delete(r.views, id)
	return true
}

// Sweep discards every view idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, v := range r.views {
		if now.Sub(v.lastSeen) > r.ttl {
			delete(r.views, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of mounted views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Run sweeps every interval until ctx is done. report, when non-nil, receives
// the number of views removed by each sweep that removed any.
func (r *Registry) Run(ctx context.Context, interval time.Duration, report func(removed int)) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := r.Sweep(time.Now()); removed > 0 && report != nil {
				report(removed)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Package hover holds the per page view hover state shared between the
// feature cards (writers) and the hero title (reader).
package hover

import (
	"sync"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
)

// Listener is notified after the hovered product changes. ok is false when
// nothing is hovered.
type Listener func(id product.ID, ok bool)

// State is the hovered product for one page view. The zero value is not
// usable; construct with NewState.
type State struct {
	mu        sync.Mutex
	hovered   product.ID
	listeners map[int]Listener
	nextID    int
}

// NewState returns a state with nothing hovered.
func NewState() *State {
	return &State{listeners: map[int]Listener{}}
}

// Hovered returns the hovered product, if any.
func (s *State) Hovered() (product.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered, s.hovered != product.None
}

// SetHovered replaces the hovered product. The identifier is not validated;
// product.None clears the state. Listeners run synchronously when the value
// changes.
func (s *State) SetHovered(id product.ID) {
	s.mu.Lock()
	if s.hovered == id {
		s.mu.Unlock()
		return
	}
	s.hovered = id
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(id, id != product.None)
	}
}

// Clear resets the state to nothing hovered.
func (s *State) Clear() {
	s.SetHovered(product.None)
}

// Subscribe registers l and returns a func that removes it.
func (s *State) Subscribe(l Listener) (cancel func()) {
	if l == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

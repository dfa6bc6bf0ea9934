package mirror

import (
	"maps"
	"slices"
	"sync"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// State is the view state published by the mirror.
type State struct {
	// Items grows monotonically: ids are never removed, see MergeItems.
	Items map[string]domain.Item
	// Messages belong to Room, ordered by At ascending.
	Messages []domain.Message
	// Room is the active chat room, empty when none is selected.
	Room    string
	Loading bool
	// Err is the last add-item failure, cleared by the next successful post.
	Err error
}

func (s State) clone() State {
	s.Items = maps.Clone(s.Items)
	s.Messages = slices.Clone(s.Messages)
	return s
}

type observer struct {
	id int
	fn func(State)
}

// Store is the state container shared by the mirror and its views.
// Observers receive a copy of the state after every update, in update order.
// An observer must treat the copy as read-only and must not call Update.
type Store struct {
	publish sync.Mutex

	mu        sync.Mutex
	state     State
	nextID    int
	observers []observer
}

// NewStore creates a Store holding an empty state.
func NewStore() *Store {
	return &Store{
		state: State{
			Items:    map[string]domain.Item{},
			Messages: []domain.Message{},
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Update applies fn to the state and publishes the result.
func (s *Store) Update(fn func(*State)) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}

// Subscribe registers fn for state updates. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool { return o.id == id })
	}
}

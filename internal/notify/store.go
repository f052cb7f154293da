// Package notify keeps a bounded in-memory list of recent activity
// notifications for the UI bell. The store is injected where needed, not a
// package-level singleton, and evicts oldest-first once full.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ActorName string    `json:"actorName"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	mu    sync.Mutex
	cap   int
	items []Notification
}

const DefaultCapacity = 100

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{cap: capacity}
}

// Push appends a notification, dropping the oldest entry when the store is
// at capacity.
func (s *Store) Push(message, actorName string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		ActorName: actorName,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == s.cap {
		copy(s.items, s.items[1:])
		s.items = s.items[:len(s.items)-1]
	}
	s.items = append(s.items, n)
	return n
}

// List returns a newest-first copy.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.items))
	for i, n := range s.items {
		out[len(s.items)-1-i] = n
	}
	return out
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

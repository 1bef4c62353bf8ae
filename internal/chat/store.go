// Package chat keeps per-session conversation history for the delivery layers.
package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"trip-planner/internal/model"
	"trip-planner/internal/trip"
)

// Greeting is the first assistant message of every session.
const Greeting = "Hey there! I'm your Jolly Guide, ready to plan your next adventure! Tell me, where do you want to go and for how many days? 😎"

const (
	DefaultSize = 1000
	DefaultTTL  = 24 * time.Hour
)

// Store is an append-only log of messages per session.
type Store interface {
	// Create starts a new session seeded with the greeting.
	Create() (id string, history []model.Message)
	// Open returns the history for id, creating a seeded session when it does not exist.
	Open(id string) []model.Message
	// Messages returns a copy of the history or trip.ErrSessionNotFound.
	Messages(id string) ([]model.Message, error)
	// Append adds messages to an existing session.
	Append(id string, msgs ...model.Message) error
	// Reset drops the history and re-seeds the greeting.
	Reset(id string) []model.Message
}

type memoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, []model.Message]
}

// NewMemoryStore keeps up to size sessions, each expiring ttl after its last write.
func NewMemoryStore(size int, ttl time.Duration) Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryStore{
		cache: expirable.NewLRU[string, []model.Message](size, nil, ttl),
	}
}

func seed() []model.Message {
	return []model.Message{{Role: model.RoleAssistant, Content: Greeting}}
}

func (s *memoryStore) Create() (string, []model.Message) {
	id := uuid.NewString()
	history := seed()

	s.mu.Lock()
	s.cache.Add(id, history)
	s.mu.Unlock()

	return id, clone(history)
}

func (s *memoryStore) Open(id string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if history, ok := s.cache.Get(id); ok {
		return clone(history)
	}
	history := seed()
	s.cache.Add(id, history)
	return clone(history)
}

func (s *memoryStore) Messages(id string) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.cache.Get(id)
	if !ok {
		return nil, trip.ErrSessionNotFound
	}
	return clone(history), nil
}

func (s *memoryStore) Append(id string, msgs ...model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.cache.Get(id)
	if !ok {
		return trip.ErrSessionNotFound
	}
	next := make([]model.Message, 0, len(history)+len(msgs))
	next = append(next, history...)
	next = append(next, msgs...)
	s.cache.Add(id, next)
	return nil
}

func (s *memoryStore) Reset(id string) []model.Message {
	history := seed()

	s.mu.Lock()
	s.cache.Add(id, history)
	s.mu.Unlock()

	return clone(history)
}

func clone(in []model.Message) []model.Message {
	out := make([]model.Message, len(in))
	copy(out, in)
	return out
}

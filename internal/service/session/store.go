// Package session gives each HTTP client its own in-memory history.
package session

import (
	"sync"
	"time"

	"KCScope/internal/domain/history"
	"KCScope/pkg/cache"
)

// DefaultID is used when a request carries no session id.
const DefaultID = "default"

// Session guards one history. History itself does no locking and Echo
// serves requests concurrently.
type Session struct {
	ID string

	mu      sync.Mutex
	history *history.History
}

// Do runs fn with exclusive access to the session's history.
func (s *Session) Do(fn func(h *history.History)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.history)
}

// Store holds sessions until they sit idle past the TTL.
type Store struct {
	sessions   *cache.MemoryCache[*Session]
	maxEntries int
}

// Config controls session lifetime and history size.
type Config struct {
	IdleTTL     time.Duration
	MaxSessions int
	MaxEntries  int
	Sweep       time.Duration
}

// DefaultIdleTTL applies when Config.IdleTTL is not positive.
const DefaultIdleTTL = 12 * time.Hour

func NewStore(cfg Config, opts ...cache.MemoryOption) *Store {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	base := []cache.MemoryOption{
		cache.WithMemoryTTL(cfg.IdleTTL),
		cache.WithMemoryMaxSize(cfg.MaxSessions),
		cache.WithMemoryCleanup(cfg.Sweep),
	}
	return &Store{
		sessions:   cache.NewMemoryCache[*Session](append(base, opts...)...),
		maxEntries: cfg.MaxEntries,
	}
}

// Get returns the session for id, creating an empty one if needed.
func (s *Store) Get(id string) *Session {
	if id == "" {
		id = DefaultID
	}
	return s.sessions.GetOrCreate(id, func() *Session {
		return &Session{ID: id, history: history.New(history.WithMaxEntries(s.maxEntries))}
	})
}

// Len is the number of live sessions.
func (s *Store) Len() int { return s.sessions.Len() }

func (s *Store) Close() error { return s.sessions.Close() }

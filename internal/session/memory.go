package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and in deployments that
// run without Redis. Sessions are evicted lazily once their TTL elapses.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*memorySession
	now      func() time.Time
}

type memorySession struct {
	turns    []Turn
	lastSeen time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*memorySession),
		now:      time.Now,
	}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.liveSession(sessionID)
	if sess == nil {
		sess = &memorySession{}
		s.sessions[sessionID] = sess
	}
	sess.turns = append(sess.turns, turns...)
	sess.lastSeen = s.now()
	return nil
}

func (s *MemoryStore) History(_ context.Context, sessionID string) ([]Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.liveSession(sessionID)
	if sess == nil {
		return nil, nil
	}
	sess.lastSeen = s.now()
	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// liveSession returns the session if present and unexpired, evicting it
// otherwise. Callers must hold the mutex.
func (s *MemoryStore) liveSession(sessionID string) *memorySession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	if s.now().Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, sessionID)
		return nil
	}
	return sess
}

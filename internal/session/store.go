package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds a session's lifetime from creation.
const DefaultTTL = time.Hour

// Session is the server-side record behind a session cookie. UserID and
// UserEmail are set exactly once at login and read consistently everywhere.
type Session struct {
	UserID    uint
	UserEmail string
	ExpiresAt time.Time
}

// Store maps opaque tokens to authenticated sessions. Implementations must
// be safe for concurrent use; requests hit it on every authenticated call.
type Store interface {
	// Create registers a new session and returns its opaque token.
	Create(userID uint, email string) string
	// Get resolves a token. It returns false for tokens that are missing,
	// unknown or expired.
	Get(token string) (Session, bool)
	// Destroy removes the session and reports whether an authenticated
	// session existed for the token.
	Destroy(token string) bool
}

// MemoryStore is a single-instance Store backed by a mutex-guarded map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Create(userID uint, email string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = Session{
		UserID:    userID,
		UserEmail: email,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

func (s *MemoryStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		s.Destroy(token)
		return Session{}, false
	}
	return sess, true
}

func (s *MemoryStore) Destroy(token string) bool {
	s.mu.Lock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()
	return ok
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			now := s.now()
			s.mu.Lock()
			for token, sess := range s.sessions {
				if now.After(sess.ExpiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}

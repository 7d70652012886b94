// Package session keeps per-user conversation sessions in memory.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/plantworks/internal/logging"
)

// Session is one conversation between a user and the coordinator.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

type sessionKey struct {
	userID    string
	sessionID string
}

// Store holds sessions keyed by (userID, sessionID). Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[sessionKey]*Session
	logger   *logging.Logger
}

// NewStore builds an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[sessionKey]*Session),
		logger:   logging.GetLogger("session"),
	}
}

// GetOrCreate returns the session for (userID, sessionID), creating it on
// first sight. Repeated calls with the same keys return the same session
// with LastSeen refreshed.
func (s *Store) GetOrCreate(userID, sessionID string) *Session {
	key := sessionKey{userID: userID, sessionID: sessionID}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[key]; ok {
		sess.LastSeen = now
		return sess
	}

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[key] = sess
	s.logger.Debug("created session %s for user %s", sess.ID, userID)
	return sess
}

// Get returns the session for (userID, sessionID) if it exists.
func (s *Store) Get(userID, sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionKey{userID: userID, sessionID: sessionID}]
	return sess, ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

package user

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// UserSession persists across disconnects so a returning user keeps its
// rate limiter and last-room association for a while
type UserSession struct {
	UserID           string
	LastRoom         string
	LastSeen         time.Time
	LastCursorUpdate time.Time
	RateLimiter      *rate.Limiter
}

// SessionManager manages user sessions
type SessionManager struct {
	sessions          map[string]*UserSession
	messagesPerSecond float64
	burstSize         int
	mu                sync.RWMutex
}

// NewSessionManager creates a session manager. New sessions get a rate
// limiter with the given sustained rate and burst.
func NewSessionManager(messagesPerSecond float64, burstSize int) *SessionManager {
	return &SessionManager{
		sessions:          make(map[string]*UserSession),
		messagesPerSecond: messagesPerSecond,
		burstSize:         burstSize,
	}
}

// GetOrCreate: gets an existing session or creates a new one
func (sm *SessionManager) GetOrCreate(userID string) *UserSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[userID]
	if exists {
		session.LastSeen = time.Now()
		return session
	}

	session = &UserSession{
		UserID:      userID,
		LastSeen:    time.Now(),
		RateLimiter: rate.NewLimiter(rate.Limit(sm.messagesPerSecond), sm.burstSize),
	}
	sm.sessions[userID] = session
	return session
}

// UpdateLastSeen: updates the last seen time for a user session
func (sm *SessionManager) UpdateLastSeen(userID string, lastSeen time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if session, exists := sm.sessions[userID]; exists {
		session.LastSeen = lastSeen
	}
}

// LastCursor: gets the last cursor update time for a user session
func (sm *SessionManager) LastCursor(userID string) (time.Time, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if session, exists := sm.sessions[userID]; exists {
		return session.LastCursorUpdate, true
	}
	return time.Time{}, false
}

// UpdateLastCursor: updates the last cursor update time for a user session
func (sm *SessionManager) UpdateLastCursor(userID string, t time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if session, exists := sm.sessions[userID]; exists {
		session.LastCursorUpdate = t
	}
}

// Cleanup: removes sessions inactive for over an hour
func (sm *SessionManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	for userID, session := range sm.sessions {
		if now.Sub(session.LastSeen) > 1*time.Hour {
			delete(sm.sessions, userID)
		}
	}
}

package handlers

import "time"

// SessionProvider defines the session operations cursor throttling needs
type SessionProvider interface {
	LastCursor(userID string) (time.Time, bool)
	UpdateLastCursor(userID string, t time.Time)
}

// SnapshotStore defines the checkpoint operations the snapshot handler needs
type SnapshotStore interface {
	SubmitSnapshot(code string, snapshot string) error
}

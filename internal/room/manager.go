package room

import (
	"strings"
	"sync"

	"whiteboard/internal/user"
)

// Manager owns the set of live rooms and the member-to-room association.
// Its lock guards only the two maps; event traffic inside a room takes only
// that room's lock, so unrelated rooms never contend.
type Manager struct {
	rooms       map[string]*Room
	memberRooms map[string]string // userID -> room code
	maxRooms    int
	maxRoomSize int
	mu          sync.RWMutex
}

// NewManager creates a room manager with the given capacity limits
func NewManager(maxRooms, maxRoomSize int) *Manager {
	return &Manager{
		rooms:       make(map[string]*Room),
		memberRooms: make(map[string]string),
		maxRooms:    maxRooms,
		maxRoomSize: maxRoomSize,
	}
}

// Normalize: canonical form of a room code. "ab12cd" and "AB12CD" denote
// the same room.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Join adds a user to the room with the given code, creating the room on
// first join. Fails with ErrAlreadyMember if the user has not left its
// previous room.
func (m *Manager) Join(code string, u *user.User) (*Room, error) {
	code = Normalize(code)
	if code == "" {
		return nil, ErrCodeMissing
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, joined := m.memberRooms[u.ID]; joined {
		return nil, ErrAlreadyMember
	}

	rm, exists := m.rooms[code]
	if !exists {
		if len(m.rooms) >= m.maxRooms {
			return nil, ErrServerFull
		}
		rm = newRoom(code)
		m.rooms[code] = rm
	}

	if err := rm.join(u, m.maxRoomSize); err != nil {
		if !exists {
			delete(m.rooms, code)
		}
		return nil, err
	}

	m.memberRooms[u.ID] = code
	return rm, nil
}

// Leave removes the user from its room, destroying the room (and discarding
// its snapshot) when the last member leaves. Leaving while not in any room
// is a no-op; disconnects funnel through here too.
func (m *Manager) Leave(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code, joined := m.memberRooms[u.ID]
	if !joined {
		return
	}
	delete(m.memberRooms, u.ID)

	rm, exists := m.rooms[code]
	if !exists {
		return
	}

	if empty := rm.leave(u); empty {
		delete(m.rooms, code)
	}
}

// GetRoom: looks up a room by code
func (m *Manager) GetRoom(code string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rm, exists := m.rooms[Normalize(code)]
	return rm, exists
}

// SubmitSnapshot stores a checkpoint for the room. Submissions to a room
// that was destroyed concurrently return ErrRoomNotFound; callers treat
// that as a benign no-op.
func (m *Manager) SubmitSnapshot(code string, snapshot string) error {
	rm, exists := m.GetRoom(code)
	if !exists {
		return ErrRoomNotFound
	}

	rm.SetSnapshot(snapshot)
	return nil
}

// FetchSnapshot returns the room's retained checkpoint. The second return
// is false if the room has never had a snapshot submitted.
func (m *Manager) FetchSnapshot(code string) (string, bool, error) {
	rm, exists := m.GetRoom(code)
	if !exists {
		return "", false, ErrRoomNotFound
	}

	snapshot, ok := rm.Snapshot()
	return snapshot, ok, nil
}

// RoomCount returns the total number of live rooms
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.rooms)
}

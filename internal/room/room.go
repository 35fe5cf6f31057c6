package room

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"whiteboard/internal/event"
	"whiteboard/internal/user"
)

// Room represents one collaborative whiteboard session. All mutation and all
// fan-out happen under the room's own mutex, which gives every member the
// same per-room event order and keeps unrelated rooms from contending.
type Room struct {
	Code      string
	CreatedAt time.Time

	members     map[string]*user.User
	colors      map[string]string // userID -> display color
	colorGen    *user.ColorGenerator
	snapshot    string // latest canvas data URL, "" until first submission
	broadcaster *Broadcaster
	mu          sync.Mutex
}

func newRoom(code string) *Room {
	return &Room{
		Code:        code,
		CreatedAt:   time.Now(),
		members:     make(map[string]*user.User),
		colors:      make(map[string]string),
		colorGen:    user.NewColorGenerator(),
		broadcaster: NewBroadcaster(),
	}
}

// join adds a user and hands it the current snapshot before it can observe
// any relayed event: the join ack and snapshot are enqueued in the same
// critical section that adds the user to the member set.
func (r *Room) join(u *user.User, maxRoomSize int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) >= maxRoomSize {
		return ErrRoomFull
	}

	color, hasColor := r.colors[u.ID]
	if !hasColor {
		color = r.colorGen.NextColor()
		r.colors[u.ID] = color
	}

	ack, err := json.Marshal(event.RoomJoined{
		Type:   event.TypeRoomJoined,
		Room:   r.Code,
		UserID: u.ID,
		Color:  color,
	})
	if err != nil {
		return fmt.Errorf("marshal join ack: %w", err)
	}

	snapshot, err := json.Marshal(event.SnapshotLoaded{
		Type:     event.TypeSnapshotLoaded,
		Snapshot: r.snapshot,
	})
	if err != nil {
		return fmt.Errorf("marshal snapshot message: %w", err)
	}

	u.Enqueue(ack)
	u.Enqueue(snapshot)
	r.members[u.ID] = u

	r.broadcastCountLocked()
	return nil
}

// leave removes a user and reports whether the room is now empty
func (r *Room) leave(u *user.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.members, u.ID)
	delete(r.colors, u.ID)

	if len(r.members) == 0 {
		return true
	}

	r.broadcastCountLocked()
	return false
}

// Relay: delivers msg to every member except exceptID, in submission order.
// Pass an empty exceptID to reach every member (clear is echoed, draw is
// not). Delivery is fire-and-forget per recipient.
func (r *Room) Relay(msg []byte, exceptID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.broadcaster.send(r.Code, r.members, msg, exceptID)
}

// UserColor: returns the user's display color in this room
func (r *Room) UserColor(userID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.colors[userID]
}

// MemberCount: returns the number of connected members
func (r *Room) MemberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.members)
}

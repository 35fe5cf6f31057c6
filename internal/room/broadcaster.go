package room

import (
	"github.com/sirupsen/logrus"

	"whiteboard/internal/user"
)

// Broadcaster: fans a message out to room members' outboxes
type Broadcaster struct{}

// NewBroadcaster: creates a new broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// send enqueues msg for every member except exceptID. The caller holds the
// room lock, so concurrent broadcasts to the same room cannot interleave and
// every member observes the same order. Enqueue never blocks; a full outbox
// means the message is dropped for that recipient only.
func (b *Broadcaster) send(roomCode string, members map[string]*user.User, msg []byte, exceptID string) {
	for id, u := range members {
		if id == exceptID {
			continue
		}
		if !u.Enqueue(msg) {
			logrus.WithFields(logrus.Fields{
				"room":    roomCode,
				"user_id": id,
			}).Warn("Outbox full, dropping message for user")
		}
	}
}

package user

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Send pings with this period; must be shorter than the read deadline
	// the transport sets while waiting for pongs
	pingPeriod = 54 * time.Second

	// Buffered messages per connection before the relay starts dropping
	outboxSize = 256
)

// User represents one connected participant. It belongs to at most one room
// at a time; all outgoing traffic goes through its buffered outbox so the
// connection has a single writer.
type User struct {
	ID         string
	Session    *UserSession
	Connection *websocket.Conn

	outbox    chan []byte
	closeOnce sync.Once
}

func New(id string, session *UserSession, conn *websocket.Conn) *User {
	return &User{
		ID:         id,
		Session:    session,
		Connection: conn,
		outbox:     make(chan []byte, outboxSize),
	}
}

// NewID: generates a fresh connection identifier
func NewID() string {
	return uuid.NewString()
}

// Enqueue: queues a message for delivery without blocking. Returns false if
// the outbox is full; the message is dropped, not waited on, so a stalled
// recipient never delays the room.
func (u *User) Enqueue(msg []byte) bool {
	select {
	case u.outbox <- msg:
		return true
	default:
		return false
	}
}

// Outbox: read side of the delivery queue, drained by WritePump
func (u *User) Outbox() <-chan []byte {
	return u.outbox
}

// Close: closes the outbox, letting WritePump drain and exit. Must only be
// called after the user has been removed from its room, so no relay can
// still enqueue.
func (u *User) Close() {
	u.closeOnce.Do(func() {
		close(u.outbox)
	})
}

// WritePump pumps messages from the outbox to the websocket connection and
// keeps the connection alive with pings. It is the connection's only writer.
func (u *User) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		u.Connection.Close()
	}()

	for {
		select {
		case msg, ok := <-u.outbox:
			u.Connection.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Outbox closed: user left or was disconnected
				u.Connection.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := u.Connection.WriteMessage(websocket.TextMessage, msg); err != nil {
				logrus.WithField("user_id", u.ID).WithError(err).Warn("Failed to write message, closing connection")
				return
			}
		case <-ticker.C:
			u.Connection.SetWriteDeadline(time.Now().Add(writeWait))
			if err := u.Connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

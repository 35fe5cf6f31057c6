package room

import (
	"encoding/json"

	"whiteboard/internal/event"
)

// broadcastCountLocked sends the current member count to every member,
// including whoever just joined or stayed behind after a leave. Caller holds
// the room lock.
func (r *Room) broadcastCountLocked() {
	msg, err := json.Marshal(event.UsersCount{
		Type:  event.TypeUsersCount,
		Count: len(r.members),
	})
	if err != nil {
		return
	}

	r.broadcaster.send(r.Code, r.members, msg, "")
}

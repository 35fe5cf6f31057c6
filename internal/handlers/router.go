package handlers

import (
	"encoding/json"
	"fmt"

	"whiteboard/internal/event"
	"whiteboard/internal/room"
	"whiteboard/internal/user"
)

// MessageRouter routes incoming messages to the appropriate handlers
type MessageRouter struct {
	drawHandler     *DrawHandler
	snapshotHandler *SnapshotHandler
	cursorHandler   *CursorHandler
}

func NewMessageRouter(
	validator *event.Validator,
	store SnapshotStore,
	sessionMgr SessionProvider,
) *MessageRouter {
	return &MessageRouter{
		drawHandler:     NewDrawHandler(validator),
		snapshotHandler: NewSnapshotHandler(store, validator),
		cursorHandler:   NewCursorHandler(sessionMgr, validator),
	}
}

// Route: process a message via the appropriate handler
func (mr *MessageRouter) Route(rm *room.Room, u *user.User, msg []byte) error {
	var env event.Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		return fmt.Errorf("%w: %v", event.ErrMalformed, err)
	}

	switch env.Type {
	case event.TypeDraw:
		return mr.drawHandler.HandleDraw(rm, u, msg)
	case event.TypeClearCanvas:
		return mr.drawHandler.HandleClear(rm, u)
	case event.TypeSaveSnapshot:
		return mr.snapshotHandler.Handle(rm, u, msg)
	case event.TypeCursor:
		return mr.cursorHandler.Handle(rm, u, msg)
	default:
		return fmt.Errorf("%w: unknown message type %q", event.ErrMalformed, env.Type)
	}
}

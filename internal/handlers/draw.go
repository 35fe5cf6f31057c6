package handlers

import (
	"encoding/json"
	"fmt"

	"whiteboard/internal/event"
	"whiteboard/internal/room"
	"whiteboard/internal/user"
)

// DrawHandler: relays draw and clear events to the rest of the room
type DrawHandler struct {
	validator *event.Validator
}

func NewDrawHandler(validator *event.Validator) *DrawHandler {
	return &DrawHandler{
		validator: validator,
	}
}

// HandleDraw validates one stroke segment and fans it out to every other
// member of the sender's room. The originator does not get its own stroke
// back.
func (h *DrawHandler) HandleDraw(rm *room.Room, u *user.User, raw []byte) error {
	d, err := h.validator.ParseDraw(raw)
	if err != nil {
		return err
	}

	d.UserID = u.ID
	msg, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draw broadcast: %w", err)
	}

	rm.Relay(msg, u.ID)
	return nil
}

// HandleClear broadcasts a canvas reset to every member, the originator
// included, so their client confirms the local action
func (h *DrawHandler) HandleClear(rm *room.Room, u *user.User) error {
	msg, err := json.Marshal(event.Clear{
		Type:   event.TypeClearCanvas,
		UserID: u.ID,
	})
	if err != nil {
		return fmt.Errorf("marshal clear broadcast: %w", err)
	}

	rm.Relay(msg, "")
	return nil
}

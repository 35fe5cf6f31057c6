package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"whiteboard/internal/event"
	"whiteboard/internal/room"
	"whiteboard/internal/user"
)

// CursorHandler handles live pointer position updates
type CursorHandler struct {
	sessionMgr SessionProvider
	validator  *event.Validator
}

func NewCursorHandler(sessionMgr SessionProvider, validator *event.Validator) *CursorHandler {
	return &CursorHandler{
		sessionMgr: sessionMgr,
		validator:  validator,
	}
}

// Handle processes cursor messages with server-side throttling (~30fps)
func (h *CursorHandler) Handle(rm *room.Room, u *user.User, raw []byte) error {
	c, err := h.validator.ParseCursor(raw)
	if err != nil {
		return err
	}

	now := time.Now()
	lastCursorTime, exists := h.sessionMgr.LastCursor(u.ID)
	if !exists {
		return fmt.Errorf("session not found for user %s", u.ID)
	}

	if !lastCursorTime.IsZero() && now.Sub(lastCursorTime) < 33*time.Millisecond {
		return nil // throttle
	}
	h.sessionMgr.UpdateLastCursor(u.ID, now)

	c.UserID = u.ID
	c.Color = rm.UserColor(u.ID)

	msg, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cursor broadcast: %w", err)
	}

	rm.Relay(msg, u.ID)
	return nil
}

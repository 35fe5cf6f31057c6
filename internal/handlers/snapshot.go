package handlers

import (
	"errors"

	"whiteboard/internal/event"
	"whiteboard/internal/room"
	"whiteboard/internal/user"
)

// SnapshotHandler: accepts canvas checkpoint submissions. Why a submission
// happens (probabilistic mid-stroke, stroke end, post-clear) is the client's
// business; the handler stores whatever arrives.
type SnapshotHandler struct {
	store     SnapshotStore
	validator *event.Validator
}

func NewSnapshotHandler(store SnapshotStore, validator *event.Validator) *SnapshotHandler {
	return &SnapshotHandler{
		store:     store,
		validator: validator,
	}
}

// Handle validates and stores a save-snapshot submission
func (h *SnapshotHandler) Handle(rm *room.Room, u *user.User, raw []byte) error {
	s, err := h.validator.ParseSnapshot(raw)
	if err != nil {
		return err
	}

	if err := h.store.SubmitSnapshot(rm.Code, s.Snapshot); err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			// room destroyed concurrently, the checkpoint is moot
			return nil
		}
		return err
	}
	return nil
}

package room

import "errors"

var (
	// ErrRoomNotFound: operation referenced a destroyed or unknown room
	ErrRoomNotFound = errors.New("room not found")

	// ErrAlreadyMember: join without leaving the previous room first
	ErrAlreadyMember = errors.New("already a member of a room")

	// ErrCodeMissing: empty room code
	ErrCodeMissing = errors.New("room code missing")

	// ErrRoomFull: room at maximum member capacity
	ErrRoomFull = errors.New("room is full")

	// ErrServerFull: server at maximum room capacity
	ErrServerFull = errors.New("server at maximum room capacity")
)

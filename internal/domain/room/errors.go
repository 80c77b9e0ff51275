package room

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidStatus = errors.New("invalid room status")
	ErrInvalidRate   = errors.New("rate must not be negative")
)

package apperror

import "errors"

var (
	ErrCellOutOfRange    = errors.New("cell index is out of range")
	ErrSessionNotStarted = errors.New("session is not started")
	ErrSessionNotFound   = errors.New("session not found")
	ErrCorruptSession    = errors.New("session record is corrupt")
	ErrUnknownAction     = errors.New("unknown action")
)

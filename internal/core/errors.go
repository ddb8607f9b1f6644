package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeRoomNotFound = "room_not_found"
	ErrCodeRoomFull     = "room_full"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeInternal     = "internal"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
	ErrInvalidInput = errors.New("invalid input")
)

// CoreError wraps a code and human-readable message. It is delivered to the
// originating client only and never affects other room members.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

// Unwrap maps the wire code back to its sentinel so callers can use
// errors.Is instead of matching code strings.
func (e *CoreError) Unwrap() error {
	switch e.Code {
	case ErrCodeRoomNotFound:
		return ErrRoomNotFound
	case ErrCodeRoomFull:
		return ErrRoomFull
	case ErrCodeInvalidInput:
		return ErrInvalidInput
	default:
		return nil
	}
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

package rtc

import "errors"

var (
	ErrDuplicateVideo       = errors.New("video with the same id already exists")
	ErrMissingLocalVideo    = errors.New("local video track is required to join a room")
	ErrCameraUnsupported    = errors.New("local video track is not camera backed")
	ErrSessionClosed        = errors.New("session has already closed")
	ErrAlreadyJoined        = errors.New("session has already joined a room")
	ErrUnsupportedMediaFile = errors.New("unsupported media file")
	ErrUnknownTrackKind     = errors.New("unknown local track kind")
)

// JoinErrorMessage is the user visible message recorded when joining fails
const JoinErrorMessage = "Failed to join a room"

package signalling

import "errors"

var (
	ErrEmptyPayload          = errors.New("message has no payload")
	ErrInvalidMessage        = errors.New("invalid signalling message")
	ErrNotConnected          = errors.New("not connected to a signalling server")
	ErrAlreadyConnected      = errors.New("already connected to a signalling server")
	ErrEngineClosed          = errors.New("engine has already closed")
	ErrBroadcastUnavailable  = errors.New("screen broadcast is not available")
	ErrUnexpectedMessageType = errors.New("unexpected websocket message type")
)

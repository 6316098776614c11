package rtc

import (
	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

type EventType string

const (
	EventTypeConnected       EventType = "connected"
	EventTypeJoinSuccess     EventType = "join_success"
	EventTypeJoinError       EventType = "join_error"
	EventTypeTrackReady      EventType = "track_ready"
	EventTypeTrackAdded      EventType = "track_added"
	EventTypeTrackRemoved    EventType = "track_removed"
	EventTypeTrackUpdated    EventType = "track_updated"
	EventTypePeerJoined      EventType = "peer_joined"
	EventTypePeerLeft        EventType = "peer_left"
	EventTypePeerUpdated     EventType = "peer_updated"
	EventTypeError           EventType = "error"
	EventTypeConnectionError EventType = "connection_error"
)

// Event is an inbound room event. The set of events is closed, every
// implementation lives in this file.
type Event interface {
	Type() EventType
	isEvent()
}

// EventSink accepts room events from a signalling transport
type EventSink interface {
	Deliver(ev Event)
}

type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindRTC
	ErrorKindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindRTC:
		return "rtc"
	case ErrorKindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

type ConnectedEvent struct{}

type JoinSuccessEvent struct {
	PeerID livekit.ParticipantID
	Peers  []types.Peer
}

type JoinErrorEvent struct {
	Metadata map[string]string
}

type TrackReadyEvent struct {
	Ctx types.TrackContext
}

type TrackAddedEvent struct {
	Ctx types.TrackContext
}

type TrackRemovedEvent struct {
	Ctx types.TrackContext
}

type TrackUpdatedEvent struct {
	Ctx types.TrackContext
}

type PeerJoinedEvent struct {
	Peer types.Peer
}

type PeerLeftEvent struct {
	Peer types.Peer
}

type PeerUpdatedEvent struct {
	Peer types.Peer
}

type ErrorEvent struct {
	Kind ErrorKind
	Err  error
}

type ConnectionErrorEvent struct {
	Message string
}

func (ConnectedEvent) Type() EventType       { return EventTypeConnected }
func (JoinSuccessEvent) Type() EventType     { return EventTypeJoinSuccess }
func (JoinErrorEvent) Type() EventType       { return EventTypeJoinError }
func (TrackReadyEvent) Type() EventType      { return EventTypeTrackReady }
func (TrackAddedEvent) Type() EventType      { return EventTypeTrackAdded }
func (TrackRemovedEvent) Type() EventType    { return EventTypeTrackRemoved }
func (TrackUpdatedEvent) Type() EventType    { return EventTypeTrackUpdated }
func (PeerJoinedEvent) Type() EventType      { return EventTypePeerJoined }
func (PeerLeftEvent) Type() EventType        { return EventTypePeerLeft }
func (PeerUpdatedEvent) Type() EventType     { return EventTypePeerUpdated }
func (ErrorEvent) Type() EventType           { return EventTypeError }
func (ConnectionErrorEvent) Type() EventType { return EventTypeConnectionError }

func (ConnectedEvent) isEvent()       {}
func (JoinSuccessEvent) isEvent()     {}
func (JoinErrorEvent) isEvent()       {}
func (TrackReadyEvent) isEvent()      {}
func (TrackAddedEvent) isEvent()      {}
func (TrackRemovedEvent) isEvent()    {}
func (TrackUpdatedEvent) isEvent()    {}
func (PeerJoinedEvent) isEvent()      {}
func (PeerLeftEvent) isEvent()        {}
func (PeerUpdatedEvent) isEvent()     {}
func (ErrorEvent) isEvent()           {}
func (ConnectionErrorEvent) isEvent() {}

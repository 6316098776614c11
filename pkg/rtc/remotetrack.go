package rtc

import (
	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

var _ types.Track = (*RemoteTrack)(nil)

// RemoteTrack is a track published by another peer. Media is not received
// locally, so it has no native track unless one is attached.
type RemoteTrack struct {
	id       livekit.TrackID
	kind     livekit.TrackType
	peerID   livekit.ParticipantID
	metadata map[string]string
	native   types.NativeTrack
}

func NewRemoteTrack(id livekit.TrackID, kind livekit.TrackType, peerID livekit.ParticipantID, metadata map[string]string) *RemoteTrack {
	return &RemoteTrack{
		id:       id,
		kind:     kind,
		peerID:   peerID,
		metadata: metadata,
	}
}

func (t *RemoteTrack) ID() livekit.TrackID {
	return t.id
}

func (t *RemoteTrack) Kind() livekit.TrackType {
	return t.kind
}

func (t *RemoteTrack) PeerID() livekit.ParticipantID {
	return t.peerID
}

func (t *RemoteTrack) Metadata() map[string]string {
	return t.metadata
}

func (t *RemoteTrack) NativeTrack() types.NativeTrack {
	return t.native
}

// WithNativeTrack returns a copy bound to a native track, the original is left untouched
func (t *RemoteTrack) WithNativeTrack(native types.NativeTrack) *RemoteTrack {
	c := *t
	c.native = native
	return &c
}

package rtc

import (
	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

// RoomViewState is an immutable snapshot of the room as the renderer sees it
type RoomViewState struct {
	LocalPeerID livekit.ParticipantID
	// Peers in join order, the local peer first once joined
	Peers   []types.Peer
	Primary *ParticipantVideo
	// Videos other than the primary, in display order
	Videos []*ParticipantVideo

	LocalAudioEnabled  bool
	LocalVideoEnabled  bool
	ScreenShareEnabled bool

	ErrorMessage string
	Connected    bool
	Closed       bool
}

func (s *RoomViewState) Peer(peerID livekit.ParticipantID) (types.Peer, bool) {
	for _, p := range s.Peers {
		if p.ID == peerID {
			return p, true
		}
	}
	return types.Peer{}, false
}

// DisplayName resolves a video owner against the peers, a departed peer has no name
func (s *RoomViewState) DisplayName(peerID livekit.ParticipantID) string {
	if p, ok := s.Peer(peerID); ok {
		return p.DisplayName()
	}
	return ""
}

// AllVideos returns the primary followed by the rest
func (s *RoomViewState) AllVideos() []*ParticipantVideo {
	videos := make([]*ParticipantVideo, 0, len(s.Videos)+1)
	if s.Primary != nil {
		videos = append(videos, s.Primary)
	}
	return append(videos, s.Videos...)
}

func (s *RoomViewState) FindVideo(id livekit.TrackID) (*ParticipantVideo, bool) {
	for _, v := range s.AllVideos() {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// ---------------------------------------------

// roomState is the mutable state behind RoomViewState, only touched on the session ops queue
type roomState struct {
	localPeerID livekit.ParticipantID
	localVideo  types.LocalVideoTrack

	registry *Registry
	videos   *FocusList

	localAudioEnabled  bool
	localVideoEnabled  bool
	screenShareEnabled bool

	errorMessage string
	connected    bool
	closed       bool
}

func newRoomState(localVideo types.LocalVideoTrack) *roomState {
	return &roomState{
		localVideo: localVideo,
		registry:   NewRegistry(),
		videos:     NewFocusList(),
	}
}

func (s *roomState) snapshot() *RoomViewState {
	return &RoomViewState{
		LocalPeerID:        s.localPeerID,
		Peers:              s.registry.Peers(),
		Primary:            s.videos.Primary(),
		Videos:             s.videos.Sequence(),
		LocalAudioEnabled:  s.localAudioEnabled,
		LocalVideoEnabled:  s.localVideoEnabled,
		ScreenShareEnabled: s.screenShareEnabled,
		ErrorMessage:       s.errorMessage,
		Connected:          s.connected,
		Closed:             s.closed,
	}
}

func (s *roomState) clear() {
	s.localPeerID = ""
	s.registry.Clear()
	s.videos.Clear()
	s.screenShareEnabled = false
	s.connected = false
}

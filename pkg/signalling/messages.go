package signalling

import (
	"encoding/json"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

// ProtocolVersion is announced on join, servers may reject older clients
const ProtocolVersion = "1.1.0"

type MessageType string

// client to server
const (
	MessageTypeJoin                MessageType = "join"
	MessageTypeTrackAdded          MessageType = "trackAdded"
	MessageTypeTrackRemoved        MessageType = "trackRemoved"
	MessageTypeUpdatePeerMetadata  MessageType = "updatePeerMetadata"
	MessageTypeUpdateTrackMetadata MessageType = "updateTrackMetadata"
	MessageTypeLeave               MessageType = "leave"
)

// server to client
const (
	MessageTypeJoined        MessageType = "joined"
	MessageTypeJoinError     MessageType = "joinError"
	MessageTypePeerJoined    MessageType = "peerJoined"
	MessageTypePeerLeft      MessageType = "peerLeft"
	MessageTypePeerUpdated   MessageType = "peerUpdated"
	MessageTypeTracksAdded   MessageType = "tracksAdded"
	MessageTypeTracksRemoved MessageType = "tracksRemoved"
	MessageTypeTrackUpdated  MessageType = "trackUpdated"
	MessageTypeError         MessageType = "error"
)

// Message is the envelope of every signalling message, Data holds the
// payload matching Type.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	msg := &Message{Type: msgType}
	if data == nil {
		return msg, nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	msg.Data = payload
	return msg, nil
}

func (m *Message) Decode(v interface{}) error {
	if len(m.Data) == 0 {
		return ErrEmptyPayload
	}
	return json.Unmarshal(m.Data, v)
}

// Peer is the wire form of a participant
type Peer struct {
	ID                livekit.ParticipantID                 `json:"id"`
	Metadata          map[string]string                     `json:"metadata"`
	TrackIDToMetadata map[livekit.TrackID]map[string]string `json:"trackIdToMetadata,omitempty"`
}

func (p Peer) ToPeer() types.Peer {
	return types.Peer{
		ID:                p.ID,
		Metadata:          p.Metadata,
		TrackIDToMetadata: p.TrackIDToMetadata,
	}
}

func ToPeers(peers []Peer) []types.Peer {
	out := make([]types.Peer, 0, len(peers))
	for _, p := range peers {
		out = append(out, p.ToPeer())
	}
	return out
}

type JoinRequest struct {
	Metadata map[string]string `json:"metadata"`
	Version  string            `json:"version,omitempty"`
}

type TrackAddedRequest struct {
	TrackID  livekit.TrackID   `json:"trackId"`
	Metadata map[string]string `json:"metadata"`
}

type TrackRemovedRequest struct {
	TrackID livekit.TrackID `json:"trackId"`
}

type UpdatePeerMetadataRequest struct {
	Metadata map[string]string `json:"metadata"`
}

type UpdateTrackMetadataRequest struct {
	TrackID  livekit.TrackID   `json:"trackId"`
	Metadata map[string]string `json:"metadata"`
}

type JoinedResponse struct {
	PeerID livekit.ParticipantID `json:"peerId"`
	Peers  []Peer                `json:"peers"`
}

type JoinErrorResponse struct {
	Metadata map[string]string `json:"metadata"`
}

type PeerResponse struct {
	Peer Peer `json:"peer"`
}

type TracksAddedResponse struct {
	PeerID            livekit.ParticipantID                 `json:"peerId"`
	TrackIDToMetadata map[livekit.TrackID]map[string]string `json:"trackIdToMetadata"`
}

type TracksRemovedResponse struct {
	PeerID   livekit.ParticipantID `json:"peerId"`
	TrackIDs []livekit.TrackID     `json:"trackIds"`
}

type TrackUpdatedResponse struct {
	PeerID   livekit.ParticipantID `json:"peerId"`
	TrackID  livekit.TrackID       `json:"trackId"`
	Metadata map[string]string     `json:"metadata"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package signalling

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/frostbyte73/core"
	"github.com/gorilla/websocket"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"
	"github.com/livekit/protocol/utils"

	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/rtc/types"
)

var _ types.MediaEngine = (*Engine)(nil)

const streamPrefix = "ST_"

type EngineParams struct {
	Logger logger.Logger
	// URL of the signalling server, ws://host:port
	URL  string
	Room string
	// AudioFile and VideoFile play media files instead of capture devices when set
	AudioFile string
	VideoFile string
	// NewBroadcast creates the capture behind a screen share, screen sharing
	// is unavailable without it
	NewBroadcast func() types.BroadcastSource
	Dialer       *websocket.Dialer
}

// Engine is a media engine that announces local tracks to a signalling
// server and turns the server's messages into room events. Media itself is
// not negotiated, remote tracks have no native track.
type Engine struct {
	params   EngineParams
	logger   logger.Logger
	streamID string

	lock         sync.RWMutex
	conn         *Conn
	sink         rtc.EventSink
	localPeer    types.Peer
	joined       bool
	localTracks  *orderedmap.OrderedMap[livekit.TrackID, types.LocalTrack]
	remoteTracks map[livekit.TrackID]*rtc.RemoteTrack

	readDone chan struct{}
	closed   core.Fuse
}

func NewEngine(params EngineParams) *Engine {
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	if params.Dialer == nil {
		params.Dialer = websocket.DefaultDialer
	}
	return &Engine{
		params:       params,
		logger:       params.Logger.WithValues("room", params.Room),
		streamID:     utils.NewGuid(streamPrefix),
		localTracks:  orderedmap.NewOrderedMap[livekit.TrackID, types.LocalTrack](),
		remoteTracks: make(map[livekit.TrackID]*rtc.RemoteTrack),
		readDone:     make(chan struct{}),
	}
}

// SetEventSink sets where room events are delivered, usually a session
func (e *Engine) SetEventSink(sink rtc.EventSink) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.sink = sink
}

func (e *Engine) Join(ctx context.Context, metadata map[string]string) error {
	if e.closed.IsBroken() {
		return ErrEngineClosed
	}

	e.lock.Lock()
	if e.conn != nil {
		e.lock.Unlock()
		return ErrAlreadyConnected
	}
	e.lock.Unlock()

	connectURL, err := e.connectURL()
	if err != nil {
		return err
	}
	ws, _, err := e.params.Dialer.DialContext(ctx, connectURL, nil)
	if err != nil {
		return fmt.Errorf("could not connect to %s: %w", connectURL, err)
	}
	conn := NewConn(ws)

	e.lock.Lock()
	if e.conn != nil {
		e.lock.Unlock()
		_ = conn.Close()
		return ErrAlreadyConnected
	}
	e.conn = conn
	e.localPeer.Metadata = copyMetadata(metadata)
	e.lock.Unlock()

	e.logger.Infow("connected to signalling server", "url", connectURL)
	e.deliver(rtc.ConnectedEvent{})
	go e.readWorker(conn)

	return e.send(MessageTypeJoin, JoinRequest{Metadata: metadata, Version: ProtocolVersion})
}

func (e *Engine) CurrentPeer() types.Peer {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return types.Peer{
		ID:       e.localPeer.ID,
		Metadata: copyMetadata(e.localPeer.Metadata),
	}
}

func (e *Engine) CreateAudioTrack(metadata map[string]string) (types.LocalTrack, error) {
	track, err := rtc.NewLocalAudioTrack(e.trackParams(metadata, e.params.AudioFile))
	if err != nil {
		return nil, err
	}
	e.addLocalTrack(track)
	return track, nil
}

func (e *Engine) CreateVideoTrack(params types.VideoParameters, metadata map[string]string) (types.LocalVideoTrack, error) {
	track, err := rtc.NewLocalVideoTrack(rtc.LocalVideoTrackParams{
		LocalTrackParams: e.trackParams(metadata, e.params.VideoFile),
		Video:            params,
	})
	if err != nil {
		return nil, err
	}
	e.addLocalTrack(track)
	return track, nil
}

func (e *Engine) CreateScreencastTrack(
	params types.VideoParameters,
	metadata map[string]string,
	onStart func(track types.LocalTrack),
	onStop func(),
) error {
	if e.closed.IsBroken() {
		return ErrEngineClosed
	}
	if e.params.NewBroadcast == nil {
		return ErrBroadcastUnavailable
	}

	var track *rtc.LocalScreencastTrack
	track, err := rtc.NewLocalScreencastTrack(rtc.LocalScreencastTrackParams{
		LocalTrackParams: e.trackParams(metadata, ""),
		Video:            params,
		Source:           e.params.NewBroadcast(),
		OnStopped: func() {
			e.removeLocalTrack(track.ID())
			onStop()
		},
	})
	if err != nil {
		return err
	}

	go func() {
		e.addLocalTrack(track)
		if err := track.Start(); err != nil {
			e.logger.Warnw("could not start screen broadcast", err, "trackID", track.ID())
			e.removeLocalTrack(track.ID())
			onStop()
			return
		}
		e.logger.Infow("screen broadcast started", "trackID", track.ID())
		onStart(track)
	}()
	return nil
}

// UpdateMetadata replaces the metadata of the local peer
func (e *Engine) UpdateMetadata(metadata map[string]string) error {
	e.lock.Lock()
	e.localPeer.Metadata = copyMetadata(metadata)
	e.lock.Unlock()

	return e.send(MessageTypeUpdatePeerMetadata, UpdatePeerMetadataRequest{Metadata: metadata})
}

func (e *Engine) UpdateTrackMetadata(trackID livekit.TrackID, metadata map[string]string) error {
	return e.send(MessageTypeUpdateTrackMetadata, UpdateTrackMetadataRequest{
		TrackID:  trackID,
		Metadata: metadata,
	})
}

// Close leaves the room and closes the connection. Local tracks are owned
// by the session and not stopped here.
func (e *Engine) Close() {
	if e.closed.IsBroken() {
		return
	}
	e.closed.Break()

	e.lock.Lock()
	conn := e.conn
	e.lock.Unlock()
	if conn == nil {
		return
	}

	msg, _ := NewMessage(MessageTypeLeave, nil)
	if _, err := conn.WriteMessage(msg); err != nil {
		e.logger.Debugw("could not send leave", "error", err)
	}
	_ = conn.Close()
	<-e.readDone
	e.logger.Infow("left room")
}

func (e *Engine) connectURL() (string, error) {
	u, err := url.Parse(e.params.URL)
	if err != nil {
		return "", err
	}
	u.Path = "/rtc"
	q := u.Query()
	q.Set("room", e.params.Room)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (e *Engine) trackParams(metadata map[string]string, filePath string) rtc.LocalTrackParams {
	return rtc.LocalTrackParams{
		Logger:   e.logger,
		StreamID: e.streamID,
		Metadata: metadata,
		FilePath: filePath,
	}
}

func (e *Engine) addLocalTrack(track types.LocalTrack) {
	e.lock.Lock()
	e.localTracks.Set(track.ID(), track)
	joined := e.joined
	e.lock.Unlock()

	if joined {
		e.announce(track)
	}
}

func (e *Engine) removeLocalTrack(trackID livekit.TrackID) {
	e.lock.Lock()
	deleted := e.localTracks.Delete(trackID)
	joined := e.joined
	e.lock.Unlock()

	if deleted && joined {
		if err := e.send(MessageTypeTrackRemoved, TrackRemovedRequest{TrackID: trackID}); err != nil {
			e.logger.Warnw("could not remove track", err, "trackID", trackID)
		}
	}
}

func (e *Engine) announce(track types.LocalTrack) {
	err := e.send(MessageTypeTrackAdded, TrackAddedRequest{
		TrackID:  track.ID(),
		Metadata: track.Metadata(),
	})
	if err != nil {
		e.logger.Warnw("could not announce track", err, "trackID", track.ID())
	}
}

func (e *Engine) send(msgType MessageType, data interface{}) error {
	e.lock.RLock()
	conn := e.conn
	e.lock.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	msg, err := NewMessage(msgType, data)
	if err != nil {
		return err
	}
	_, err = conn.WriteMessage(msg)
	return err
}

func (e *Engine) deliver(ev rtc.Event) {
	e.lock.RLock()
	sink := e.sink
	e.lock.RUnlock()

	if sink != nil {
		sink.Deliver(ev)
	}
}

func (e *Engine) readWorker(conn *Conn) {
	defer close(e.readDone)

	for {
		msg, _, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, ErrInvalidMessage) || errors.Is(err, ErrUnexpectedMessageType) {
				e.logger.Warnw("dropping signalling message", err)
				continue
			}
			if e.closed.IsBroken() {
				return
			}
			if IsWebSocketCloseError(err) {
				e.logger.Infow("signalling connection closed", "error", err)
				e.deliver(rtc.ConnectionErrorEvent{Message: err.Error()})
			} else {
				e.logger.Warnw("error reading from signalling connection", err)
				e.deliver(rtc.ErrorEvent{Kind: rtc.ErrorKindTransport, Err: err})
			}
			return
		}

		if err := e.handleMessage(msg); err != nil {
			e.logger.Warnw("could not handle signalling message", err, "type", msg.Type)
		}
	}
}

func (e *Engine) handleMessage(msg *Message) error {
	switch msg.Type {
	case MessageTypeJoined:
		res := JoinedResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		e.onJoined(res)

	case MessageTypeJoinError:
		res := JoinErrorResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		e.deliver(rtc.JoinErrorEvent{Metadata: res.Metadata})

	case MessageTypePeerJoined, MessageTypePeerLeft, MessageTypePeerUpdated:
		res := PeerResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		peer := res.Peer.ToPeer()
		switch msg.Type {
		case MessageTypePeerJoined:
			e.deliver(rtc.PeerJoinedEvent{Peer: peer})
		case MessageTypePeerLeft:
			e.deliver(rtc.PeerLeftEvent{Peer: peer})
		default:
			e.deliver(rtc.PeerUpdatedEvent{Peer: peer})
		}

	case MessageTypeTracksAdded:
		res := TracksAddedResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		e.onTracksAdded(res)

	case MessageTypeTracksRemoved:
		res := TracksRemovedResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		e.onTracksRemoved(res)

	case MessageTypeTrackUpdated:
		res := TrackUpdatedResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		track := rtc.NewRemoteTrack(res.TrackID, trackKind(res.Metadata), res.PeerID, res.Metadata)
		e.lock.Lock()
		e.remoteTracks[res.TrackID] = track
		e.lock.Unlock()
		e.deliver(rtc.TrackUpdatedEvent{Ctx: trackContext(track)})

	case MessageTypeError:
		res := ErrorResponse{}
		if err := msg.Decode(&res); err != nil {
			return err
		}
		e.deliver(rtc.ErrorEvent{Kind: rtc.ErrorKindRTC, Err: errors.New(res.Message)})

	default:
		e.logger.Debugw("unsupported message", "type", msg.Type)
	}
	return nil
}

func (e *Engine) onJoined(res JoinedResponse) {
	e.lock.Lock()
	e.localPeer.ID = res.PeerID
	e.joined = true
	pending := make([]types.LocalTrack, 0, e.localTracks.Len())
	for el := e.localTracks.Front(); el != nil; el = el.Next() {
		pending = append(pending, el.Value)
	}
	e.lock.Unlock()

	e.logger.Infow("joined room", "peerID", res.PeerID, "numPeers", len(res.Peers))
	e.deliver(rtc.JoinSuccessEvent{PeerID: res.PeerID, Peers: ToPeers(res.Peers)})

	for _, track := range pending {
		e.announce(track)
	}
}

func (e *Engine) onTracksAdded(res TracksAddedResponse) {
	trackIDs := make([]livekit.TrackID, 0, len(res.TrackIDToMetadata))
	for trackID := range res.TrackIDToMetadata {
		trackIDs = append(trackIDs, trackID)
	}
	sort.Slice(trackIDs, func(i, j int) bool { return trackIDs[i] < trackIDs[j] })

	for _, trackID := range trackIDs {
		md := res.TrackIDToMetadata[trackID]
		track := rtc.NewRemoteTrack(trackID, trackKind(md), res.PeerID, md)
		e.lock.Lock()
		e.remoteTracks[trackID] = track
		e.lock.Unlock()

		e.deliver(rtc.TrackAddedEvent{Ctx: trackContext(track)})
		e.deliver(rtc.TrackReadyEvent{Ctx: trackContext(track)})
	}
}

func (e *Engine) onTracksRemoved(res TracksRemovedResponse) {
	for _, trackID := range res.TrackIDs {
		e.lock.Lock()
		track, ok := e.remoteTracks[trackID]
		delete(e.remoteTracks, trackID)
		e.lock.Unlock()

		ctx := types.TrackContext{TrackID: trackID, Kind: livekit.TrackType_VIDEO, PeerID: res.PeerID}
		if ok {
			ctx = trackContext(track)
		}
		e.deliver(rtc.TrackRemovedEvent{Ctx: ctx})
	}
}

func trackKind(metadata map[string]string) livekit.TrackType {
	if metadata[types.MetadataKeyType] == types.TrackTypeAudio {
		return livekit.TrackType_AUDIO
	}
	return livekit.TrackType_VIDEO
}

func trackContext(track *rtc.RemoteTrack) types.TrackContext {
	return types.TrackContext{
		TrackID:  track.ID(),
		Kind:     track.Kind(),
		PeerID:   track.PeerID(),
		Metadata: track.Metadata(),
		Track:    track,
	}
}

func copyMetadata(md map[string]string) map[string]string {
	if md == nil {
		return nil
	}
	out := make(map[string]string, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}

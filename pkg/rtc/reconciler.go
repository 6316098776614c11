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

package rtc

import (
	"errors"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/telemetry/prometheus"
)

type ReconcilerParams struct {
	Logger logger.Logger
	// SweepTracksOnPeerLeft removes the videos of a departed peer right away
	// instead of waiting for their track removed events
	SweepTracksOnPeerLeft bool
}

// Reconciler applies room events to the room state. It holds no state of its
// own, the caller serializes calls to Handle.
type Reconciler struct {
	params ReconcilerParams
}

func NewReconciler(params ReconcilerParams) *Reconciler {
	return &Reconciler{
		params: params,
	}
}

// Handle applies a single event. The only error returned is fatal to the session.
func (r *Reconciler) Handle(state *roomState, ev Event) error {
	prometheus.RecordEvent(string(ev.Type()))

	switch e := ev.(type) {
	case ConnectedEvent:
		state.connected = true

	case JoinSuccessEvent:
		return r.onJoinSuccess(state, e)

	case JoinErrorEvent:
		r.params.Logger.Warnw("failed to join room", nil, "metadata", e.Metadata)
		state.errorMessage = JoinErrorMessage

	case TrackReadyEvent:
		r.onTrackReady(state, e.Ctx)

	case TrackRemovedEvent:
		if !state.videos.Remove(e.Ctx.TrackID) {
			r.params.Logger.Debugw("ignoring removal of unknown track", "trackID", e.Ctx.TrackID)
		}

	case PeerJoinedEvent:
		state.registry.Add(e.Peer)

	case PeerLeftEvent:
		if !state.registry.Remove(e.Peer.ID) {
			r.params.Logger.Debugw("ignoring unknown peer leaving", "peerID", e.Peer.ID)
		}
		if r.params.SweepTracksOnPeerLeft {
			if removed := state.videos.RemoveByPeer(e.Peer.ID); len(removed) != 0 {
				r.params.Logger.Debugw("removed videos of departed peer", "peerID", e.Peer.ID, "trackIDs", removed)
			}
		}

	case PeerUpdatedEvent:
		if !state.registry.Update(e.Peer) {
			r.params.Logger.Debugw("ignoring update of unknown peer", "peerID", e.Peer.ID)
		}

	case TrackAddedEvent, TrackUpdatedEvent:
		// observers only

	case ConnectionErrorEvent:
		r.params.Logger.Warnw("connection error", nil, "message", e.Message)
		state.errorMessage = e.Message
		state.connected = false

	case ErrorEvent:
		r.params.Logger.Warnw("room error", e.Err, "kind", e.Kind)
		if e.Err != nil {
			state.errorMessage = e.Err.Error()
		} else {
			state.errorMessage = e.Kind.String() + " error"
		}
		if e.Kind == ErrorKindTransport {
			state.connected = false
		}
	}
	return nil
}

func (r *Reconciler) onJoinSuccess(state *roomState, e JoinSuccessEvent) error {
	if state.localVideo == nil {
		return ErrMissingLocalVideo
	}

	screenShares := localScreenShares(state.videos, state.localPeerID)

	state.localPeerID = e.PeerID
	state.registry.Clear()
	state.registry.Add(types.Peer{
		ID:       e.PeerID,
		Metadata: map[string]string{types.MetadataKeyDisplayName: LocalPeerName},
	})
	for _, p := range e.Peers {
		if p.ID == e.PeerID {
			continue
		}
		state.registry.Add(p)
	}

	mirror := false
	if camera, ok := state.localVideo.Camera(); ok {
		mirror = camera.Position() == types.CameraPositionFront
	}
	state.videos.SetLocalPeerID(e.PeerID)
	state.videos.Reset(&ParticipantVideo{
		ID:     state.localVideo.ID(),
		PeerID: e.PeerID,
		Track:  state.localVideo,
		Mirror: mirror,
	})
	// a screen share started before the join stays on screen
	for _, v := range screenShares {
		v = v.clone()
		v.PeerID = e.PeerID
		if err := state.videos.Add(v); err != nil {
			r.params.Logger.Warnw("could not keep screen share", err, "trackID", v.ID)
			continue
		}
		state.videos.Focus(v)
	}
	state.errorMessage = ""

	r.params.Logger.Infow("joined room", "peerID", e.PeerID, "peers", len(e.Peers))
	return nil
}

func (r *Reconciler) onTrackReady(state *roomState, ctx types.TrackContext) {
	if ctx.Kind != livekit.TrackType_VIDEO {
		return
	}
	if _, ok := state.registry.Get(ctx.PeerID); !ok {
		r.params.Logger.Debugw("ignoring track of unknown peer", "peerID", ctx.PeerID, "trackID", ctx.TrackID)
		return
	}

	track := ctx.Track
	if track == nil {
		track = NewRemoteTrack(ctx.TrackID, ctx.Kind, ctx.PeerID, ctx.Metadata)
	}

	if _, ok := state.videos.FindByID(ctx.TrackID); ok {
		state.videos.Replace(ctx.TrackID, track)
		return
	}

	video := &ParticipantVideo{
		ID:              ctx.TrackID,
		PeerID:          ctx.PeerID,
		Track:           track,
		IsScreenSharing: ctx.IsScreenSharing(),
	}
	if err := state.videos.Add(video); err != nil {
		if errors.Is(err, ErrDuplicateVideo) {
			prometheus.RecordDuplicateVideo()
		}
		r.params.Logger.Warnw("could not add video", err, "trackID", ctx.TrackID)
		return
	}
	if video.IsScreenSharing {
		state.videos.Focus(video)
	}
}

func localScreenShares(videos *FocusList, localPeerID livekit.ParticipantID) []*ParticipantVideo {
	var shares []*ParticipantVideo
	all := videos.Sequence()
	if primary := videos.Primary(); primary != nil {
		all = append([]*ParticipantVideo{primary}, all...)
	}
	for _, v := range all {
		if v.IsScreenSharing && v.PeerID == localPeerID {
			shares = append(shares, v)
		}
	}
	return shares
}

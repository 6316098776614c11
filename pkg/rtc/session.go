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
	"context"
	"time"

	"github.com/frostbyte73/core"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/telemetry/prometheus"
	"github.com/livekit/roomview/pkg/utils"
)

var _ EventSink = (*Session)(nil)

// StateChange is delivered to observers after every processed event or local action
type StateChange struct {
	// Event is nil for local actions
	Event Event
	// Action names the local action, empty for events
	Action string
	State  *RoomViewState
}

type SessionParams struct {
	Logger      logger.Logger
	Engine      types.MediaEngine
	DisplayName string

	Video             types.VideoParameters
	Screencast        types.VideoParameters
	MirrorUpdateDelay time.Duration

	SweepTracksOnPeerLeft bool
	// OnFatal is called once if the session terminates itself
	OnFatal func(err error)
}

// Session joins a room through a media engine and keeps the room view
// consistent. Events and local actions are serialized on one ops queue.
type Session struct {
	params     SessionParams
	logger     logger.Logger
	opsQueue   *utils.OpsQueue
	notifier   *utils.ChangeNotifier[StateChange]
	reconciler *Reconciler
	controller *LocalTrackController

	// only accessed on the ops queue
	state *roomState

	snapshot atomic.Pointer[RoomViewState]
	joined   atomic.Bool
	closing  atomic.Bool
	fatalErr atomic.Error
	closed   core.Fuse
}

func NewSession(params SessionParams) (*Session, error) {
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	l := params.Logger.WithValues("displayName", params.DisplayName)

	audio, err := params.Engine.CreateAudioTrack(TrackMetadata(params.DisplayName, types.TrackTypeAudio))
	if err != nil {
		return nil, errors.Wrap(err, "could not create local audio track")
	}

	// a session without local video can exist, it fails when the room is joined
	video, err := params.Engine.CreateVideoTrack(params.Video, TrackMetadata(params.DisplayName, types.TrackTypeCamera))
	if err != nil {
		l.Warnw("could not create local video track", err)
		video = nil
	}

	s := &Session{
		params:   params,
		logger:   l,
		opsQueue: utils.NewOpsQueue(l, "session"),
		notifier: utils.NewChangeNotifier[StateChange](),
		reconciler: NewReconciler(ReconcilerParams{
			Logger:                l,
			SweepTracksOnPeerLeft: params.SweepTracksOnPeerLeft,
		}),
	}
	s.controller = NewLocalTrackController(LocalTrackControllerParams{
		Logger:            l,
		Engine:            params.Engine,
		DisplayName:       params.DisplayName,
		Audio:             audio,
		Video:             video,
		Screencast:        params.Screencast,
		MirrorUpdateDelay: params.MirrorUpdateDelay,
	}, s)

	s.state = newRoomState(video)
	if audio != nil {
		s.state.localAudioEnabled = audio.Enabled()
	}
	if video != nil {
		s.state.localVideoEnabled = video.Enabled()
	}
	s.snapshot.Store(s.state.snapshot())

	s.opsQueue.Start()
	return s, nil
}

func (s *Session) Logger() logger.Logger {
	return s.logger
}

func (s *Session) Controller() *LocalTrackController {
	return s.controller
}

// Join starts the local tracks and asks the engine to join. The outcome
// arrives later as a join success or join error event.
func (s *Session) Join(ctx context.Context) error {
	if s.closed.IsBroken() {
		return ErrSessionClosed
	}
	if s.joined.Swap(true) {
		return ErrAlreadyJoined
	}

	if audio := s.controller.Audio(); audio != nil {
		if err := audio.Start(); err != nil {
			s.logger.Warnw("could not start local audio", err)
		}
	}
	if video := s.controller.Video(); video != nil {
		if err := video.Start(); err != nil {
			s.logger.Warnw("could not start local video", err)
		}
	}

	if err := s.params.Engine.Join(ctx, map[string]string{types.MetadataKeyDisplayName: s.params.DisplayName}); err != nil {
		// allow another attempt
		s.controller.Stop()
		s.joined.Store(false)
		return errors.Wrap(err, "could not join room")
	}
	return nil
}

// Deliver queues an inbound room event, events after Disconnect are dropped
func (s *Session) Deliver(ev Event) {
	s.opsQueue.Enqueue(func() {
		if s.state.closed {
			return
		}
		if err := s.reconciler.Handle(s.state, ev); err != nil {
			s.terminate(err)
		}
		s.publish(ev, "")
	})
}

// Update implements stateUpdater for local actions
func (s *Session) Update(action string, fn func(state *roomState) bool) {
	s.opsQueue.Enqueue(func() {
		if s.state.closed {
			return
		}
		if fn(s.state) {
			s.publish(nil, action)
		}
	})
}

func (s *Session) Snapshot() *RoomViewState {
	return s.snapshot.Load()
}

func (s *Session) OnStateChanged(key string, fn func(change StateChange)) {
	s.notifier.AddObserver(key, fn)
}

func (s *Session) RemoveObserver(key string) {
	s.notifier.RemoveObserver(key)
}

func (s *Session) ToggleLocalTrack(kind LocalTrackKind) error {
	return s.controller.ToggleLocalTrack(kind)
}

func (s *Session) EnableTrack(kind LocalTrackKind, enabled bool) error {
	return s.controller.EnableTrack(kind, enabled)
}

func (s *Session) SwitchCamera() error {
	return s.controller.SwitchCamera()
}

// Focus makes a known video the primary one
func (s *Session) Focus(id livekit.TrackID) {
	s.Update("focus", func(state *roomState) bool {
		video, ok := state.videos.FindByID(id)
		if !ok {
			return false
		}
		return state.videos.Focus(video)
	})
}

// Disconnect stops accepting events, stops the local tracks and clears the
// room view. It does not wait for the queue to drain, see Done.
func (s *Session) Disconnect() {
	if s.closing.Swap(true) {
		return
	}
	s.logger.Infow("disconnecting session")

	s.opsQueue.Enqueue(func() {
		if s.state.closed {
			return
		}
		s.state.clear()
		s.state.closed = true
		s.publish(nil, "disconnect")
	})
	s.shutdown()
}

// Done is closed once the session has stopped and observers have been notified
func (s *Session) Done() <-chan struct{} {
	return s.closed.Watch()
}

// Err returns the error that terminated the session, if any
func (s *Session) Err() error {
	return s.fatalErr.Load()
}

func (s *Session) terminate(err error) {
	s.logger.Errorw("terminating session", err)
	s.fatalErr.Store(err)
	s.state.closed = true
	s.state.errorMessage = err.Error()

	if s.params.OnFatal != nil {
		go s.params.OnFatal(err)
	}
	if !s.closing.Swap(true) {
		go s.shutdown()
	}
}

func (s *Session) shutdown() {
	s.opsQueue.Stop()
	s.controller.Stop()

	go func() {
		<-s.opsQueue.Done()
		s.notifier.Stop()
		s.closed.Break()
	}()
}

func (s *Session) publish(ev Event, action string) {
	snapshot := s.state.snapshot()
	s.snapshot.Store(snapshot)
	prometheus.SetRoomView(len(snapshot.Peers), len(snapshot.Videos)+boolToInt(snapshot.Primary != nil), snapshot.ScreenShareEnabled)

	s.notifier.NotifyChanged(StateChange{
		Event:  ev,
		Action: action,
		State:  snapshot,
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

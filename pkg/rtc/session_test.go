package rtc

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/rtc/types/typesfakes"
	"github.com/livekit/roomview/pkg/testutils"
)

type changeRecorder struct {
	lock    sync.Mutex
	changes []StateChange
}

func (r *changeRecorder) record(change StateChange) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.changes = append(r.changes, change)
}

func (r *changeRecorder) get() []StateChange {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]StateChange(nil), r.changes...)
}

func newTestEngine() (*typesfakes.FakeMediaEngine, *typesfakes.FakeLocalTrack, *typesfakes.FakeLocalVideoTrack) {
	audio := &typesfakes.FakeLocalTrack{}
	audio.IDReturns("TR_audio")
	audio.EnabledReturns(true)
	video := newFakeLocalVideo()
	video.EnabledReturns(true)

	engine := &typesfakes.FakeMediaEngine{}
	engine.CreateAudioTrackReturns(audio, nil)
	engine.CreateVideoTrackReturns(video, nil)
	return engine, audio, video
}

func newTestSession(t *testing.T, engine types.MediaEngine, onFatal func(error)) (*Session, *changeRecorder) {
	t.Helper()

	s, err := NewSession(SessionParams{
		Logger:      logger.GetLogger(),
		Engine:      engine,
		DisplayName: "alice",
		Video:       types.VideoParameters{Width: 640, Height: 480, FPS: 30},
		OnFatal:     onFatal,
	})
	require.NoError(t, err)

	recorder := &changeRecorder{}
	s.OnStateChanged("test", recorder.record)
	t.Cleanup(s.Disconnect)
	return s, recorder
}

func TestSessionJoin(t *testing.T) {
	t.Run("join success is reconciled and observed", func(t *testing.T) {
		engine, audio, video := newTestEngine()
		s, recorder := newTestSession(t, engine, nil)

		_, md := engine.CreateVideoTrackArgsForCall(0)
		require.Equal(t, "alice", md[types.MetadataKeyUserID])
		require.Equal(t, types.TrackTypeCamera, md[types.MetadataKeyType])
		md = engine.CreateAudioTrackArgsForCall(0)
		require.Equal(t, types.TrackTypeAudio, md[types.MetadataKeyType])

		require.True(t, s.Snapshot().LocalAudioEnabled)
		require.True(t, s.Snapshot().LocalVideoEnabled)

		require.NoError(t, s.Join(context.Background()))
		require.ErrorIs(t, s.Join(context.Background()), ErrAlreadyJoined)
		require.Equal(t, 1, engine.JoinCallCount())
		_, joinMD := engine.JoinArgsForCall(0)
		require.Equal(t, "alice", joinMD[types.MetadataKeyDisplayName])
		require.Equal(t, 1, audio.StartCallCount())
		require.Equal(t, 1, video.StartCallCount())

		s.Deliver(ConnectedEvent{})
		s.Deliver(JoinSuccessEvent{PeerID: localPeer, Peers: []types.Peer{remotePeer("PA_b", "bob")}})

		testutils.WithTimeout(t, func() string {
			if len(recorder.get()) != 2 {
				return fmt.Sprintf("expected 2 changes, got %d", len(recorder.get()))
			}
			return ""
		})
		changes := recorder.get()
		require.Equal(t, EventTypeConnected, changes[0].Event.Type())
		require.Equal(t, EventTypeJoinSuccess, changes[1].Event.Type())

		snapshot := s.Snapshot()
		require.Equal(t, snapshot, changes[1].State)
		require.True(t, snapshot.Connected)
		require.Equal(t, localVideoID, snapshot.Primary.ID)
		require.Len(t, snapshot.Peers, 2)
	})

	t.Run("missing local video terminates session", func(t *testing.T) {
		engine, audio, _ := newTestEngine()
		engine.CreateVideoTrackReturns(nil, errors.New("no camera"))

		fatal := make(chan error, 1)
		s, _ := newTestSession(t, engine, func(err error) { fatal <- err })
		require.NoError(t, s.Join(context.Background()))

		s.Deliver(JoinSuccessEvent{PeerID: localPeer})
		testutils.WaitClosed(t, s.Done(), "session")

		require.ErrorIs(t, s.Err(), ErrMissingLocalVideo)
		require.ErrorIs(t, <-fatal, ErrMissingLocalVideo)
		snapshot := s.Snapshot()
		require.True(t, snapshot.Closed)
		require.Equal(t, ErrMissingLocalVideo.Error(), snapshot.ErrorMessage)
		require.Nil(t, snapshot.Primary)
		require.Equal(t, 1, audio.StopCallCount())

		// nothing is processed after termination
		s.Deliver(PeerJoinedEvent{Peer: remotePeer("PA_b", "bob")})
		require.Empty(t, s.Snapshot().Peers)
		require.ErrorIs(t, s.Join(context.Background()), ErrSessionClosed)
	})

	t.Run("join failure is returned", func(t *testing.T) {
		engine, _, _ := newTestEngine()
		engine.JoinReturns(errors.New("dial failed"))
		s, _ := newTestSession(t, engine, nil)

		require.Error(t, s.Join(context.Background()))
	})

	t.Run("join can be retried after a failure", func(t *testing.T) {
		engine, audio, video := newTestEngine()
		engine.JoinReturnsOnCall(0, errors.New("dial failed"))
		s, _ := newTestSession(t, engine, nil)

		require.Error(t, s.Join(context.Background()))
		require.Equal(t, 1, audio.StopCallCount())
		require.Equal(t, 1, video.StopCallCount())

		require.NoError(t, s.Join(context.Background()))
		require.Equal(t, 2, engine.JoinCallCount())
		require.Equal(t, 2, audio.StartCallCount())
		require.Equal(t, 2, video.StartCallCount())
		require.ErrorIs(t, s.Join(context.Background()), ErrAlreadyJoined)
	})

	t.Run("audio creation failure fails construction", func(t *testing.T) {
		engine, _, _ := newTestEngine()
		engine.CreateAudioTrackReturns(nil, errors.New("no microphone"))

		_, err := NewSession(SessionParams{Engine: engine, Logger: logger.GetLogger()})
		require.Error(t, err)
	})
}

func TestSessionObservers(t *testing.T) {
	engine, _, _ := newTestEngine()
	s, recorder := newTestSession(t, engine, nil)
	require.NoError(t, s.Join(context.Background()))
	s.Deliver(JoinSuccessEvent{PeerID: localPeer})

	const numPeers = 100
	for i := 0; i < numPeers; i++ {
		s.Deliver(PeerJoinedEvent{Peer: remotePeer(fmt.Sprintf("PA_%d", i), fmt.Sprintf("peer %d", i))})
	}

	testutils.WithTimeout(t, func() string {
		if n := len(recorder.get()); n != numPeers+1 {
			return fmt.Sprintf("expected %d changes, got %d", numPeers+1, n)
		}
		return ""
	})

	changes := recorder.get()
	for i, change := range changes[1:] {
		ev, ok := change.Event.(PeerJoinedEvent)
		require.True(t, ok)
		require.Equal(t, livekit.ParticipantID(fmt.Sprintf("PA_%d", i)), ev.Peer.ID)
		// each notification carries the state right after its event
		require.Len(t, change.State.Peers, i+2)
	}

	s.RemoveObserver("test")
	s.Deliver(ConnectedEvent{})
	testutils.WithTimeout(t, func() string {
		if !s.Snapshot().Connected {
			return "not connected"
		}
		return ""
	})
	require.Len(t, recorder.get(), numPeers+1)
}

func TestSessionLocalActions(t *testing.T) {
	engine, _, _ := newTestEngine()
	s, recorder := newTestSession(t, engine, nil)
	require.NoError(t, s.Join(context.Background()))
	s.Deliver(JoinSuccessEvent{PeerID: localPeer, Peers: []types.Peer{remotePeer("PA_b", "bob"), remotePeer("PA_c", "carol")}})
	s.Deliver(TrackReadyEvent{Ctx: trackCtx("TR_b", "PA_b", nil)})
	s.Deliver(TrackReadyEvent{Ctx: trackCtx("TR_c", "PA_c", nil)})

	s.Focus("TR_c")
	s.Focus("TR_unknown")

	// the unknown focus produces no change, so the connected event is next
	s.Deliver(ConnectedEvent{})

	testutils.WithTimeout(t, func() string {
		changes := recorder.get()
		if len(changes) == 0 || changes[len(changes)-1].Event == nil || changes[len(changes)-1].Event.Type() != EventTypeConnected {
			return "connected change not observed"
		}
		return ""
	})

	var focused []StateChange
	for _, change := range recorder.get() {
		if change.Action == "focus" {
			require.Nil(t, change.Event)
			focused = append(focused, change)
		}
	}
	require.Len(t, focused, 1)
	require.Equal(t, livekit.TrackID("TR_c"), focused[0].State.Primary.ID)
	require.Equal(t, []livekit.TrackID{localVideoID, "TR_b"}, videoIDs(focused[0].State.Videos))
}

func TestSessionDisconnect(t *testing.T) {
	engine, audio, video := newTestEngine()
	s, recorder := newTestSession(t, engine, nil)
	require.NoError(t, s.Join(context.Background()))
	s.Deliver(JoinSuccessEvent{PeerID: localPeer, Peers: []types.Peer{remotePeer("PA_b", "bob")}})

	s.Disconnect()
	s.Disconnect()
	testutils.WaitClosed(t, s.Done(), "session")

	snapshot := s.Snapshot()
	require.True(t, snapshot.Closed)
	require.Empty(t, snapshot.Peers)
	require.Nil(t, snapshot.Primary)
	require.Empty(t, snapshot.Videos)
	require.Equal(t, 1, audio.StopCallCount())
	require.Equal(t, 1, video.StopCallCount())
	require.NoError(t, s.Err())

	changes := recorder.get()
	require.Equal(t, "disconnect", changes[len(changes)-1].Action)

	s.Deliver(PeerJoinedEvent{Peer: remotePeer("PA_c", "carol")})
	require.Empty(t, s.Snapshot().Peers)
}

func TestSessionConcurrentEnable(t *testing.T) {
	newSession := func(t *testing.T) (*Session, *typesfakes.FakeNativeTrack) {
		engine, audio, _ := newTestEngine()
		native := newStatefulNativeTrack(true)
		setEnabled := native.SetEnabledStub
		native.SetEnabledStub = func(enabled bool) {
			setEnabled(enabled)
			runtime.Gosched()
		}
		audio.NativeTrackReturns(native)
		audio.EnabledCalls(native.IsEnabled)

		s, _ := newTestSession(t, engine, nil)
		return s, native
	}

	// every action queued before the connected event has been applied once it is observed
	drain := func(t *testing.T, s *Session) {
		s.Deliver(ConnectedEvent{})
		testutils.WithTimeout(t, func() string {
			if !s.Snapshot().Connected {
				return "queue not drained"
			}
			return ""
		})
	}

	t.Run("observed flag matches the native track", func(t *testing.T) {
		for trial := 0; trial < 20; trial++ {
			s, native := newSession(t)

			var wg sync.WaitGroup
			for i := 0; i < 4; i++ {
				wg.Add(1)
				go func(on bool) {
					defer wg.Done()
					for j := 0; j < 10; j++ {
						require.NoError(t, s.EnableTrack(LocalTrackKindAudio, on))
					}
				}(i%2 == 0)
			}
			wg.Wait()
			drain(t, s)

			require.Equal(t, native.IsEnabled(), s.Snapshot().LocalAudioEnabled, "trial %d", trial)
		}
	})

	t.Run("toggles are applied one at a time", func(t *testing.T) {
		s, native := newSession(t)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					require.NoError(t, s.ToggleLocalTrack(LocalTrackKindAudio))
				}
			}()
		}
		wg.Wait()
		drain(t, s)

		// an even number of toggles ends where it started
		require.True(t, native.IsEnabled())
		require.True(t, s.Snapshot().LocalAudioEnabled)
		require.Equal(t, 100, native.SetEnabledCallCount())
	})
}

package signalling

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/testutils"
)

type eventRecorder struct {
	lock   sync.Mutex
	events []rtc.Event
}

func (r *eventRecorder) Deliver(ev rtc.Event) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.events = append(r.events, ev)
}

func (r *eventRecorder) get() []rtc.Event {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]rtc.Event(nil), r.events...)
}

// waitFor returns the first recorded event accepted by match
func (r *eventRecorder) waitFor(t *testing.T, what string, match func(ev rtc.Event) bool) rtc.Event {
	t.Helper()

	var found rtc.Event
	testutils.WithTimeout(t, func() string {
		for _, ev := range r.get() {
			if match(ev) {
				found = ev
				return ""
			}
		}
		return fmt.Sprintf("no %s event", what)
	})
	return found
}

func (r *eventRecorder) waitForType(t *testing.T, eventType rtc.EventType) rtc.Event {
	t.Helper()

	return r.waitFor(t, string(eventType), func(ev rtc.Event) bool {
		return ev.Type() == eventType
	})
}

func newTestEngine(t *testing.T, url string, params EngineParams) (*Engine, *eventRecorder) {
	t.Helper()

	params.Logger = logger.GetLogger()
	params.URL = url
	if params.Room == "" {
		params.Room = "room"
	}
	e := NewEngine(params)
	recorder := &eventRecorder{}
	e.SetEventSink(recorder)
	t.Cleanup(e.Close)
	return e, recorder
}

func joinEngine(t *testing.T, e *Engine, recorder *eventRecorder, displayName string) livekit.ParticipantID {
	t.Helper()

	require.NoError(t, e.Join(context.Background(), map[string]string{types.MetadataKeyDisplayName: displayName}))
	ev := recorder.waitForType(t, rtc.EventTypeJoinSuccess).(rtc.JoinSuccessEvent)
	require.NotEmpty(t, ev.PeerID)
	return ev.PeerID
}

func cameraMetadata(name string) map[string]string {
	return map[string]string{types.MetadataKeyUserID: name, types.MetadataKeyType: types.TrackTypeCamera}
}

func TestEngineJoin(t *testing.T) {
	_, url := newTestServer(t, 0)

	alice, aliceEvents := newTestEngine(t, url, EngineParams{})
	video, err := alice.CreateVideoTrack(types.VideoParameters{Width: 320, Height: 240, FPS: 30}, cameraMetadata("alice"))
	require.NoError(t, err)
	require.Equal(t, types.VideoSourceCamera, video.Source())

	aliceID := joinEngine(t, alice, aliceEvents, "alice")
	require.Equal(t, rtc.EventTypeConnected, aliceEvents.get()[0].Type())
	require.Equal(t, aliceID, alice.CurrentPeer().ID)
	require.Equal(t, "alice", alice.CurrentPeer().DisplayName())
	require.ErrorIs(t, alice.Join(context.Background(), nil), ErrAlreadyConnected)

	bob, bobEvents := newTestEngine(t, url, EngineParams{})
	joinEngine(t, bob, bobEvents, "bob")

	joined := bobEvents.waitForType(t, rtc.EventTypeJoinSuccess).(rtc.JoinSuccessEvent)
	require.Len(t, joined.Peers, 1)
	require.Equal(t, aliceID, joined.Peers[0].ID)

	// alice's camera announced before bob joined arrives as added then ready
	ready := bobEvents.waitForType(t, rtc.EventTypeTrackReady).(rtc.TrackReadyEvent)
	require.Equal(t, video.ID(), ready.Ctx.TrackID)
	require.Equal(t, livekit.TrackType_VIDEO, ready.Ctx.Kind)
	require.Equal(t, aliceID, ready.Ctx.PeerID)
	remote, ok := ready.Ctx.Track.(*rtc.RemoteTrack)
	require.True(t, ok)
	require.Equal(t, aliceID, remote.PeerID())
	require.Nil(t, remote.NativeTrack())

	added, readyIdx := -1, -1
	for i, ev := range bobEvents.get() {
		switch ev.Type() {
		case rtc.EventTypeTrackAdded:
			added = i
		case rtc.EventTypeTrackReady:
			readyIdx = i
		}
	}
	require.Less(t, added, readyIdx)

	aliceEvents.waitFor(t, "peer joined", func(ev rtc.Event) bool {
		joined, ok := ev.(rtc.PeerJoinedEvent)
		return ok && joined.Peer.DisplayName() == "bob"
	})
}

func TestEngineTracks(t *testing.T) {
	_, url := newTestServer(t, 0)

	alice, aliceEvents := newTestEngine(t, url, EngineParams{})
	aliceID := joinEngine(t, alice, aliceEvents, "alice")
	bob, bobEvents := newTestEngine(t, url, EngineParams{})
	joinEngine(t, bob, bobEvents, "bob")
	aliceEvents.waitForType(t, rtc.EventTypePeerJoined)

	// tracks created after joining are announced right away
	audio, err := alice.CreateAudioTrack(map[string]string{types.MetadataKeyType: types.TrackTypeAudio})
	require.NoError(t, err)
	ready := bobEvents.waitForType(t, rtc.EventTypeTrackReady).(rtc.TrackReadyEvent)
	require.Equal(t, audio.ID(), ready.Ctx.TrackID)
	require.Equal(t, livekit.TrackType_AUDIO, ready.Ctx.Kind)

	require.NoError(t, alice.UpdateTrackMetadata(audio.ID(), map[string]string{types.MetadataKeyType: types.TrackTypeAudio, "muted": "true"}))
	updated := bobEvents.waitForType(t, rtc.EventTypeTrackUpdated).(rtc.TrackUpdatedEvent)
	require.Equal(t, "true", updated.Ctx.Metadata["muted"])

	require.NoError(t, alice.UpdateMetadata(map[string]string{types.MetadataKeyDisplayName: "alicia"}))
	require.Equal(t, "alicia", alice.CurrentPeer().DisplayName())
	bobEvents.waitFor(t, "peer updated", func(ev rtc.Event) bool {
		updated, ok := ev.(rtc.PeerUpdatedEvent)
		return ok && updated.Peer.DisplayName() == "alicia"
	})

	alice.Close()
	removed := bobEvents.waitForType(t, rtc.EventTypeTrackRemoved).(rtc.TrackRemovedEvent)
	require.Equal(t, audio.ID(), removed.Ctx.TrackID)
	require.Equal(t, livekit.TrackType_AUDIO, removed.Ctx.Kind)
	left := bobEvents.waitForType(t, rtc.EventTypePeerLeft).(rtc.PeerLeftEvent)
	require.Equal(t, aliceID, left.Peer.ID)

	// leaving is not reported as an error
	for _, ev := range aliceEvents.get() {
		require.NotEqual(t, rtc.EventTypeConnectionError, ev.Type())
		require.NotEqual(t, rtc.EventTypeError, ev.Type())
	}
	require.ErrorIs(t, alice.Join(context.Background(), nil), ErrEngineClosed)
}

func TestEngineScreencast(t *testing.T) {
	_, url := newTestServer(t, 0)

	t.Run("broadcast lifecycle", func(t *testing.T) {
		alice, aliceEvents := newTestEngine(t, url, EngineParams{
			Room: "screencast",
			NewBroadcast: func() types.BroadcastSource {
				return rtc.NewSyntheticBroadcast(logger.GetLogger(), 200*time.Millisecond)
			},
		})
		joinEngine(t, alice, aliceEvents, "alice")
		bob, bobEvents := newTestEngine(t, url, EngineParams{Room: "screencast"})
		joinEngine(t, bob, bobEvents, "bob")
		aliceEvents.waitForType(t, rtc.EventTypePeerJoined)

		started := make(chan types.LocalTrack, 1)
		var stopped atomic.Bool
		md := map[string]string{types.MetadataKeyType: types.TrackTypeScreensharing}
		require.NoError(t, alice.CreateScreencastTrack(types.VideoParameters{FPS: 30}, md,
			func(track types.LocalTrack) { started <- track },
			func() { stopped.Store(true) },
		))

		var track types.LocalTrack
		select {
		case track = <-started:
		case <-time.After(testutils.ConnectTimeout):
			t.Fatal("broadcast did not start")
		}

		ready := bobEvents.waitForType(t, rtc.EventTypeTrackReady).(rtc.TrackReadyEvent)
		require.Equal(t, track.ID(), ready.Ctx.TrackID)
		require.True(t, ready.Ctx.IsScreenSharing())

		// the broadcast ends on its own
		removed := bobEvents.waitForType(t, rtc.EventTypeTrackRemoved).(rtc.TrackRemovedEvent)
		require.Equal(t, track.ID(), removed.Ctx.TrackID)
		testutils.WithTimeout(t, func() string {
			if !stopped.Load() {
				return "stop callback not called"
			}
			return ""
		})
	})

	t.Run("unavailable without a broadcast source", func(t *testing.T) {
		e, _ := newTestEngine(t, url, EngineParams{})
		err := e.CreateScreencastTrack(types.VideoParameters{}, nil, func(types.LocalTrack) {}, func() {})
		require.ErrorIs(t, err, ErrBroadcastUnavailable)
	})
}

func TestEngineConnectionErrors(t *testing.T) {
	t.Run("server going away", func(t *testing.T) {
		s, url := newTestServer(t, 0)
		e, events := newTestEngine(t, url, EngineParams{})
		joinEngine(t, e, events, "alice")

		s.Close()
		events.waitFor(t, "connection error", func(ev rtc.Event) bool {
			if ev.Type() == rtc.EventTypeConnectionError {
				return true
			}
			errEv, ok := ev.(rtc.ErrorEvent)
			return ok && errEv.Kind == rtc.ErrorKindTransport
		})
	})

	t.Run("dial failure", func(t *testing.T) {
		e, _ := newTestEngine(t, "ws://127.0.0.1:1", EngineParams{})
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.Error(t, e.Join(ctx, nil))
	})

	t.Run("full room", func(t *testing.T) {
		_, url := newTestServer(t, 1)
		alice, aliceEvents := newTestEngine(t, url, EngineParams{})
		joinEngine(t, alice, aliceEvents, "alice")

		bob, bobEvents := newTestEngine(t, url, EngineParams{})
		require.NoError(t, bob.Join(context.Background(), nil))
		ev := bobEvents.waitForType(t, rtc.EventTypeJoinError).(rtc.JoinErrorEvent)
		require.Equal(t, joinErrorRoomFull, ev.Metadata[joinErrorReasonKey])
	})

	t.Run("not connected", func(t *testing.T) {
		e, _ := newTestEngine(t, "ws://127.0.0.1:1", EngineParams{})
		require.ErrorIs(t, e.UpdateMetadata(nil), ErrNotConnected)
	})
}

package signalling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/testutils"
)

func newTestSession(t *testing.T, url string, displayName string, sweep bool) (*rtc.Session, *Engine) {
	t.Helper()

	engine := NewEngine(EngineParams{
		Logger: logger.GetLogger(),
		URL:    url,
		Room:   "integration",
		NewBroadcast: func() types.BroadcastSource {
			return rtc.NewSyntheticBroadcast(logger.GetLogger(), time.Minute)
		},
	})
	session, err := rtc.NewSession(rtc.SessionParams{
		Logger:                logger.GetLogger(),
		Engine:                engine,
		DisplayName:           displayName,
		Video:                 types.VideoParameters{Width: 320, Height: 240, FPS: 15},
		Screencast:            types.VideoParameters{Width: 640, Height: 480, FPS: 5},
		MirrorUpdateDelay:     10 * time.Millisecond,
		SweepTracksOnPeerLeft: sweep,
	})
	require.NoError(t, err)
	engine.SetEventSink(session)
	t.Cleanup(func() {
		session.Disconnect()
		engine.Close()
	})

	require.NoError(t, session.Join(context.Background()))
	return session, engine
}

func waitForState(t *testing.T, s *rtc.Session, what string, check func(state *rtc.RoomViewState) bool) {
	t.Helper()

	testutils.WithTimeout(t, func() string {
		if !check(s.Snapshot()) {
			return what
		}
		return ""
	})
}

func TestSessionsOverSignalling(t *testing.T) {
	_, url := newTestServer(t, 0)

	alice, _ := newTestSession(t, url, "alice", true)
	waitForState(t, alice, "alice joined", func(state *rtc.RoomViewState) bool {
		return state.Connected && state.Primary != nil
	})
	aliceVideo := alice.Controller().Video().ID()

	bob, bobEngine := newTestSession(t, url, "bob", true)
	bobVideo := bob.Controller().Video().ID()

	// a remote camera displaces the local primary
	waitForState(t, bob, "alice's camera focused", func(state *rtc.RoomViewState) bool {
		return state.Primary != nil && state.Primary.ID == aliceVideo
	})
	bobState := bob.Snapshot()
	require.Len(t, bobState.Peers, 2)
	require.Equal(t, rtc.LocalPeerName, bobState.Peers[0].DisplayName())
	require.Equal(t, "alice", bobState.Peers[1].DisplayName())
	require.Len(t, bobState.Videos, 1)
	require.Equal(t, bobVideo, bobState.Videos[0].ID)

	waitForState(t, alice, "bob's camera focused", func(state *rtc.RoomViewState) bool {
		return state.Primary != nil && state.Primary.ID == bobVideo
	})

	// bob shares his screen, it takes the primary slot on both sides
	require.NoError(t, bob.ToggleLocalTrack(rtc.LocalTrackKindScreenShare))
	waitForState(t, bob, "local screen share", func(state *rtc.RoomViewState) bool {
		return state.ScreenShareEnabled && state.Primary != nil && state.Primary.IsScreenSharing
	})
	waitForState(t, alice, "remote screen share", func(state *rtc.RoomViewState) bool {
		return state.Primary != nil && state.Primary.IsScreenSharing
	})

	// bob leaves, his videos are swept from alice's view
	bob.Disconnect()
	bobEngine.Close()
	waitForState(t, alice, "bob left", func(state *rtc.RoomViewState) bool {
		return len(state.Peers) == 1
	})
	waitForState(t, alice, "bob's videos removed", func(state *rtc.RoomViewState) bool {
		if state.Primary == nil || state.Primary.ID != aliceVideo {
			return false
		}
		return len(state.Videos) == 0
	})
	_, ok := alice.Snapshot().FindVideo(bobVideo)
	require.False(t, ok)
}

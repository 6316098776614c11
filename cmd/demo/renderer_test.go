package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/rtc/types/typesfakes"
)

func testRoomState() *rtc.RoomViewState {
	localTrack := &typesfakes.FakeTrack{}
	localTrack.NativeTrackReturns(nil)

	return &rtc.RoomViewState{
		LocalPeerID: "PA_local",
		Peers: []types.Peer{
			{ID: "PA_local"},
			{
				ID:       "PA_remote",
				Metadata: map[string]string{types.MetadataKeyDisplayName: "alice"},
				TrackIDToMetadata: map[livekit.TrackID]map[string]string{
					"TR_cam":    {types.MetadataKeyType: types.TrackTypeCamera},
					"TR_screen": {types.MetadataKeyType: types.TrackTypeScreensharing},
				},
			},
		},
		Primary: &rtc.ParticipantVideo{ID: "TR_screen", PeerID: "PA_remote", IsScreenSharing: true},
		Videos: []*rtc.ParticipantVideo{
			{ID: "TR_cam", PeerID: "PA_remote"},
			{ID: "TR_local", PeerID: "PA_local", Track: localTrack, Mirror: true},
			{ID: "TR_gone", PeerID: "PA_gone"},
		},
		LocalAudioEnabled: true,
		Connected:         true,
	}
}

func TestRenderer(t *testing.T) {
	t.Run("room view", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRenderer(out)
		r.Render(rtc.StateChange{Event: rtc.ConnectedEvent{}, State: testRoomState()})

		output := out.String()
		require.Contains(t, output, "[connected] connected")
		require.Contains(t, output, "audio on | video off | screen off | 2 peers, 1 screen share")
		require.Contains(t, output, "2 (camera, screensharing)")
		require.Contains(t, output, "1*")
		require.Contains(t, output, rtc.LocalPeerName)
		// videos of departed peers fall back to the peer id
		require.Contains(t, output, "PA_gone")

		lines := strings.Split(output, "\n")
		var primaryLine string
		for _, line := range lines {
			if strings.Contains(line, "TR_screen") && strings.Contains(line, "1*") {
				primaryLine = line
			}
		}
		require.NotEmpty(t, primaryLine)
		require.Contains(t, primaryLine, "alice")
		require.Contains(t, primaryLine, types.TrackTypeScreensharing)
	})

	t.Run("error and closed", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRenderer(out)
		r.Render(rtc.StateChange{Action: "disconnect", State: &rtc.RoomViewState{
			Closed:       true,
			ErrorMessage: rtc.JoinErrorMessage,
		}})

		output := out.String()
		require.Contains(t, output, "[disconnect] closed")
		require.Contains(t, output, "error: "+rtc.JoinErrorMessage)
		require.Contains(t, output, "0 peers, 0 screen shares")
		require.NotContains(t, output, "TRACK")
	})

	t.Run("empty change", func(t *testing.T) {
		out := &bytes.Buffer{}
		NewRenderer(out).Render(rtc.StateChange{Action: "noop"})
		require.Empty(t, out.String())
	})
}

func TestBytesSent(t *testing.T) {
	require.Equal(t, "-", bytesSent(nil))

	remote := &typesfakes.FakeTrack{}
	require.Equal(t, "-", bytesSent(remote))

	native, err := rtc.NewNativeTrack("video/VP8", "TR_local", "ST_local")
	require.NoError(t, err)
	local := &typesfakes.FakeTrack{}
	local.NativeTrackReturns(native)
	require.Equal(t, "0 B", bytesSent(local))
}

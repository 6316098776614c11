package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc"
)

type fakeRoom struct {
	toggled  []rtc.LocalTrackKind
	switches int
	focused  []livekit.TrackID
	state    *rtc.RoomViewState
	err      error
}

func (f *fakeRoom) ToggleLocalTrack(kind rtc.LocalTrackKind) error {
	f.toggled = append(f.toggled, kind)
	return f.err
}

func (f *fakeRoom) SwitchCamera() error {
	f.switches++
	return f.err
}

func (f *fakeRoom) Focus(id livekit.TrackID) {
	f.focused = append(f.focused, id)
}

func (f *fakeRoom) Snapshot() *rtc.RoomViewState {
	return f.state
}

type printed []string

func (p *printed) Printf(format string, args ...interface{}) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func newFakeRoom() *fakeRoom {
	return &fakeRoom{
		state: &rtc.RoomViewState{
			Primary: &rtc.ParticipantVideo{ID: "TR_primary"},
			Videos: []*rtc.ParticipantVideo{
				{ID: "TR_second"},
				{ID: "TR_third"},
			},
		},
	}
}

func TestHandleCommand(t *testing.T) {
	t.Run("local tracks", func(t *testing.T) {
		room := newFakeRoom()
		out := &printed{}
		for _, line := range []string{"a", "video", "  S  ", "c", "switch", ""} {
			require.False(t, handleCommand(room, out, line))
		}
		require.Equal(t, []rtc.LocalTrackKind{
			rtc.LocalTrackKindAudio,
			rtc.LocalTrackKindVideo,
			rtc.LocalTrackKindScreenShare,
		}, room.toggled)
		require.Equal(t, 2, room.switches)
		require.Empty(t, *out)
	})

	t.Run("focus", func(t *testing.T) {
		room := newFakeRoom()
		out := &printed{}
		require.False(t, handleCommand(room, out, "f 3"))
		require.False(t, handleCommand(room, out, "focus TR_second"))
		require.Equal(t, []livekit.TrackID{"TR_third", "TR_second"}, room.focused)
		require.Empty(t, *out)

		for _, line := range []string{"f", "f 0", "f 4", "focus TR_unknown"} {
			require.False(t, handleCommand(room, out, line))
		}
		require.Len(t, *out, 4)
		require.Len(t, room.focused, 2)
	})

	t.Run("failures are printed", func(t *testing.T) {
		room := newFakeRoom()
		room.err = rtc.ErrCameraUnsupported
		out := &printed{}
		require.False(t, handleCommand(room, out, "screen"))
		require.False(t, handleCommand(room, out, "dance"))
		require.Len(t, *out, 2)
		require.Contains(t, (*out)[0], rtc.ErrCameraUnsupported.Error())
		require.Contains(t, (*out)[1], "dance")
	})

	t.Run("quit", func(t *testing.T) {
		room := newFakeRoom()
		out := &printed{}
		require.False(t, handleCommand(room, out, "help"))
		require.Contains(t, (*out)[0], "commands:")
		require.True(t, handleCommand(room, out, "q"))
		require.True(t, handleCommand(room, out, "QUIT"))
	})
}

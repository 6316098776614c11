package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingVideo   = errors.New("focus needs a video number or track id")
	errNoSuchVideo    = errors.New("no such video")
)

const commandUsage = `commands:
  a, audio       toggle the microphone
  v, video       toggle the camera
  s, screen      start or stop sharing the screen
  c, switch      switch between front and back camera
  f, focus <n>   make video n (or a track id) the primary video
  h, help        show this help
  q, quit        leave the room`

// roomActions are the session operations reachable from the terminal
type roomActions interface {
	ToggleLocalTrack(kind rtc.LocalTrackKind) error
	SwitchCamera() error
	Focus(id livekit.TrackID)
	Snapshot() *rtc.RoomViewState
}

type commandOutput interface {
	Printf(format string, args ...interface{})
}

// handleCommand runs one input line against the session. It reports whether
// the user asked to quit, failures are printed and do not end the session.
func handleCommand(room roomActions, out commandOutput, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch strings.ToLower(fields[0]) {
	case "a", "audio":
		err = room.ToggleLocalTrack(rtc.LocalTrackKindAudio)
	case "v", "video":
		err = room.ToggleLocalTrack(rtc.LocalTrackKindVideo)
	case "s", "screen":
		err = room.ToggleLocalTrack(rtc.LocalTrackKindScreenShare)
	case "c", "switch":
		err = room.SwitchCamera()
	case "f", "focus":
		err = focus(room, fields[1:])
	case "h", "help":
		out.Printf("%s\n", commandUsage)
	case "q", "quit", "exit":
		return true
	default:
		err = fmt.Errorf("%w: %s", errUnknownCommand, fields[0])
	}

	if err != nil {
		out.Printf("%s failed: %v\n", fields[0], err)
	}
	return false
}

// focus accepts the 1-based number shown by the renderer or a track id
func focus(room roomActions, args []string) error {
	if len(args) == 0 {
		return errMissingVideo
	}

	state := room.Snapshot()
	if n, err := strconv.Atoi(args[0]); err == nil {
		videos := state.AllVideos()
		if n < 1 || n > len(videos) {
			return fmt.Errorf("%w: %d", errNoSuchVideo, n)
		}
		room.Focus(videos[n-1].ID)
		return nil
	}

	id := livekit.TrackID(args[0])
	if _, ok := state.FindVideo(id); !ok {
		return fmt.Errorf("%w: %s", errNoSuchVideo, id)
	}
	room.Focus(id)
	return nil
}

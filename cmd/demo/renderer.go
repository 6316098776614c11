package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/thoas/go-funk"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/rtc/types"
)

// bytesCounter is implemented by native tracks that send media
type bytesCounter interface {
	BytesWritten() uint64
}

// Renderer prints the room view as tables, once per state change
type Renderer struct {
	lock        sync.Mutex
	out         io.Writer
	connectedAt time.Time
}

func newRenderer() *Renderer {
	return NewRenderer(os.Stdout)
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) OnStateChanged(change rtc.StateChange) {
	r.Render(change)
}

func (r *Renderer) Printf(format string, args ...interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()

	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) Render(change rtc.StateChange) {
	r.lock.Lock()
	defer r.lock.Unlock()

	state := change.State
	if state == nil {
		return
	}
	if state.Connected && r.connectedAt.IsZero() {
		r.connectedAt = time.Now()
	} else if !state.Connected {
		r.connectedAt = time.Time{}
	}

	_, _ = fmt.Fprintf(r.out, "\n[%s] %s\n", changeCause(change), r.statusLine(state))
	if state.ErrorMessage != "" {
		_, _ = fmt.Fprintf(r.out, "error: %s\n", state.ErrorMessage)
	}
	if len(state.Peers) > 0 {
		r.renderPeers(state)
	}
	if videos := state.AllVideos(); len(videos) > 0 {
		r.renderVideos(state, videos)
	}
}

func (r *Renderer) statusLine(state *rtc.RoomViewState) string {
	var status string
	switch {
	case state.Closed:
		status = "closed"
	case state.Connected:
		status = "connected " + humanize.Time(r.connectedAt)
	default:
		status = "connecting"
	}

	screenShares := funk.Filter(state.AllVideos(), func(v *rtc.ParticipantVideo) bool {
		return v.IsScreenSharing
	}).([]*rtc.ParticipantVideo)

	return fmt.Sprintf("%s | audio %s | video %s | screen %s | %s, %s",
		status,
		onOff(state.LocalAudioEnabled),
		onOff(state.LocalVideoEnabled),
		onOff(state.ScreenShareEnabled),
		pluralize(len(state.Peers), "peer"),
		pluralize(len(screenShares), "screen share"),
	)
}

func (r *Renderer) renderPeers(state *rtc.RoomViewState) {
	table := tablewriter.NewWriter(r.out)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Peer", "ID", "Tracks"})

	for _, p := range state.Peers {
		name := p.DisplayName()
		if p.ID == state.LocalPeerID {
			name = rtc.LocalPeerName
		}
		table.Append([]string{name, string(p.ID), describeTracks(p)})
	}
	table.Render()
}

func (r *Renderer) renderVideos(state *rtc.RoomViewState, videos []*rtc.ParticipantVideo) {
	table := tablewriter.NewWriter(r.out)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Track", "Peer", "Kind", "Mirror", "Sent"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	for i, v := range videos {
		index := strconv.Itoa(i + 1)
		if v == state.Primary {
			index += "*"
		}
		kind := types.TrackTypeCamera
		if v.IsScreenSharing {
			kind = types.TrackTypeScreensharing
		}
		table.Append([]string{
			index,
			string(v.ID),
			videoOwner(state, v.PeerID),
			kind,
			yesNo(v.Mirror),
			bytesSent(v.Track),
		})
	}
	table.Render()
}

func changeCause(change rtc.StateChange) string {
	if change.Event != nil {
		return string(change.Event.Type())
	}
	return change.Action
}

func videoOwner(state *rtc.RoomViewState, peerID livekit.ParticipantID) string {
	if peerID == state.LocalPeerID {
		return rtc.LocalPeerName
	}
	if name := state.DisplayName(peerID); name != "" {
		return name
	}
	return string(peerID)
}

func describeTracks(p types.Peer) string {
	if len(p.TrackIDToMetadata) == 0 {
		return "-"
	}

	kinds := funk.Map(p.TrackIDToMetadata, func(_ livekit.TrackID, md map[string]string) (string, bool) {
		kind := md[types.MetadataKeyType]
		if kind == "" {
			kind = "unknown"
		}
		return kind, true
	}).(map[string]bool)

	names := funk.Keys(kinds).([]string)
	sort.Strings(names)
	return fmt.Sprintf("%d (%s)", len(p.TrackIDToMetadata), strings.Join(names, ", "))
}

func bytesSent(track types.Track) string {
	if track == nil || track.NativeTrack() == nil {
		return "-"
	}
	counter, ok := track.NativeTrack().(bytesCounter)
	if !ok {
		return "-"
	}
	return humanize.Bytes(counter.BytesWritten())
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

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
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"
	"github.com/livekit/protocol/utils"

	"github.com/livekit/roomview/pkg/rtc/types"
)

const DefaultMirrorUpdateDelay = 200 * time.Millisecond

type LocalTrackKind int

const (
	LocalTrackKindAudio LocalTrackKind = iota
	LocalTrackKindVideo
	LocalTrackKindScreenShare
)

func (k LocalTrackKind) String() string {
	switch k {
	case LocalTrackKindAudio:
		return "audio"
	case LocalTrackKindVideo:
		return "video"
	case LocalTrackKindScreenShare:
		return "screenshare"
	default:
		return fmt.Sprintf("%d", int(k))
	}
}

// stateUpdater applies fn on the session ops queue, observers are notified
// when fn reports a change
type stateUpdater interface {
	Update(action string, fn func(state *roomState) bool)
}

// TrackMetadata is the payload sent along with a local track
func TrackMetadata(displayName string, trackType string) map[string]string {
	return map[string]string{
		types.MetadataKeyUserID: displayName,
		types.MetadataKeyType:   trackType,
	}
}

type LocalTrackControllerParams struct {
	Logger            logger.Logger
	Engine            types.MediaEngine
	DisplayName       string
	Audio             types.LocalTrack
	Video             types.LocalVideoTrack
	Screencast        types.VideoParameters
	MirrorUpdateDelay time.Duration
}

// LocalTrackController owns the local tracks. Enabling and disabling the
// native tracks and the observed flags change together on the session ops
// queue.
type LocalTrackController struct {
	params  LocalTrackControllerParams
	updater stateUpdater

	debounceMirror func(f func())

	// set from the toggle until the broadcaster stops the screen share
	screenShareActive atomic.Bool

	lock sync.Mutex
	// the fabricated video id of the running screen share
	screencastVideoID livekit.TrackID
	screencastTrack   types.LocalTrack
}

func NewLocalTrackController(params LocalTrackControllerParams, updater stateUpdater) *LocalTrackController {
	if params.MirrorUpdateDelay <= 0 {
		params.MirrorUpdateDelay = DefaultMirrorUpdateDelay
	}
	return &LocalTrackController{
		params:         params,
		updater:        updater,
		debounceMirror: debounce.New(params.MirrorUpdateDelay),
	}
}

func (c *LocalTrackController) Audio() types.LocalTrack {
	return c.params.Audio
}

func (c *LocalTrackController) Video() types.LocalVideoTrack {
	return c.params.Video
}

func (c *LocalTrackController) ScreenShareActive() bool {
	return c.screenShareActive.Load()
}

// EnableTrack only touches the native track when its state differs, the
// observed flag is always updated
func (c *LocalTrackController) EnableTrack(kind LocalTrackKind, enabled bool) error {
	var track types.LocalTrack
	switch kind {
	case LocalTrackKindAudio:
		track = c.params.Audio
	case LocalTrackKindVideo:
		if c.params.Video != nil {
			track = c.params.Video
		}
	case LocalTrackKindScreenShare:
		if !enabled {
			// only the broadcaster ends a screen share
			return nil
		}
		return c.startScreenShare()
	default:
		return ErrUnknownTrackKind
	}

	c.setEnabled(kind, track, func(bool) bool { return enabled })
	return nil
}

func (c *LocalTrackController) ToggleLocalTrack(kind LocalTrackKind) error {
	flip := func(current bool) bool { return !current }
	switch kind {
	case LocalTrackKindAudio:
		c.setEnabled(kind, c.params.Audio, flip)
		return nil
	case LocalTrackKindVideo:
		if c.params.Video == nil {
			return ErrMissingLocalVideo
		}
		c.setEnabled(kind, c.params.Video, flip)
		return nil
	case LocalTrackKindScreenShare:
		return c.startScreenShare()
	default:
		return ErrUnknownTrackKind
	}
}

// setEnabled reads the current state, updates the native track and sets the
// observed flag in one step on the ops queue
func (c *LocalTrackController) setEnabled(kind LocalTrackKind, track types.LocalTrack, next func(current bool) bool) {
	c.updater.Update("enable_"+kind.String(), func(state *roomState) bool {
		enabled := next(c.isEnabled(track))
		if track != nil {
			if native := track.NativeTrack(); native != nil && native.IsEnabled() != enabled {
				native.SetEnabled(enabled)
			}
		}

		if kind == LocalTrackKindAudio {
			state.localAudioEnabled = enabled
		} else {
			state.localVideoEnabled = enabled
		}
		return true
	})
}

// SwitchCamera flips the lens of a camera backed video. The mirror flag of the
// local video is applied after a delay since the device reports the new
// position late, rapid switches collapse into one update.
func (c *LocalTrackController) SwitchCamera() error {
	if c.params.Video == nil {
		return ErrMissingLocalVideo
	}
	camera, ok := c.params.Video.Camera()
	if !ok {
		return ErrCameraUnsupported
	}
	if err := camera.SwitchCamera(); err != nil {
		return err
	}

	videoID := c.params.Video.ID()
	c.debounceMirror(func() {
		mirror := camera.Position() == types.CameraPositionFront
		c.updater.Update("mirror", func(state *roomState) bool {
			return state.videos.SetMirror(videoID, mirror)
		})
	})
	return nil
}

// Stop stops the local tracks, a running screen share is detached
func (c *LocalTrackController) Stop() {
	if c.params.Audio != nil {
		c.params.Audio.Stop()
	}
	if c.params.Video != nil {
		c.params.Video.Stop()
	}

	c.lock.Lock()
	screencast := c.screencastTrack
	c.screencastTrack = nil
	c.lock.Unlock()
	if screencast != nil {
		screencast.Stop()
	}
}

func (c *LocalTrackController) isEnabled(track types.LocalTrack) bool {
	if track == nil {
		return false
	}
	return track.Enabled()
}

func (c *LocalTrackController) startScreenShare() error {
	if !c.screenShareActive.CompareAndSwap(false, true) {
		c.params.Logger.Debugw("screen share already active, ignoring toggle")
		return nil
	}

	err := c.params.Engine.CreateScreencastTrack(
		c.params.Screencast,
		TrackMetadata(c.params.DisplayName, types.TrackTypeScreensharing),
		c.onScreencastStart,
		c.onScreencastStop,
	)
	if err != nil {
		c.screenShareActive.Store(false)
		return err
	}
	return nil
}

func (c *LocalTrackController) onScreencastStart(track types.LocalTrack) {
	c.lock.Lock()
	c.screencastTrack = track
	c.lock.Unlock()

	c.updater.Update("screencast_started", func(state *roomState) bool {
		video := &ParticipantVideo{
			ID:              livekit.TrackID(utils.NewGuid(utils.TrackPrefix)),
			PeerID:          state.localPeerID,
			Track:           track,
			IsScreenSharing: true,
		}
		if err := state.videos.Add(video); err != nil {
			c.params.Logger.Warnw("could not add screen share", err, "trackID", video.ID)
			return false
		}
		state.videos.Focus(video)
		state.screenShareEnabled = true

		c.lock.Lock()
		c.screencastVideoID = video.ID
		c.lock.Unlock()
		return true
	})
}

func (c *LocalTrackController) onScreencastStop() {
	c.lock.Lock()
	c.screencastTrack = nil
	c.lock.Unlock()

	c.updater.Update("screencast_stopped", func(state *roomState) bool {
		c.lock.Lock()
		videoID := c.screencastVideoID
		c.screencastVideoID = ""
		c.lock.Unlock()

		if videoID != "" {
			state.videos.Remove(videoID)
		}
		state.screenShareEnabled = false
		c.screenShareActive.Store(false)
		return true
	})
}

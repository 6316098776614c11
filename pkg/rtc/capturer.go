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
	"sync"
	"time"

	"github.com/frostbyte73/core"
	"github.com/pion/webrtc/v3/pkg/media"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
)

const defaultCaptureFPS = 30

// keyframe-like payloads, the first byte tags which lens produced the frame
var (
	frontFrame = []byte{0x10, 0x02, 0x00, 0x9d, 0x01, 0x2a, 0xf0, 0x00}
	backFrame  = []byte{0x11, 0x02, 0x00, 0x9d, 0x01, 0x2a, 0xf0, 0x00}
)

func frameInterval(fps uint32) time.Duration {
	if fps == 0 {
		fps = defaultCaptureFPS
	}
	return time.Second / time.Duration(fps)
}

// ---------------------------------------------

// CameraCapturer produces frames for a camera backed video track at a fixed
// rate. It has a front and back lens, switching takes effect on the next frame.
type CameraCapturer struct {
	logger logger.Logger
	track  types.NativeTrack
	params types.VideoParameters

	lock     sync.Mutex
	position types.CameraPosition
	stop     chan struct{}
	frames   atomic.Uint64
}

func NewCameraCapturer(logger logger.Logger, track types.NativeTrack, params types.VideoParameters) *CameraCapturer {
	return &CameraCapturer{
		logger:   logger,
		track:    track,
		params:   params,
		position: types.CameraPositionFront,
	}
}

func (c *CameraCapturer) Start() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.stop != nil {
		return nil
	}
	c.stop = make(chan struct{})
	go c.capture(c.stop)
	return nil
}

func (c *CameraCapturer) Stop() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.stop == nil {
		return
	}
	close(c.stop)
	c.stop = nil
}

func (c *CameraCapturer) SwitchCamera() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.position == types.CameraPositionFront {
		c.position = types.CameraPositionBack
	} else {
		c.position = types.CameraPositionFront
	}
	c.logger.Debugw("switched camera", "trackID", c.track.ID(), "position", c.position)
	return nil
}

func (c *CameraCapturer) Position() types.CameraPosition {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.position
}

func (c *CameraCapturer) Frames() uint64 {
	return c.frames.Load()
}

func (c *CameraCapturer) capture(stop <-chan struct{}) {
	interval := frameInterval(c.params.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame := frontFrame
			if c.Position() == types.CameraPositionBack {
				frame = backFrame
			}
			if err := c.track.WriteSample(media.Sample{Data: frame, Duration: interval}); err != nil {
				c.logger.Warnw("could not write camera frame", err, "trackID", c.track.ID())
				continue
			}
			c.frames.Inc()
		}
	}
}

// ---------------------------------------------

var _ types.BroadcastSource = (*SyntheticBroadcast)(nil)

// SyntheticBroadcast stands in for an out-of-process screen capture. It ends
// on its own after the configured duration, or when Stop is called, and
// reports the end through the onStopped callback exactly once.
type SyntheticBroadcast struct {
	logger   logger.Logger
	duration time.Duration

	lock      sync.Mutex
	onStopped func()
	stopped   core.Fuse
	started   bool
}

// NewSyntheticBroadcast creates a broadcast that runs for duration, zero runs until stopped
func NewSyntheticBroadcast(logger logger.Logger, duration time.Duration) *SyntheticBroadcast {
	return &SyntheticBroadcast{
		logger:   logger,
		duration: duration,
	}
}

func (b *SyntheticBroadcast) Start(track types.NativeTrack, params types.VideoParameters, onStopped func()) error {
	b.lock.Lock()
	if b.started {
		b.lock.Unlock()
		return nil
	}
	b.started = true
	b.onStopped = onStopped
	b.lock.Unlock()

	b.logger.Infow("broadcast started", "trackID", track.ID(), "duration", b.duration)
	go b.capture(track, params)
	return nil
}

func (b *SyntheticBroadcast) Stop() {
	b.lock.Lock()
	if b.stopped.IsBroken() {
		b.lock.Unlock()
		return
	}
	b.stopped.Break()
	onStopped := b.onStopped
	b.lock.Unlock()

	b.logger.Infow("broadcast stopped")
	if onStopped != nil {
		onStopped()
	}
}

func (b *SyntheticBroadcast) capture(track types.NativeTrack, params types.VideoParameters) {
	interval := frameInterval(params.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if b.duration > 0 {
		timer := time.NewTimer(b.duration)
		defer timer.Stop()
		deadline = timer.C
	}

	stopped := b.stopped.Watch()
	for {
		select {
		case <-stopped:
			return
		case <-deadline:
			b.Stop()
			return
		case <-ticker.C:
			_ = track.WriteSample(media.Sample{Data: frontFrame, Duration: interval})
		}
	}
}

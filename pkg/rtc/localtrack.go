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

	"github.com/pion/webrtc/v3"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"
	"github.com/livekit/protocol/utils"

	"github.com/livekit/roomview/pkg/rtc/types"
)

var (
	_ types.LocalTrack      = (*LocalAudioTrack)(nil)
	_ types.LocalVideoTrack = (*LocalVideoTrack)(nil)
	_ types.LocalTrack      = (*LocalScreencastTrack)(nil)
)

type LocalTrackParams struct {
	Logger   logger.Logger
	StreamID string
	Metadata map[string]string
	// FilePath plays a media file instead of a capture device when set
	FilePath string
}

type localTrack struct {
	logger   logger.Logger
	id       livekit.TrackID
	metadata map[string]string
	native   *NativeTrack
}

func newLocalTrack(params LocalTrackParams, mimeType string) (*localTrack, error) {
	id := livekit.TrackID(utils.NewGuid(utils.TrackPrefix))
	native, err := NewNativeTrack(mimeType, string(id), params.StreamID)
	if err != nil {
		return nil, err
	}

	md := make(map[string]string, len(params.Metadata))
	for k, v := range params.Metadata {
		md[k] = v
	}
	return &localTrack{
		logger:   params.Logger.WithValues("trackID", id),
		id:       id,
		metadata: md,
		native:   native,
	}, nil
}

func (t *localTrack) ID() livekit.TrackID {
	return t.id
}

func (t *localTrack) Kind() livekit.TrackType {
	return t.native.Kind()
}

func (t *localTrack) Metadata() map[string]string {
	return t.metadata
}

func (t *localTrack) NativeTrack() types.NativeTrack {
	return t.native
}

func (t *localTrack) Toggle() {
	t.native.SetEnabled(!t.native.IsEnabled())
}

func (t *localTrack) Enabled() bool {
	return t.native.IsEnabled()
}

// Native exposes the pion backed track so a transport can attach it
func (t *localTrack) Native() *NativeTrack {
	return t.native
}

// ---------------------------------------------

type LocalAudioTrack struct {
	*localTrack

	writer *TrackWriter
}

func NewLocalAudioTrack(params LocalTrackParams) (*LocalAudioTrack, error) {
	base, err := newLocalTrack(params, webrtc.MimeTypeOpus)
	if err != nil {
		return nil, err
	}

	return &LocalAudioTrack{
		localTrack: base,
		writer: NewTrackWriter(TrackWriterParams{
			Logger:   base.logger,
			Track:    base.native,
			MimeType: webrtc.MimeTypeOpus,
			FilePath: params.FilePath,
			Loop:     true,
		}),
	}, nil
}

func (t *LocalAudioTrack) Start() error {
	return t.writer.Start()
}

func (t *LocalAudioTrack) Stop() {
	t.writer.Stop()
}

// ---------------------------------------------

// LocalVideoTrack is either camera backed or file backed. Only the camera
// variant can switch lens, callers check for it through Camera().
type LocalVideoTrack struct {
	*localTrack

	source types.VideoSource
	camera *CameraCapturer
	writer *TrackWriter
}

type LocalVideoTrackParams struct {
	LocalTrackParams
	Video types.VideoParameters
}

func NewLocalVideoTrack(params LocalVideoTrackParams) (*LocalVideoTrack, error) {
	if params.FilePath != "" {
		mimeType, err := MimeTypeForFile(params.FilePath)
		if err != nil {
			return nil, err
		}
		base, err := newLocalTrack(params.LocalTrackParams, mimeType)
		if err != nil {
			return nil, err
		}
		return &LocalVideoTrack{
			localTrack: base,
			source:     types.VideoSourceFile,
			writer: NewTrackWriter(TrackWriterParams{
				Logger:   base.logger,
				Track:    base.native,
				MimeType: mimeType,
				FilePath: params.FilePath,
				Loop:     true,
			}),
		}, nil
	}

	base, err := newLocalTrack(params.LocalTrackParams, webrtc.MimeTypeVP8)
	if err != nil {
		return nil, err
	}
	return &LocalVideoTrack{
		localTrack: base,
		source:     types.VideoSourceCamera,
		camera:     NewCameraCapturer(base.logger, base.native, params.Video),
	}, nil
}

func (t *LocalVideoTrack) Source() types.VideoSource {
	return t.source
}

func (t *LocalVideoTrack) Camera() (types.CameraSwitcher, bool) {
	if t.source != types.VideoSourceCamera {
		return nil, false
	}
	return t.camera, true
}

func (t *LocalVideoTrack) Start() error {
	switch t.source {
	case types.VideoSourceCamera:
		return t.camera.Start()
	default:
		return t.writer.Start()
	}
}

func (t *LocalVideoTrack) Stop() {
	switch t.source {
	case types.VideoSourceCamera:
		t.camera.Stop()
	default:
		t.writer.Stop()
	}
}

// ---------------------------------------------

// LocalScreencastTrack is fed by a broadcast source. The broadcast decides
// when the capture ends, Stop only detaches from it.
type LocalScreencastTrack struct {
	*localTrack

	params    types.VideoParameters
	source    types.BroadcastSource
	onStopped func()

	lock    sync.Mutex
	started bool
}

type LocalScreencastTrackParams struct {
	LocalTrackParams
	Video     types.VideoParameters
	Source    types.BroadcastSource
	OnStopped func()
}

func NewLocalScreencastTrack(params LocalScreencastTrackParams) (*LocalScreencastTrack, error) {
	base, err := newLocalTrack(params.LocalTrackParams, webrtc.MimeTypeVP8)
	if err != nil {
		return nil, err
	}
	return &LocalScreencastTrack{
		localTrack: base,
		params:     params.Video,
		source:     params.Source,
		onStopped:  params.OnStopped,
	}, nil
}

func (t *LocalScreencastTrack) Start() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.started {
		return nil
	}
	if err := t.source.Start(t.native, t.params, t.onBroadcastStopped); err != nil {
		return err
	}
	t.started = true
	return nil
}

func (t *LocalScreencastTrack) Stop() {
	t.lock.Lock()
	started := t.started
	t.started = false
	t.lock.Unlock()

	if started {
		t.source.Stop()
	}
}

func (t *LocalScreencastTrack) onBroadcastStopped() {
	t.lock.Lock()
	t.started = false
	t.lock.Unlock()

	t.logger.Debugw("broadcast ended")
	if t.onStopped != nil {
		t.onStopped()
	}
}

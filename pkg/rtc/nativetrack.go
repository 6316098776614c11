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
	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

var _ types.NativeTrack = (*NativeTrack)(nil)

// NativeTrack is a pion sample track with an enabled switch. Samples written
// while disabled are dropped, which is what muting means for a local track.
type NativeTrack struct {
	track   *webrtc.TrackLocalStaticSample
	kind    livekit.TrackType
	enabled atomic.Bool

	bytesWritten   atomic.Uint64
	samplesDropped atomic.Uint64
}

func NewNativeTrack(mimeType string, id string, streamID string) (*NativeTrack, error) {
	track, err := webrtc.NewTrackLocalStaticSample(webrtc.RTPCodecCapability{MimeType: mimeType}, id, streamID)
	if err != nil {
		return nil, err
	}

	kind := livekit.TrackType_VIDEO
	if track.Kind() == webrtc.RTPCodecTypeAudio {
		kind = livekit.TrackType_AUDIO
	}

	t := &NativeTrack{
		track: track,
		kind:  kind,
	}
	t.enabled.Store(true)
	return t, nil
}

func (t *NativeTrack) ID() string {
	return t.track.ID()
}

func (t *NativeTrack) StreamID() string {
	return t.track.StreamID()
}

func (t *NativeTrack) Kind() livekit.TrackType {
	return t.kind
}

func (t *NativeTrack) MimeType() string {
	return t.track.Codec().MimeType
}

func (t *NativeTrack) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

func (t *NativeTrack) IsEnabled() bool {
	return t.enabled.Load()
}

func (t *NativeTrack) WriteSample(sample media.Sample) error {
	if !t.enabled.Load() {
		t.samplesDropped.Inc()
		return nil
	}

	if err := t.track.WriteSample(sample); err != nil {
		return err
	}
	t.bytesWritten.Add(uint64(len(sample.Data)))
	return nil
}

// TrackLocal is what a transport attaches to a peer connection
func (t *NativeTrack) TrackLocal() webrtc.TrackLocal {
	return t.track
}

func (t *NativeTrack) BytesWritten() uint64 {
	return t.bytesWritten.Load()
}

func (t *NativeTrack) SamplesDropped() uint64 {
	return t.samplesDropped.Load()
}

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

package types

import (
	"context"

	"github.com/pion/webrtc/v3/pkg/media"

	"github.com/livekit/protocol/livekit"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	// MetadataKeyType classifies a track, "screensharing" marks a screen share
	MetadataKeyType = "type"
	// MetadataKeyUserID carries the display name of the publisher
	MetadataKeyUserID = "user_id"
	// MetadataKeyDisplayName is the peer metadata key holding the display name
	MetadataKeyDisplayName = "displayName"

	TrackTypeScreensharing = "screensharing"
	TrackTypeCamera        = "camera"
	TrackTypeAudio         = "audio"
)

type VideoSource int

const (
	VideoSourceCamera VideoSource = iota
	VideoSourceFile
)

func (s VideoSource) String() string {
	switch s {
	case VideoSourceCamera:
		return "camera"
	case VideoSourceFile:
		return "file"
	default:
		return "unknown"
	}
}

type CameraPosition int

const (
	CameraPositionFront CameraPosition = iota
	CameraPositionBack
)

func (p CameraPosition) String() string {
	if p == CameraPositionFront {
		return "front"
	}
	return "back"
}

type VideoParameters struct {
	Width  uint32
	Height uint32
	FPS    uint32
}

// Peer is a participant as announced by signalling
type Peer struct {
	ID                livekit.ParticipantID
	Metadata          map[string]string
	TrackIDToMetadata map[livekit.TrackID]map[string]string
}

func (p Peer) DisplayName() string {
	return p.Metadata[MetadataKeyDisplayName]
}

// TrackContext describes a remote or local track referenced by a room event
type TrackContext struct {
	TrackID  livekit.TrackID
	Kind     livekit.TrackType
	PeerID   livekit.ParticipantID
	Metadata map[string]string
	Track    Track
}

func (c TrackContext) IsScreenSharing() bool {
	return c.Metadata[MetadataKeyType] == TrackTypeScreensharing
}

// NativeTrack is the media engine's handle to a track, used for rendering and sending
//
//counterfeiter:generate . NativeTrack
type NativeTrack interface {
	ID() string
	StreamID() string
	Kind() livekit.TrackType
	SetEnabled(enabled bool)
	IsEnabled() bool
	WriteSample(sample media.Sample) error
}

//counterfeiter:generate . Track
type Track interface {
	ID() livekit.TrackID
	Kind() livekit.TrackType
	Metadata() map[string]string
	// NativeTrack is nil for remote tracks whose media is not locally available
	NativeTrack() NativeTrack
}

//counterfeiter:generate . LocalTrack
type LocalTrack interface {
	Track

	Start() error
	Stop()
	// Toggle inverts the enabled state of the native track
	Toggle()
	Enabled() bool
}

//counterfeiter:generate . CameraSwitcher
type CameraSwitcher interface {
	SwitchCamera() error
	Position() CameraPosition
}

//counterfeiter:generate . LocalVideoTrack
type LocalVideoTrack interface {
	LocalTrack

	Source() VideoSource
	// Camera returns the lens switching capability, only camera backed tracks have one
	Camera() (CameraSwitcher, bool)
}

// BroadcastSource is the handle to an out-of-process screen capture. The
// capture decides on its own when it ends, onStopped is then invoked.
//
//counterfeiter:generate . BroadcastSource
type BroadcastSource interface {
	Start(track NativeTrack, params VideoParameters, onStopped func()) error
	Stop()
}

//counterfeiter:generate . MediaEngine
type MediaEngine interface {
	Join(ctx context.Context, metadata map[string]string) error
	CurrentPeer() Peer

	CreateVideoTrack(params VideoParameters, metadata map[string]string) (LocalVideoTrack, error)
	CreateAudioTrack(metadata map[string]string) (LocalTrack, error)
	// CreateScreencastTrack returns immediately. onStart is called once the
	// broadcast delivers a track, onStop when the broadcaster terminates it.
	CreateScreencastTrack(
		params VideoParameters,
		metadata map[string]string,
		onStart func(track LocalTrack),
		onStop func(),
	) error
}

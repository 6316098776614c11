package rtc

import (
	"testing"
	"time"

	"github.com/pion/webrtc/v3/pkg/media"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/rtc/types/typesfakes"
)

func trackParams(filePath string) LocalTrackParams {
	return LocalTrackParams{
		Logger:   logger.GetLogger(),
		StreamID: "stream",
		Metadata: TrackMetadata("alice", types.TrackTypeCamera),
		FilePath: filePath,
	}
}

func TestNativeTrack(t *testing.T) {
	native, err := NewNativeTrack("video/vp8", "TR_native", "stream")
	require.NoError(t, err)
	require.Equal(t, livekit.TrackType_VIDEO, native.Kind())
	require.True(t, native.IsEnabled())

	// not bound to a peer connection, samples are accepted and counted
	require.NoError(t, native.WriteSample(media.Sample{Data: []byte{1, 2, 3}, Duration: time.Millisecond}))
	require.Equal(t, uint64(3), native.BytesWritten())

	native.SetEnabled(false)
	require.NoError(t, native.WriteSample(media.Sample{Data: []byte{1, 2, 3}, Duration: time.Millisecond}))
	require.Equal(t, uint64(3), native.BytesWritten())
	require.Equal(t, uint64(1), native.SamplesDropped())

	audio, err := NewNativeTrack("audio/opus", "TR_audio", "stream")
	require.NoError(t, err)
	require.Equal(t, livekit.TrackType_AUDIO, audio.Kind())
}

func TestLocalVideoTrack(t *testing.T) {
	t.Run("camera variant can switch", func(t *testing.T) {
		track, err := NewLocalVideoTrack(LocalVideoTrackParams{
			LocalTrackParams: trackParams(""),
			Video:            types.VideoParameters{Width: 320, Height: 240, FPS: 100},
		})
		require.NoError(t, err)
		require.Equal(t, types.VideoSourceCamera, track.Source())
		require.Equal(t, livekit.TrackType_VIDEO, track.Kind())
		require.Equal(t, "alice", track.Metadata()[types.MetadataKeyUserID])

		camera, ok := track.Camera()
		require.True(t, ok)
		require.Equal(t, types.CameraPositionFront, camera.Position())
		require.NoError(t, camera.SwitchCamera())
		require.Equal(t, types.CameraPositionBack, camera.Position())

		require.NoError(t, track.Start())
		defer track.Stop()
		require.Eventually(t, func() bool {
			return track.Native().BytesWritten() > 0
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("toggle flips the native flag", func(t *testing.T) {
		track, err := NewLocalVideoTrack(LocalVideoTrackParams{LocalTrackParams: trackParams("")})
		require.NoError(t, err)

		require.True(t, track.Enabled())
		track.Toggle()
		require.False(t, track.Enabled())
		require.False(t, track.NativeTrack().IsEnabled())
		track.Toggle()
		require.True(t, track.Enabled())
	})

	t.Run("file variant cannot switch", func(t *testing.T) {
		track, err := NewLocalVideoTrack(LocalVideoTrackParams{LocalTrackParams: trackParams("/media/clip.ivf")})
		require.NoError(t, err)
		require.Equal(t, types.VideoSourceFile, track.Source())
		_, ok := track.Camera()
		require.False(t, ok)
		require.Error(t, track.Start())
	})

	t.Run("unsupported file", func(t *testing.T) {
		_, err := NewLocalVideoTrack(LocalVideoTrackParams{LocalTrackParams: trackParams("/media/clip.mov")})
		require.ErrorIs(t, err, ErrUnsupportedMediaFile)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := NewLocalAudioTrack(trackParams(""))
		require.NoError(t, err)
		b, err := NewLocalAudioTrack(trackParams(""))
		require.NoError(t, err)
		require.NotEqual(t, a.ID(), b.ID())
		require.Equal(t, livekit.TrackType_AUDIO, a.Kind())
	})
}

func TestLocalScreencastTrack(t *testing.T) {
	source := &typesfakes.FakeBroadcastSource{}
	var stopped atomic.Bool
	track, err := NewLocalScreencastTrack(LocalScreencastTrackParams{
		LocalTrackParams: trackParams(""),
		Video:            types.VideoParameters{FPS: 5},
		Source:           source,
		OnStopped:        func() { stopped.Store(true) },
	})
	require.NoError(t, err)

	require.NoError(t, track.Start())
	require.NoError(t, track.Start())
	require.Equal(t, 1, source.StartCallCount())
	native, params, onStopped := source.StartArgsForCall(0)
	require.Equal(t, track.NativeTrack(), native)
	require.Equal(t, uint32(5), params.FPS)

	onStopped()
	require.True(t, stopped.Load())
	// the broadcast already ended, nothing to stop
	track.Stop()
	require.Zero(t, source.StopCallCount())
}

func TestSyntheticBroadcastPlayout(t *testing.T) {
	native, err := NewNativeTrack("video/vp8", "TR_screen", "stream")
	require.NoError(t, err)

	b := NewSyntheticBroadcast(logger.GetLogger(), 50*time.Millisecond)
	done := make(chan struct{})
	require.NoError(t, b.Start(native, types.VideoParameters{FPS: 100}, func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast did not end")
	}
	require.NotZero(t, native.BytesWritten())

	// stopping again does not call back twice
	b.Stop()
}

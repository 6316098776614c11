package rtc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/rtc/types/typesfakes"
	"github.com/livekit/roomview/pkg/testutils"
)

func TestCameraCapturer(t *testing.T) {
	track := &typesfakes.FakeNativeTrack{}
	c := NewCameraCapturer(logger.GetLogger(), track, types.VideoParameters{FPS: 100})
	require.NoError(t, c.Start())
	// starting twice keeps a single capture loop
	require.NoError(t, c.Start())
	t.Cleanup(c.Stop)

	testutils.WithTimeout(t, func() string {
		if c.Frames() < 2 {
			return "no frames captured"
		}
		return ""
	})
	require.Equal(t, frontFrame, track.WriteSampleArgsForCall(0).Data)

	require.NoError(t, c.SwitchCamera())
	require.Equal(t, types.CameraPositionBack, c.Position())
	switched := track.WriteSampleCallCount()
	testutils.WithTimeout(t, func() string {
		n := track.WriteSampleCallCount()
		if n <= switched+1 {
			return "no frames after switching"
		}
		if track.WriteSampleArgsForCall(n-1).Data[0] != backFrame[0] {
			return "frames not from the back camera"
		}
		return ""
	})

	c.Stop()
	stopped := c.Frames()
	time.Sleep(50 * time.Millisecond)
	require.LessOrEqual(t, c.Frames(), stopped+1)

	require.NoError(t, c.SwitchCamera())
	require.Equal(t, types.CameraPositionFront, c.Position())
}

func TestSyntheticBroadcast(t *testing.T) {
	t.Run("ends after its duration", func(t *testing.T) {
		track := &typesfakes.FakeNativeTrack{}
		var stops atomic.Int32
		b := NewSyntheticBroadcast(logger.GetLogger(), 100*time.Millisecond)
		require.NoError(t, b.Start(track, types.VideoParameters{FPS: 100}, func() { stops.Inc() }))

		testutils.WithTimeout(t, func() string {
			if stops.Load() != 1 {
				return "broadcast did not end"
			}
			return ""
		})
		require.Greater(t, track.WriteSampleCallCount(), 0)

		// stopping again does not report a second end
		b.Stop()
		require.Equal(t, int32(1), stops.Load())
	})

	t.Run("stopped by the user", func(t *testing.T) {
		var stops atomic.Int32
		b := NewSyntheticBroadcast(logger.GetLogger(), 0)
		require.NoError(t, b.Start(&typesfakes.FakeNativeTrack{}, types.VideoParameters{}, func() { stops.Inc() }))
		b.Stop()
		b.Stop()
		require.Equal(t, int32(1), stops.Load())
	})
}

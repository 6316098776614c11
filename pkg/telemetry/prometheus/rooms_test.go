package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRoomStats(t *testing.T) {
	Init("test")
	// a second init is ignored
	Init("test")

	before := GetStats()
	RecordEvent("track_added")
	RecordEvent("track_added")
	RecordDuplicateVideo()
	RecordSignalMessage("incoming", "joined", "success")
	SetRoomView(3, 2, true)

	stats := GetStats()
	require.Equal(t, before.EventsProcessed+2, stats.EventsProcessed)
	require.Equal(t, before.DuplicateVideos+1, stats.DuplicateVideos)
	require.Equal(t, before.SignalMessages+1, stats.SignalMessages)
	require.Equal(t, int32(3), stats.Participants)
	require.Equal(t, int32(2), stats.Videos)
	require.True(t, stats.ScreenShareActive)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, name := range []string{
		"roomview_signal_messages",
		"roomview_node_cpu_load",
		"roomview_node_load_avg_1",
	} {
		require.True(t, names[name], "missing %s", name)
	}
}

func TestCPULoad(t *testing.T) {
	_, err := getCPULoad()
	require.NoError(t, err)
	load, err := getCPULoad()
	require.NoError(t, err)
	require.GreaterOrEqual(t, load, 0.0)
	require.LessOrEqual(t, load, 1.0)
}

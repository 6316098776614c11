package rtc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

func peerIDs(peers []types.Peer) []livekit.ParticipantID {
	ids := make([]livekit.ParticipantID, 0, len(peers))
	for _, p := range peers {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRegistry(t *testing.T) {
	t.Run("keeps join order", func(t *testing.T) {
		r := NewRegistry()
		r.Add(remotePeer("PA_c", "carol"))
		r.Add(remotePeer("PA_a", "alice"))
		r.Add(remotePeer("PA_b", "bob"))

		require.Equal(t, []livekit.ParticipantID{"PA_c", "PA_a", "PA_b"}, peerIDs(r.Peers()))

		require.True(t, r.Remove("PA_a"))
		require.False(t, r.Remove("PA_a"))
		r.Add(remotePeer("PA_a", "alice"))
		require.Equal(t, []livekit.ParticipantID{"PA_c", "PA_b", "PA_a"}, peerIDs(r.Peers()))
	})

	t.Run("update keeps position and ignores unknown peers", func(t *testing.T) {
		r := NewRegistry()
		r.Add(remotePeer("PA_a", "alice"))
		r.Add(remotePeer("PA_b", "bob"))

		require.True(t, r.Update(remotePeer("PA_a", "alicia")))
		require.False(t, r.Update(remotePeer("PA_z", "zed")))

		require.Equal(t, []livekit.ParticipantID{"PA_a", "PA_b"}, peerIDs(r.Peers()))
		p, ok := r.Get("PA_a")
		require.True(t, ok)
		require.Equal(t, "alicia", p.DisplayName())
		require.Equal(t, 2, r.Len())
	})

	t.Run("stored peers are copies", func(t *testing.T) {
		r := NewRegistry()
		peer := types.Peer{
			ID:       "PA_a",
			Metadata: map[string]string{types.MetadataKeyDisplayName: "alice"},
			TrackIDToMetadata: map[livekit.TrackID]map[string]string{
				"TR_a": {types.MetadataKeyType: types.TrackTypeCamera},
			},
		}
		r.Add(peer)
		peer.Metadata[types.MetadataKeyDisplayName] = "mallory"
		peer.TrackIDToMetadata["TR_a"][types.MetadataKeyType] = types.TrackTypeScreensharing

		p, _ := r.Get("PA_a")
		require.Equal(t, "alice", p.DisplayName())
		require.Equal(t, types.TrackTypeCamera, p.TrackIDToMetadata["TR_a"][types.MetadataKeyType])
	})

	t.Run("clear", func(t *testing.T) {
		r := NewRegistry()
		r.Add(remotePeer("PA_a", "alice"))
		r.Clear()
		require.Zero(t, r.Len())
		require.Empty(t, r.Peers())
	})
}

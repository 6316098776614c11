package rtc

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

// LocalPeerName is how the local participant is listed in the registry
const LocalPeerName = "Me"

// Registry maps peer ids to peers, iterating in join order.
// Like FocusList it is owned by the session ops queue.
type Registry struct {
	peers *orderedmap.OrderedMap[livekit.ParticipantID, types.Peer]
}

func NewRegistry() *Registry {
	return &Registry{
		peers: orderedmap.NewOrderedMap[livekit.ParticipantID, types.Peer](),
	}
}

// Add inserts or replaces a peer, a replaced peer keeps its position
func (r *Registry) Add(peer types.Peer) {
	r.peers.Set(peer.ID, clonePeer(peer))
}

func (r *Registry) Remove(peerID livekit.ParticipantID) bool {
	return r.peers.Delete(peerID)
}

// Update refreshes the metadata of a known peer, unknown peers are ignored
func (r *Registry) Update(peer types.Peer) bool {
	if _, ok := r.peers.Get(peer.ID); !ok {
		return false
	}
	r.peers.Set(peer.ID, clonePeer(peer))
	return true
}

func (r *Registry) Get(peerID livekit.ParticipantID) (types.Peer, bool) {
	return r.peers.Get(peerID)
}

func (r *Registry) Len() int {
	return r.peers.Len()
}

func (r *Registry) Clear() {
	r.peers = orderedmap.NewOrderedMap[livekit.ParticipantID, types.Peer]()
}

// Peers returns the peers in join order
func (r *Registry) Peers() []types.Peer {
	peers := make([]types.Peer, 0, r.peers.Len())
	for el := r.peers.Front(); el != nil; el = el.Next() {
		peers = append(peers, el.Value)
	}
	return peers
}

func clonePeer(peer types.Peer) types.Peer {
	c := types.Peer{ID: peer.ID}
	if peer.Metadata != nil {
		c.Metadata = make(map[string]string, len(peer.Metadata))
		for k, v := range peer.Metadata {
			c.Metadata[k] = v
		}
	}
	if peer.TrackIDToMetadata != nil {
		c.TrackIDToMetadata = make(map[livekit.TrackID]map[string]string, len(peer.TrackIDToMetadata))
		for trackID, md := range peer.TrackIDToMetadata {
			tmd := make(map[string]string, len(md))
			for k, v := range md {
				tmd[k] = v
			}
			c.TrackIDToMetadata[trackID] = tmd
		}
	}
	return c
}

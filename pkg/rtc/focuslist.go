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

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/roomview/pkg/rtc/types"
)

// ParticipantVideo is a video track together with the peer that owns it.
// Entries are treated as immutable once they are in a FocusList, changes
// produce a new entry so that published snapshots never change under a reader.
type ParticipantVideo struct {
	ID              livekit.TrackID
	PeerID          livekit.ParticipantID
	Track           types.Track
	IsScreenSharing bool
	Mirror          bool
}

func (v *ParticipantVideo) String() string {
	return fmt.Sprintf("ParticipantVideo{id: %s, peer: %s, screenSharing: %t}", v.ID, v.PeerID, v.IsScreenSharing)
}

func (v *ParticipantVideo) clone() *ParticipantVideo {
	c := *v
	return &c
}

// FocusList holds one primary video and an ordered sequence of the rest. An
// id is never present twice, and never both primary and in the sequence.
//
// FocusList is not safe for concurrent use, it is owned by the session ops queue.
type FocusList struct {
	localPeerID livekit.ParticipantID
	primary     *ParticipantVideo
	sequence    []*ParticipantVideo
}

func NewFocusList() *FocusList {
	return &FocusList{}
}

func (f *FocusList) SetLocalPeerID(peerID livekit.ParticipantID) {
	f.localPeerID = peerID
}

func (f *FocusList) Primary() *ParticipantVideo {
	return f.primary
}

// Sequence returns a copy of the non primary videos in display order
func (f *FocusList) Sequence() []*ParticipantVideo {
	seq := make([]*ParticipantVideo, len(f.sequence))
	copy(seq, f.sequence)
	return seq
}

func (f *FocusList) Len() int {
	n := len(f.sequence)
	if f.primary != nil {
		n++
	}
	return n
}

// Reset drops every video and makes primary the only one
func (f *FocusList) Reset(primary *ParticipantVideo) {
	f.primary = primary
	f.sequence = nil
}

func (f *FocusList) Clear() {
	f.primary = nil
	f.sequence = nil
	f.localPeerID = ""
}

func (f *FocusList) FindByID(id livekit.TrackID) (*ParticipantVideo, bool) {
	if f.primary != nil && f.primary.ID == id {
		return f.primary, true
	}
	if idx := f.indexOf(id); idx >= 0 {
		return f.sequence[idx], true
	}
	return nil, false
}

// Add appends a video. A local primary is pushed to the front of the
// sequence to make room for the new video.
func (f *FocusList) Add(video *ParticipantVideo) error {
	if _, ok := f.FindByID(video.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVideo, video.ID)
	}

	if f.primary != nil && f.isLocal(f.primary) {
		f.sequence = insertAt(f.sequence, 0, f.primary)
		f.primary = video
		return nil
	}

	f.sequence = append(f.sequence, video)
	return nil
}

// Remove returns false when no video has the id. Removing the primary
// promotes the head of the sequence.
func (f *FocusList) Remove(id livekit.TrackID) bool {
	if f.primary != nil && f.primary.ID == id {
		if len(f.sequence) == 0 {
			f.primary = nil
			return true
		}
		f.primary = f.sequence[0]
		f.sequence = removeAt(f.sequence, 0)
		return true
	}

	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}
	f.sequence = removeAt(f.sequence, idx)
	return true
}

// Focus makes video the primary. The outgoing primary goes to the head of the
// sequence when either side is local, otherwise it goes second so whatever
// is first stays first.
func (f *FocusList) Focus(video *ParticipantVideo) bool {
	if f.primary != nil && f.primary.ID == video.ID {
		return false
	}

	if idx := f.indexOf(video.ID); idx >= 0 {
		f.sequence = removeAt(f.sequence, idx)
	}

	if outgoing := f.primary; outgoing != nil {
		pos := 0
		if !f.isLocal(video) && !f.isLocal(outgoing) && len(f.sequence) > 0 {
			pos = 1
		}
		f.sequence = insertAt(f.sequence, pos, outgoing)
	}
	f.primary = video
	return true
}

// Replace swaps the track of a video without moving it
func (f *FocusList) Replace(id livekit.TrackID, track types.Track) bool {
	return f.update(id, func(v *ParticipantVideo) {
		v.Track = track
	})
}

func (f *FocusList) SetMirror(id livekit.TrackID, mirror bool) bool {
	if v, ok := f.FindByID(id); !ok || v.Mirror == mirror {
		return false
	}
	return f.update(id, func(v *ParticipantVideo) {
		v.Mirror = mirror
	})
}

// RemoveByPeer removes every video owned by peerID, returning the removed ids
func (f *FocusList) RemoveByPeer(peerID livekit.ParticipantID) []livekit.TrackID {
	var ids []livekit.TrackID
	if f.primary != nil && f.primary.PeerID == peerID {
		ids = append(ids, f.primary.ID)
	}
	for _, v := range f.sequence {
		if v.PeerID == peerID {
			ids = append(ids, v.ID)
		}
	}
	for _, id := range ids {
		f.Remove(id)
	}
	return ids
}

func (f *FocusList) update(id livekit.TrackID, fn func(v *ParticipantVideo)) bool {
	if f.primary != nil && f.primary.ID == id {
		updated := f.primary.clone()
		fn(updated)
		f.primary = updated
		return true
	}
	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}
	updated := f.sequence[idx].clone()
	fn(updated)
	f.sequence[idx] = updated
	return true
}

func (f *FocusList) isLocal(v *ParticipantVideo) bool {
	return f.localPeerID != "" && v.PeerID == f.localPeerID
}

func (f *FocusList) indexOf(id livekit.TrackID) int {
	for i, v := range f.sequence {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func insertAt(seq []*ParticipantVideo, pos int, v *ParticipantVideo) []*ParticipantVideo {
	seq = append(seq, nil)
	copy(seq[pos+1:], seq[pos:])
	seq[pos] = v
	return seq
}

func removeAt(seq []*ParticipantVideo, pos int) []*ParticipantVideo {
	out := make([]*ParticipantVideo, 0, len(seq)-1)
	out = append(out, seq[:pos]...)
	return append(out, seq[pos+1:]...)
}

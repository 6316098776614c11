package signalling

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/testutils"
)

func newTestServer(t *testing.T, maxPeers int) (*Server, string) {
	t.Helper()

	s := NewServer(ServerParams{Logger: logger.GetLogger(), MaxPeersPerRoom: maxPeers})
	ts := httptest.NewServer(s)
	t.Cleanup(func() {
		s.Close()
		ts.Close()
	})
	return s, "ws" + strings.TrimPrefix(ts.URL, "http")
}

type testClient struct {
	t    *testing.T
	ws   *websocket.Conn
	conn *Conn
}

func dialRoom(t *testing.T, serverURL string, room string) *testClient {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(serverURL+"/rtc?room="+room, nil)
	require.NoError(t, err)
	c := &testClient{t: t, ws: ws, conn: NewConn(ws)}
	t.Cleanup(func() { _ = c.conn.Close() })
	return c
}

func (c *testClient) send(msgType MessageType, data interface{}) {
	c.t.Helper()

	msg, err := NewMessage(msgType, data)
	require.NoError(c.t, err)
	_, err = c.conn.WriteMessage(msg)
	require.NoError(c.t, err)
}

func (c *testClient) read() *Message {
	c.t.Helper()

	require.NoError(c.t, c.ws.SetReadDeadline(time.Now().Add(testutils.ConnectTimeout)))
	msg, _, err := c.conn.ReadMessage()
	require.NoError(c.t, err)
	return msg
}

// expect reads the next message and decodes it into v
func (c *testClient) expect(msgType MessageType, v interface{}) {
	c.t.Helper()

	msg := c.read()
	require.Equal(c.t, msgType, msg.Type, "payload: %s", string(msg.Data))
	if v != nil {
		require.NoError(c.t, msg.Decode(v))
	}
}

func (c *testClient) join(displayName string) JoinedResponse {
	c.t.Helper()

	c.send(MessageTypeJoin, JoinRequest{Metadata: map[string]string{types.MetadataKeyDisplayName: displayName}})
	res := JoinedResponse{}
	c.expect(MessageTypeJoined, &res)
	return res
}

func TestServerRelay(t *testing.T) {
	s, url := newTestServer(t, 0)

	alice := dialRoom(t, url, "room")
	aliceJoined := alice.join("alice")
	require.NotEmpty(t, aliceJoined.PeerID)
	require.Empty(t, aliceJoined.Peers)

	alice.send(MessageTypeTrackAdded, TrackAddedRequest{
		TrackID:  "TR_alice",
		Metadata: map[string]string{types.MetadataKeyType: types.TrackTypeCamera},
	})
	// messages of a connection are handled in order, the error confirms the track was stored
	alice.send("ping", nil)
	alice.expect(MessageTypeError, nil)

	bob := dialRoom(t, url, "room")
	bobJoined := bob.join("bob")
	require.Len(t, bobJoined.Peers, 1)
	require.Equal(t, aliceJoined.PeerID, bobJoined.Peers[0].ID)
	require.Equal(t, "alice", bobJoined.Peers[0].ToPeer().DisplayName())

	// existing tracks are replayed to the newcomer
	replayed := TracksAddedResponse{}
	bob.expect(MessageTypeTracksAdded, &replayed)
	require.Equal(t, aliceJoined.PeerID, replayed.PeerID)
	require.Contains(t, replayed.TrackIDToMetadata, livekit.TrackID("TR_alice"))

	peerJoined := PeerResponse{}
	alice.expect(MessageTypePeerJoined, &peerJoined)
	require.Equal(t, bobJoined.PeerID, peerJoined.Peer.ID)
	require.Equal(t, []livekit.ParticipantID{aliceJoined.PeerID, bobJoined.PeerID}, s.RoomPeers("room"))

	bob.send(MessageTypeUpdatePeerMetadata, UpdatePeerMetadataRequest{Metadata: map[string]string{types.MetadataKeyDisplayName: "robert"}})
	peerUpdated := PeerResponse{}
	alice.expect(MessageTypePeerUpdated, &peerUpdated)
	require.Equal(t, "robert", peerUpdated.Peer.ToPeer().DisplayName())

	alice.send(MessageTypeUpdateTrackMetadata, UpdateTrackMetadataRequest{
		TrackID:  "TR_alice",
		Metadata: map[string]string{types.MetadataKeyType: types.TrackTypeScreensharing},
	})
	trackUpdated := TrackUpdatedResponse{}
	bob.expect(MessageTypeTrackUpdated, &trackUpdated)
	require.Equal(t, types.TrackTypeScreensharing, trackUpdated.Metadata[types.MetadataKeyType])

	// leaving removes the tracks before the peer
	alice.send(MessageTypeLeave, nil)
	removed := TracksRemovedResponse{}
	bob.expect(MessageTypeTracksRemoved, &removed)
	require.Equal(t, []livekit.TrackID{"TR_alice"}, removed.TrackIDs)
	peerLeft := PeerResponse{}
	bob.expect(MessageTypePeerLeft, &peerLeft)
	require.Equal(t, aliceJoined.PeerID, peerLeft.Peer.ID)

	require.Equal(t, []livekit.ParticipantID{bobJoined.PeerID}, s.RoomPeers("room"))
}

func TestServerRooms(t *testing.T) {
	t.Run("rooms are isolated", func(t *testing.T) {
		s, url := newTestServer(t, 0)

		a := dialRoom(t, url, "a")
		a.join("alice")
		b := dialRoom(t, url, "b")
		res := b.join("bob")
		require.Empty(t, res.Peers)
		require.Len(t, s.RoomPeers("a"), 1)
		require.Len(t, s.RoomPeers("b"), 1)
	})

	t.Run("full room rejects join", func(t *testing.T) {
		_, url := newTestServer(t, 1)

		alice := dialRoom(t, url, "room")
		alice.join("alice")

		bob := dialRoom(t, url, "room")
		bob.send(MessageTypeJoin, JoinRequest{Metadata: map[string]string{types.MetadataKeyDisplayName: "bob"}})
		res := JoinErrorResponse{}
		bob.expect(MessageTypeJoinError, &res)
		require.Equal(t, joinErrorRoomFull, res.Metadata[joinErrorReasonKey])
	})

	t.Run("outdated protocol version rejects join", func(t *testing.T) {
		s := NewServer(ServerParams{Logger: logger.GetLogger(), MinProtocolVersion: "1.1"})
		ts := httptest.NewServer(s)
		t.Cleanup(func() {
			s.Close()
			ts.Close()
		})
		url := "ws" + strings.TrimPrefix(ts.URL, "http")

		for _, version := range []string{"", "1.0.3", "not a version"} {
			c := dialRoom(t, url, "room")
			c.send(MessageTypeJoin, JoinRequest{Version: version})
			res := JoinErrorResponse{}
			c.expect(MessageTypeJoinError, &res)
			require.Equal(t, joinErrorUnsupportedVersion, res.Metadata[joinErrorReasonKey], "version %q", version)
		}

		c := dialRoom(t, url, "room")
		c.send(MessageTypeJoin, JoinRequest{Version: ProtocolVersion})
		c.expect(MessageTypeJoined, nil)
		require.Len(t, s.RoomPeers("room"), 1)
	})

	t.Run("room is required", func(t *testing.T) {
		_, url := newTestServer(t, 0)

		res, err := http.Get("http" + strings.TrimPrefix(url, "ws") + "/rtc")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("empty room is removed", func(t *testing.T) {
		s, url := newTestServer(t, 0)

		alice := dialRoom(t, url, "room")
		alice.join("alice")
		require.NoError(t, alice.conn.Close())

		testutils.WithTimeout(t, func() string {
			if peers := s.RoomPeers("room"); peers != nil {
				return "room still has peers"
			}
			return ""
		})
	})
}

func TestServerErrors(t *testing.T) {
	_, url := newTestServer(t, 0)
	c := dialRoom(t, url, "room")

	c.send(MessageTypeTrackAdded, TrackAddedRequest{TrackID: "TR_a"})
	res := ErrorResponse{}
	c.expect(MessageTypeError, &res)
	require.Equal(t, "not joined", res.Message)

	c.join("alice")
	c.send(MessageTypeJoin, JoinRequest{})
	c.expect(MessageTypeError, &res)
	require.Equal(t, "already joined", res.Message)

	c.send("bogus", nil)
	c.expect(MessageTypeError, &res)
	require.Contains(t, res.Message, "bogus")

	c.send(MessageTypeUpdateTrackMetadata, UpdateTrackMetadataRequest{TrackID: "TR_unknown"})
	c.expect(MessageTypeError, &res)
	require.Contains(t, res.Message, "TR_unknown")

	require.NoError(t, c.ws.WriteMessage(websocket.TextMessage, []byte("{not json")))
	c.expect(MessageTypeError, &res)
	require.Equal(t, "invalid message", res.Message)
}

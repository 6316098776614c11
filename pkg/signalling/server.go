package signalling

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/frostbyte73/core"
	"github.com/gorilla/websocket"
	goversion "github.com/hashicorp/go-version"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"
	"github.com/livekit/protocol/utils"
)

const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
	sendBufferSize = 64

	joinErrorReasonKey = "reason"
	joinErrorRoomFull  = "room is full"

	joinErrorUnsupportedVersion = "unsupported protocol version"
)

type ServerParams struct {
	Logger logger.Logger
	// MaxPeersPerRoom rejects joins once a room is full, 0 is unlimited
	MaxPeersPerRoom int
	// MinProtocolVersion rejects joins from clients announcing an older
	// protocol version, empty accepts every client
	MinProtocolVersion string
}

// Server is a minimal room server relaying peer and track announcements
// between the clients connected to a room.
type Server struct {
	params     ServerParams
	logger     logger.Logger
	upgrader   websocket.Upgrader
	minVersion *goversion.Version

	lock  sync.Mutex
	rooms map[string]*serverRoom
	peers map[*serverPeer]struct{}

	closed core.Fuse
}

type serverRoom struct {
	name  string
	peers *orderedmap.OrderedMap[livekit.ParticipantID, *serverPeer]
}

type serverPeer struct {
	id       livekit.ParticipantID
	roomName string
	conn     *websocket.Conn
	logger   logger.Logger

	// guarded by Server.lock
	send     chan *Message
	metadata map[string]string
	tracks   *orderedmap.OrderedMap[livekit.TrackID, map[string]string]
	joined   bool
	left     bool
}

func NewServer(params ServerParams) *Server {
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	s := &Server{
		params: params,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		rooms: make(map[string]*serverRoom),
		peers: make(map[*serverPeer]struct{}),
	}
	if params.MinProtocolVersion != "" {
		v, err := goversion.NewVersion(params.MinProtocolVersion)
		if err != nil {
			s.logger.Warnw("ignoring invalid minimum protocol version", err, "version", params.MinProtocolVersion)
		} else {
			s.minVersion = v
		}
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.closed.IsBroken() {
		http.Error(w, "server is closed", http.StatusServiceUnavailable)
		return
	}
	roomName := r.URL.Query().Get("room")
	if roomName == "" {
		http.Error(w, "room is required", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already responded
		s.logger.Warnw("could not upgrade websocket connection", err)
		return
	}

	id := livekit.ParticipantID(utils.NewGuid(utils.ParticipantPrefix))
	p := &serverPeer{
		id:       id,
		roomName: roomName,
		conn:     conn,
		logger:   s.logger.WithValues("room", roomName, "peerID", id),
		send:     make(chan *Message, sendBufferSize),
		tracks:   orderedmap.NewOrderedMap[livekit.TrackID, map[string]string](),
	}

	s.lock.Lock()
	s.peers[p] = struct{}{}
	s.lock.Unlock()

	p.logger.Debugw("peer connected", "remote", r.RemoteAddr)
	go s.writePump(p)
	s.readPump(p)
}

// Close disconnects every peer, connections are refused afterwards
func (s *Server) Close() {
	s.closed.Break()

	s.lock.Lock()
	defer s.lock.Unlock()
	for p := range s.peers {
		_ = p.conn.Close()
	}
}

// RoomPeers lists the peers that joined a room, in join order
func (s *Server) RoomPeers(roomName string) []livekit.ParticipantID {
	s.lock.Lock()
	defer s.lock.Unlock()

	room, ok := s.rooms[roomName]
	if !ok {
		return nil
	}
	return room.peers.Keys()
}

func (s *Server) readPump(p *serverPeer) {
	defer func() {
		s.removePeer(p)
		_ = p.conn.Close()
	}()

	p.conn.SetReadLimit(maxMessageSize)
	_ = p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := p.conn.ReadMessage()
		if err != nil {
			if !IsWebSocketCloseError(err) {
				p.logger.Warnw("error reading from websocket", err)
			}
			return
		}

		msg := &Message{}
		if err := json.Unmarshal(payload, msg); err != nil {
			s.lock.Lock()
			s.sendError(p, "invalid message")
			s.lock.Unlock()
			continue
		}
		if s.handleMessage(p, msg) {
			return
		}
	}
}

func (s *Server) writePump(p *serverPeer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := p.conn.WriteJSON(msg); err != nil {
				p.logger.Debugw("could not write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage returns true once the peer has left
func (s *Server) handleMessage(p *serverPeer, msg *Message) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if msg.Type == MessageTypeLeave {
		return true
	}
	if msg.Type == MessageTypeJoin {
		s.handleJoin(p, msg)
		return false
	}
	if !p.joined {
		s.sendError(p, "not joined")
		return false
	}

	room := s.rooms[p.roomName]
	switch msg.Type {
	case MessageTypeTrackAdded:
		req := TrackAddedRequest{}
		if err := msg.Decode(&req); err != nil {
			s.sendError(p, err.Error())
			return false
		}
		p.tracks.Set(req.TrackID, req.Metadata)
		s.broadcast(room, p, MessageTypeTracksAdded, TracksAddedResponse{
			PeerID:            p.id,
			TrackIDToMetadata: map[livekit.TrackID]map[string]string{req.TrackID: req.Metadata},
		})

	case MessageTypeTrackRemoved:
		req := TrackRemovedRequest{}
		if err := msg.Decode(&req); err != nil {
			s.sendError(p, err.Error())
			return false
		}
		if p.tracks.Delete(req.TrackID) {
			s.broadcast(room, p, MessageTypeTracksRemoved, TracksRemovedResponse{
				PeerID:   p.id,
				TrackIDs: []livekit.TrackID{req.TrackID},
			})
		}

	case MessageTypeUpdatePeerMetadata:
		req := UpdatePeerMetadataRequest{}
		if err := msg.Decode(&req); err != nil {
			s.sendError(p, err.Error())
			return false
		}
		p.metadata = req.Metadata
		s.broadcast(room, p, MessageTypePeerUpdated, PeerResponse{Peer: p.toWire()})

	case MessageTypeUpdateTrackMetadata:
		req := UpdateTrackMetadataRequest{}
		if err := msg.Decode(&req); err != nil {
			s.sendError(p, err.Error())
			return false
		}
		if _, ok := p.tracks.Get(req.TrackID); !ok {
			s.sendError(p, "unknown track "+string(req.TrackID))
			return false
		}
		p.tracks.Set(req.TrackID, req.Metadata)
		s.broadcast(room, p, MessageTypeTrackUpdated, TrackUpdatedResponse{
			PeerID:   p.id,
			TrackID:  req.TrackID,
			Metadata: req.Metadata,
		})

	default:
		s.sendError(p, "unsupported message "+string(msg.Type))
	}
	return false
}

func (s *Server) isSupported(clientVersion string) bool {
	if s.minVersion == nil {
		return true
	}
	v, err := goversion.NewVersion(clientVersion)
	if err != nil {
		return false
	}
	return !v.LessThan(s.minVersion)
}

func (s *Server) handleJoin(p *serverPeer, msg *Message) {
	if p.joined {
		s.sendError(p, "already joined")
		return
	}
	req := JoinRequest{}
	if err := msg.Decode(&req); err != nil {
		s.sendError(p, err.Error())
		return
	}

	if !s.isSupported(req.Version) {
		p.logger.Infow("rejecting join, unsupported protocol version", "version", req.Version, "minVersion", s.minVersion)
		s.enqueue(p, MessageTypeJoinError, JoinErrorResponse{
			Metadata: map[string]string{joinErrorReasonKey: joinErrorUnsupportedVersion},
		})
		return
	}

	room, ok := s.rooms[p.roomName]
	if ok && s.params.MaxPeersPerRoom > 0 && room.peers.Len() >= s.params.MaxPeersPerRoom {
		p.logger.Infow("rejecting join, room is full", "maxPeers", s.params.MaxPeersPerRoom)
		s.enqueue(p, MessageTypeJoinError, JoinErrorResponse{
			Metadata: map[string]string{joinErrorReasonKey: joinErrorRoomFull},
		})
		return
	}
	if !ok {
		room = &serverRoom{
			name:  p.roomName,
			peers: orderedmap.NewOrderedMap[livekit.ParticipantID, *serverPeer](),
		}
		s.rooms[p.roomName] = room
	}

	others := make([]Peer, 0, room.peers.Len())
	for el := room.peers.Front(); el != nil; el = el.Next() {
		others = append(others, el.Value.toWire())
	}

	p.metadata = req.Metadata
	p.joined = true
	room.peers.Set(p.id, p)
	p.logger.Infow("peer joined", "numPeers", room.peers.Len())

	s.enqueue(p, MessageTypeJoined, JoinedResponse{PeerID: p.id, Peers: others})
	// tracks published before the join are replayed to the newcomer
	for _, other := range others {
		if len(other.TrackIDToMetadata) == 0 {
			continue
		}
		s.enqueue(p, MessageTypeTracksAdded, TracksAddedResponse{
			PeerID:            other.ID,
			TrackIDToMetadata: other.TrackIDToMetadata,
		})
	}
	s.broadcast(room, p, MessageTypePeerJoined, PeerResponse{Peer: p.toWire()})
}

func (s *Server) removePeer(p *serverPeer) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if p.left {
		return
	}
	p.left = true
	delete(s.peers, p)
	close(p.send)

	if !p.joined {
		return
	}
	room, ok := s.rooms[p.roomName]
	if !ok {
		return
	}
	room.peers.Delete(p.id)
	if p.tracks.Len() > 0 {
		s.broadcast(room, p, MessageTypeTracksRemoved, TracksRemovedResponse{
			PeerID:   p.id,
			TrackIDs: p.tracks.Keys(),
		})
	}
	s.broadcast(room, p, MessageTypePeerLeft, PeerResponse{Peer: p.toWire()})
	if room.peers.Len() == 0 {
		delete(s.rooms, room.name)
	}
	p.logger.Infow("peer left", "numPeers", room.peers.Len())
}

// broadcast sends to every peer of the room except the sender, callers hold the lock
func (s *Server) broadcast(room *serverRoom, from *serverPeer, msgType MessageType, data interface{}) {
	for el := room.peers.Front(); el != nil; el = el.Next() {
		if el.Value == from {
			continue
		}
		s.enqueue(el.Value, msgType, data)
	}
}

func (s *Server) sendError(p *serverPeer, message string) {
	s.enqueue(p, MessageTypeError, ErrorResponse{Message: message})
}

// enqueue never blocks, a peer that cannot keep up is disconnected
func (s *Server) enqueue(p *serverPeer, msgType MessageType, data interface{}) {
	if p.left {
		return
	}
	msg, err := NewMessage(msgType, data)
	if err != nil {
		p.logger.Errorw("could not encode message", err, "type", msgType)
		return
	}

	select {
	case p.send <- msg:
	default:
		p.logger.Warnw("send buffer full, disconnecting peer", nil, "type", msgType)
		_ = p.conn.Close()
	}
}

func (p *serverPeer) toWire() Peer {
	tracks := make(map[livekit.TrackID]map[string]string, p.tracks.Len())
	for el := p.tracks.Front(); el != nil; el = el.Next() {
		tracks[el.Key] = el.Value
	}
	return Peer{
		ID:                p.id,
		Metadata:          p.metadata,
		TrackIDToMetadata: tracks,
	}
}

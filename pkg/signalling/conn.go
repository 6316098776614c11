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

package signalling

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/livekit/roomview/pkg/telemetry/prometheus"
)

const (
	pingFrequency = 10 * time.Second
	pingTimeout   = 2 * time.Second

	directionIncoming = "incoming"
	directionOutgoing = "outgoing"
)

// WebsocketConn is the subset of *websocket.Conn used for signalling
type WebsocketConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Conn exchanges JSON encoded signalling messages over a websocket. Writes
// are serialized, reads must happen from a single goroutine.
type Conn struct {
	conn WebsocketConn
	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

func NewConn(conn WebsocketConn) *Conn {
	c := &Conn{
		conn: conn,
		done: make(chan struct{}),
	}
	go c.pingWorker()
	return c
}

func (c *Conn) Close() error {
	c.once.Do(func() {
		close(c.done)
	})
	return c.conn.Close()
}

func (c *Conn) ReadMessage() (*Message, int, error) {
	for {
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			return nil, 0, err
		}

		switch messageType {
		case websocket.TextMessage, websocket.BinaryMessage:
			msg := &Message{}
			if err := json.Unmarshal(payload, msg); err != nil {
				prometheus.RecordSignalMessage(directionIncoming, "unknown", "failure")
				return nil, len(payload), fmt.Errorf("%w: %v", ErrInvalidMessage, err)
			}
			prometheus.RecordSignalMessage(directionIncoming, string(msg.Type), "success")
			return msg, len(payload), nil
		case websocket.PingMessage:
			continue
		default:
			return nil, len(payload), ErrUnexpectedMessageType
		}
	}
}

func (c *Conn) WriteMessage(msg *Message) (int, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.conn.WriteMessage(websocket.TextMessage, payload)
	if err != nil {
		prometheus.RecordSignalMessage(directionOutgoing, string(msg.Type), "failure")
		return 0, err
	}
	prometheus.RecordSignalMessage(directionOutgoing, string(msg.Type), "success")
	return len(payload), nil
}

func (c *Conn) pingWorker() {
	ticker := time.NewTicker(pingFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, []byte(""), time.Now().Add(pingTimeout))
			c.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// IsWebSocketCloseError checks that error is normal/expected closure
func IsWebSocketCloseError(err error) bool {
	return errors.Is(err, io.EOF) ||
		strings.HasSuffix(err.Error(), "use of closed network connection") ||
		strings.HasSuffix(err.Error(), "connection reset by peer") ||
		websocket.IsCloseError(
			err,
			websocket.CloseAbnormalClosure,
			websocket.CloseGoingAway,
			websocket.CloseNormalClosure,
			websocket.CloseNoStatusReceived,
		)
}

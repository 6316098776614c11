package main

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/livekit/roomview/pkg/config"
	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/testutils"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.buf.String()
}

func startSignalServer(t *testing.T) string {
	t.Helper()

	conf, err := config.NewConfig("", true, nil, nil)
	require.NoError(t, err)
	s := NewSignalServer(conf, newSignallingServer(conf))
	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(func() {
		s.signal.Close()
		ts.Close()
	})
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func newTestClient(t *testing.T, url string, name string) (*DemoClient, *syncBuffer) {
	t.Helper()

	conf, err := config.NewConfig("", true, nil, nil)
	require.NoError(t, err)
	conf.Signal.URL = url
	conf.Signal.Room = "demo-test"
	conf.Participant.DisplayName = name
	conf.Video.MirrorUpdateDelay = 10 * time.Millisecond
	require.NoError(t, conf.Validate())

	engine := newEngine(conf)
	session, err := newSession(conf, engine)
	require.NoError(t, err)

	out := &syncBuffer{}
	return NewDemoClient(conf, engine, session, NewRenderer(out)), out
}

func waitForOutput(t *testing.T, out *syncBuffer, what string) {
	t.Helper()

	testutils.WithTimeout(t, func() string {
		if !strings.Contains(out.String(), what) {
			return "output does not contain " + what
		}
		return ""
	})
}

func TestDemoClient(t *testing.T) {
	url := startSignalServer(t)

	client, out := newTestClient(t, url, "alice")
	in, commands := io.Pipe()
	t.Cleanup(func() { _ = commands.Close() })

	done := make(chan error, 1)
	go func() {
		done <- client.Run(context.Background(), in)
	}()

	waitForOutput(t, out, "["+string(rtc.EventTypeJoinSuccess)+"]")
	waitForOutput(t, out, rtc.LocalPeerName)

	_, err := io.WriteString(commands, "audio\n")
	require.NoError(t, err)
	waitForOutput(t, out, "[enable_audio]")

	_, err = io.WriteString(commands, "quit\n")
	require.NoError(t, err)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(testutils.ConnectTimeout):
		t.Fatal("client did not quit")
	}

	require.Contains(t, out.String(), "[disconnect] closed")
	require.True(t, client.session.Snapshot().Closed)
}

func TestDemoClientCancelled(t *testing.T) {
	url := startSignalServer(t)

	client, out := newTestClient(t, url, "bob")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		// closed input keeps the client running until cancelled
		done <- client.Run(ctx, strings.NewReader(""))
	}()

	waitForOutput(t, out, "["+string(rtc.EventTypeJoinSuccess)+"]")
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(testutils.ConnectTimeout):
		t.Fatal("client did not stop")
	}
}

package main

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/roomview/pkg/config"
)

func TestSignalServer(t *testing.T) {
	url := startSignalServer(t)
	httpURL := "http" + strings.TrimPrefix(url, "ws")

	t.Run("health", func(t *testing.T) {
		res, err := http.Get(httpURL + "/")
		require.NoError(t, err)
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, "OK", string(body))
	})

	t.Run("cors", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, httpURL+"/rtc", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://example.com")
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		// no room and no upgrade
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
		require.Equal(t, "https://example.com", res.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestSignalServerLifecycle(t *testing.T) {
	conf, err := config.NewConfig("server:\n  port: 0", true, nil, nil)
	require.NoError(t, err)
	s, err := InitializeServer(conf)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()
	s.Stop()
	require.NoError(t, <-done)
	require.False(t, s.IsRunning())
}

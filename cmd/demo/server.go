package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/frostbyte73/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/urfave/negroni/v3"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/config"
	"github.com/livekit/roomview/pkg/signalling"
)

const shutdownTimeout = 5 * time.Second

// SignalServer serves the loopback signalling endpoint and, when configured,
// the prometheus endpoint
type SignalServer struct {
	config     *config.Config
	signal     *signalling.Server
	httpServer *http.Server
	promServer *http.Server
	running    atomic.Bool
	done       core.Fuse
}

func newSignallingServer(conf *config.Config) *signalling.Server {
	return signalling.NewServer(signalling.ServerParams{
		Logger:             logger.GetLogger(),
		MaxPeersPerRoom:    conf.Server.MaxPeersPerRoom,
		MinProtocolVersion: conf.Server.MinProtocolVersion,
	})
}

func NewSignalServer(conf *config.Config, signal *signalling.Server) *SignalServer {
	s := &SignalServer{
		config: conf,
		signal: signal,
	}

	middlewares := []negroni.Handler{
		cors.New(cors.Options{
			AllowOriginFunc: func(origin string) bool {
				return true
			},
			AllowedHeaders: []string{"*"},
		}),
	}

	mux := http.NewServeMux()
	mux.Handle("/rtc", signal)
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	s.httpServer = &http.Server{
		Addr:    conf.ServerAddress(),
		Handler: configureMiddlewares(mux, middlewares...),
	}

	if conf.PrometheusPort > 0 {
		s.promServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", conf.PrometheusPort),
			Handler: promhttp.Handler(),
		}
	}
	return s
}

func (s *SignalServer) IsRunning() bool {
	return s.running.Load()
}

func (s *SignalServer) Start() error {
	if s.running.Swap(true) {
		return errors.New("already running")
	}
	defer s.running.Store(false)

	// ensure we could listen
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	var promLn net.Listener
	if s.promServer != nil {
		if promLn, err = net.Listen("tcp", s.promServer.Addr); err != nil {
			_ = ln.Close()
			return err
		}
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		logger.Infow("starting signalling server", "address", s.httpServer.Addr)
		return serve(s.httpServer, ln)
	})
	if s.promServer != nil {
		eg.Go(func() error {
			logger.Infow("starting prometheus server", "address", s.promServer.Addr)
			return serve(s.promServer, promLn)
		})
	}

	select {
	case <-s.done.Watch():
	case <-ctx.Done():
	}

	s.signal.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.httpServer.Shutdown(shutdownCtx)
	if s.promServer != nil {
		_ = s.promServer.Shutdown(shutdownCtx)
	}

	return eg.Wait()
}

func (s *SignalServer) Stop() {
	s.done.Break()
}

func serve(server *http.Server, ln net.Listener) error {
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func configureMiddlewares(handler http.Handler, middlewares ...negroni.Handler) *negroni.Negroni {
	n := negroni.New()
	n.Use(negroni.NewRecovery())
	for _, m := range middlewares {
		n.Use(m)
	}
	n.UseHandler(handler)
	return n
}

package main

import (
	"bufio"
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/config"
	"github.com/livekit/roomview/pkg/rtc"
	"github.com/livekit/roomview/pkg/rtc/types"
	"github.com/livekit/roomview/pkg/signalling"
)

const rendererKey = "renderer"

var errQuit = errors.New("quit")

// DemoClient joins one room and drives the session from terminal commands
type DemoClient struct {
	config   *config.Config
	engine   *signalling.Engine
	session  *rtc.Session
	renderer *Renderer
}

func newEngine(conf *config.Config) *signalling.Engine {
	duration := conf.ScreenShare.Duration
	return signalling.NewEngine(signalling.EngineParams{
		Logger:    logger.GetLogger(),
		URL:       conf.Signal.URL,
		Room:      conf.Signal.Room,
		AudioFile: conf.Audio.File,
		VideoFile: conf.Video.File,
		NewBroadcast: func() types.BroadcastSource {
			return rtc.NewSyntheticBroadcast(logger.GetLogger(), duration)
		},
	})
}

func newSession(conf *config.Config, engine *signalling.Engine) (*rtc.Session, error) {
	session, err := rtc.NewSession(rtc.SessionParams{
		Logger:      logger.GetLogger(),
		Engine:      engine,
		DisplayName: conf.Participant.DisplayName,
		Video: types.VideoParameters{
			Width:  conf.Video.Width,
			Height: conf.Video.Height,
			FPS:    conf.Video.FPS,
		},
		Screencast: types.VideoParameters{
			Width:  conf.ScreenShare.Width,
			Height: conf.ScreenShare.Height,
			FPS:    conf.ScreenShare.FPS,
		},
		MirrorUpdateDelay:     conf.Video.MirrorUpdateDelay,
		SweepTracksOnPeerLeft: conf.Room.SweepTracksOnPeerLeft,
	})
	if err != nil {
		engine.Close()
		return nil, err
	}
	engine.SetEventSink(session)
	return session, nil
}

func NewDemoClient(conf *config.Config, engine *signalling.Engine, session *rtc.Session, renderer *Renderer) *DemoClient {
	return &DemoClient{
		config:   conf,
		engine:   engine,
		session:  session,
		renderer: renderer,
	}
}

// Run joins the room and handles commands read from in until quit, the
// context is cancelled or the session terminates
func (c *DemoClient) Run(ctx context.Context, in io.Reader) error {
	c.session.OnStateChanged(rendererKey, c.renderer.OnStateChanged)
	c.renderer.Render(rtc.StateChange{Action: "start", State: c.session.Snapshot()})

	defer c.shutdown()
	if err := c.session.Join(ctx); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)
	go readLines(ctx, in, lines)

	eg.Go(func() error {
		select {
		case <-c.session.Done():
			if err := c.session.Err(); err != nil {
				return err
			}
			return errQuit
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					// input closed, keep rendering until interrupted
					lines = nil
					continue
				}
				if quit := handleCommand(c.session, c.renderer, line); quit {
					return errQuit
				}
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (c *DemoClient) shutdown() {
	c.session.Disconnect()
	c.engine.Close()
	<-c.session.Done()
	c.session.RemoveObserver(rendererKey)
}

func readLines(ctx context.Context, in io.Reader, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warnw("could not read commands", err)
	}
}

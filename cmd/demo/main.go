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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/livekit/protocol/logger"
	"github.com/livekit/protocol/utils"

	"github.com/livekit/roomview/pkg/config"
	"github.com/livekit/roomview/pkg/telemetry/prometheus"
	"github.com/livekit/roomview/version"
)

var baseFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "path to roomview config file",
	},
	&cli.StringFlag{
		Name:    "config-body",
		Usage:   "roomview config in YAML, typically passed in as an environment var in a container",
		EnvVars: []string{"ROOMVIEW_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "url",
		Usage:   "signalling server url, ws://host:port",
		EnvVars: []string{"ROOMVIEW_URL"},
	},
	&cli.StringFlag{
		Name:  "room",
		Usage: "name of the room to join",
	},
	&cli.StringFlag{
		Name:  "name",
		Usage: "display name announced to the other peers",
	},
	&cli.StringFlag{
		Name:  "video-file",
		Usage: "ivf or h264 file published as the camera, a synthetic pattern is used by default",
	},
	&cli.StringFlag{
		Name:  "audio-file",
		Usage: "ogg file published as the microphone, silence is used by default",
	},
	&cli.StringFlag{
		Name:  "bind",
		Usage: "IP address the signalling server listens on",
	},
	&cli.UintFlag{
		Name:  "port",
		Usage: "port the signalling server listens on",
	},
	&cli.BoolFlag{
		Name:  "dev",
		Usage: "sets log-level to debug",
	},
	&cli.BoolFlag{
		Name:   "disable-strict-config",
		Usage:  "disables strict config parsing",
		Hidden: true,
	},
}

func main() {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, true)
	if err != nil {
		fmt.Println(err)
	}

	app := &cli.App{
		Name:        "roomview",
		Usage:       "joins a signalling room and renders the room view in the terminal",
		Description: "run without subcommands to join a room",
		Flags:       append(baseFlags, generatedFlags...),
		Action:      joinRoom,
		Commands: []*cli.Command{
			{
				Name:   "join",
				Usage:  "joins a room and renders the room view",
				Action: joinRoom,
			},
			{
				Name:   "serve",
				Usage:  "starts a loopback signalling server",
				Action: startServer,
			},
			{
				Name:   "help-verbose",
				Usage:  "prints app help, including all generated configuration flags",
				Action: helpVerbose,
			},
		},
		Version: version.Version,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getConfig(c *cli.Context) (*config.Config, error) {
	confString, err := config.GetConfigString(c.String("config"), c.String("config-body"))
	if err != nil {
		return nil, err
	}

	strictMode := true
	if c.Bool("disable-strict-config") {
		strictMode = false
	}

	conf, err := config.NewConfig(confString, strictMode, c, baseFlags)
	if err != nil {
		return nil, err
	}
	config.InitLoggerFromConfig(&conf.Logging)

	if conf.Development {
		logger.Infow("starting in development mode")
	}
	return conf, nil
}

func joinRoom(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	prometheus.Init(utils.NewGuid("CL_"))

	client, err := InitializeClient(conf)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	return client.Run(ctx, os.Stdin)
}

func startServer(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}

	prometheus.Init(utils.NewGuid("SV_"))

	server, err := InitializeServer(conf)
	if err != nil {
		return err
	}
	if urls, err := conf.AdvertisedURLs(); err != nil {
		logger.Warnw("could not determine signal urls", err)
	} else {
		logger.Infow("clients can join with", "urls", urls)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		sig := <-sigChan
		logger.Infow("exit requested, shutting down", "signal", sig)
		server.Stop()
	}()

	return server.Start()
}

func helpVerbose(c *cli.Context) error {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, false)
	if err != nil {
		return err
	}

	c.App.Flags = append(baseFlags, generatedFlags...)
	return cli.ShowAppHelp(c)
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Infow("exit requested, leaving room", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()
	return ctx, cancel
}

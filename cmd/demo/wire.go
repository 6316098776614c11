//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/livekit/roomview/pkg/config"
)

func InitializeClient(conf *config.Config) (*DemoClient, error) {
	wire.Build(
		newEngine,
		newSession,
		newRenderer,
		NewDemoClient,
	)
	return &DemoClient{}, nil
}

func InitializeServer(conf *config.Config) (*SignalServer, error) {
	wire.Build(
		newSignallingServer,
		NewSignalServer,
	)
	return &SignalServer{}, nil
}

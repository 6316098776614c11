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

package config

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/livekit/protocol/logger"
)

const (
	generatedCLIFlagUsage = "generated"
	envVarPrefix          = "ROOMVIEW"
)

var (
	ErrInvalidSignalURL = errors.New("signal url must use the ws or wss scheme")
	ErrRoomNotSet       = errors.New("room must be set")
	ErrInvalidVideo     = errors.New("video width, height and fps must be positive")
)

type Config struct {
	Development    bool              `yaml:"development,omitempty"`
	PrometheusPort uint32            `yaml:"prometheus_port,omitempty"`
	Signal         SignalConfig      `yaml:"signal,omitempty"`
	Participant    ParticipantConfig `yaml:"participant,omitempty"`
	Video          VideoConfig       `yaml:"video,omitempty"`
	Audio          AudioConfig       `yaml:"audio,omitempty"`
	ScreenShare    ScreenShareConfig `yaml:"screen_share,omitempty"`
	Room           RoomConfig        `yaml:"room,omitempty"`
	Server         ServerConfig      `yaml:"server,omitempty"`
	Logging        LoggingConfig     `yaml:"logging,omitempty"`
}

type SignalConfig struct {
	// URL of the signalling server, ws://host:port
	URL  string `yaml:"url,omitempty"`
	Room string `yaml:"room,omitempty"`
}

type ParticipantConfig struct {
	DisplayName string `yaml:"display_name,omitempty"`
}

type VideoConfig struct {
	Width  uint32 `yaml:"width,omitempty"`
	Height uint32 `yaml:"height,omitempty"`
	FPS    uint32 `yaml:"fps,omitempty"`
	// File plays an IVF or H.264 file instead of the synthetic camera
	File string `yaml:"file,omitempty"`
	// MirrorUpdateDelay is how long after a camera switch the local video mirroring follows
	MirrorUpdateDelay time.Duration `yaml:"mirror_update_delay,omitempty"`
}

type AudioConfig struct {
	// File plays an Ogg/Opus file instead of silence
	File string `yaml:"file,omitempty"`
}

type ScreenShareConfig struct {
	Width  uint32 `yaml:"width,omitempty"`
	Height uint32 `yaml:"height,omitempty"`
	FPS    uint32 `yaml:"fps,omitempty"`
	// Duration after which the synthetic broadcast ends by itself, 0 runs until stopped
	Duration time.Duration `yaml:"duration,omitempty"`
}

type RoomConfig struct {
	// SweepTracksOnPeerLeft removes the videos of a departed peer without
	// waiting for their track removed events
	SweepTracksOnPeerLeft bool `yaml:"sweep_tracks_on_peer_left,omitempty"`
}

type ServerConfig struct {
	BindAddress     string `yaml:"bind_address,omitempty"`
	Port            uint32 `yaml:"port,omitempty"`
	MaxPeersPerRoom int    `yaml:"max_peers_per_room,omitempty"`

	// MinProtocolVersion rejects clients announcing an older protocol
	MinProtocolVersion string `yaml:"min_protocol_version,omitempty"`
}

type LoggingConfig struct {
	logger.Config `yaml:",inline"`
	PionLevel     string `yaml:"pion_level,omitempty"`
}

var DefaultConfig = Config{
	Signal: SignalConfig{
		URL:  "ws://localhost:7880",
		Room: "demo",
	},
	Participant: ParticipantConfig{
		DisplayName: "guest",
	},
	Video: VideoConfig{
		Width:             640,
		Height:            480,
		FPS:               30,
		MirrorUpdateDelay: 200 * time.Millisecond,
	},
	ScreenShare: ScreenShareConfig{
		Width:    1280,
		Height:   720,
		FPS:      15,
		Duration: 30 * time.Second,
	},
	Room: RoomConfig{
		SweepTracksOnPeerLeft: true,
	},
	Server: ServerConfig{
		BindAddress: "127.0.0.1",
		Port:        7880,
	},
	Logging: LoggingConfig{
		PionLevel: "error",
	},
}

func NewConfig(confString string, strictMode bool, c *cli.Context, baseFlags []cli.Flag) (*Config, error) {
	// start with defaults
	marshalled, err := yaml.Marshal(&DefaultConfig)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err = yaml.Unmarshal(marshalled, &conf); err != nil {
		return nil, err
	}

	if confString != "" {
		decoder := yaml.NewDecoder(strings.NewReader(confString))
		decoder.KnownFields(strictMode)
		if err := decoder.Decode(&conf); err != nil {
			return nil, errors.Wrap(err, "could not parse config")
		}
	}

	if c != nil {
		if err := conf.updateFromCLI(c, baseFlags); err != nil {
			return nil, err
		}
	}

	// expand env vars in filenames
	if conf.Video.File, err = expandPath(conf.Video.File); err != nil {
		return nil, err
	}
	if conf.Audio.File, err = expandPath(conf.Audio.File); err != nil {
		return nil, err
	}

	if conf.Logging.Level == "" && conf.Development {
		conf.Logging.Level = "debug"
	}
	if conf.Logging.PionLevel != "" {
		if conf.Logging.ComponentLevels == nil {
			conf.Logging.ComponentLevels = map[string]string{}
		}
		conf.Logging.ComponentLevels["pion"] = conf.Logging.PionLevel
	}

	return &conf, nil
}

// Validate checks the settings needed to join a room
func (conf *Config) Validate() error {
	u, err := url.Parse(conf.Signal.URL)
	if err != nil {
		return errors.Wrap(err, "could not parse signal url")
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return ErrInvalidSignalURL
	}
	if conf.Signal.Room == "" {
		return ErrRoomNotSet
	}
	if conf.Video.Width == 0 || conf.Video.Height == 0 || conf.Video.FPS == 0 {
		return ErrInvalidVideo
	}
	return nil
}

func (conf *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", conf.Server.BindAddress, conf.Server.Port)
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return homedir.Expand(os.ExpandEnv(path))
}

// GetConfigString prefers an inline config body over the config file
func GetConfigString(configFile string, inConfigBody string) (string, error) {
	if inConfigBody != "" || configFile == "" {
		return inConfigBody, nil
	}

	outConfigBody, err := os.ReadFile(configFile)
	if err != nil {
		return "", err
	}

	return string(outConfigBody), nil
}

type configNode struct {
	TypeNode  reflect.Value
	TagPrefix string
}

// ToCLIFlagNames maps the yaml path of every scalar setting to its value,
// settings already covered by an explicit flag are skipped
func (conf *Config) ToCLIFlagNames(existingFlags []cli.Flag) map[string]reflect.Value {
	existingFlagNames := map[string]bool{}
	for _, flag := range existingFlags {
		for _, flagName := range flag.Names() {
			existingFlagNames[flagName] = true
		}
	}

	flagNames := map[string]reflect.Value{}
	var currNode configNode
	nodes := []configNode{{reflect.ValueOf(conf).Elem(), ""}}
	for len(nodes) > 0 {
		currNode, nodes = nodes[0], nodes[1:]
		for i := 0; i < currNode.TypeNode.NumField(); i++ {
			field := currNode.TypeNode.Type().Field(i)
			yamlTagArray := strings.SplitN(field.Tag.Get("yaml"), ",", 2)
			yamlTag := yamlTagArray[0]
			isInline := len(yamlTagArray) > 1 && yamlTagArray[1] == "inline"
			if (yamlTag == "" && (!isInline || currNode.TagPrefix == "")) || yamlTag == "-" {
				continue
			}
			yamlPath := yamlTag
			if currNode.TagPrefix != "" {
				if isInline {
					yamlPath = currNode.TagPrefix
				} else {
					yamlPath = fmt.Sprintf("%s.%s", currNode.TagPrefix, yamlTag)
				}
			}
			if existingFlagNames[yamlPath] {
				continue
			}

			value := currNode.TypeNode.Field(i)
			if value.Kind() == reflect.Struct {
				nodes = append(nodes, configNode{value, yamlPath})
			} else {
				flagNames[yamlPath] = value
			}
		}
	}

	return flagNames
}

// GenerateCLIFlags creates a flag for every scalar setting, named after its yaml path
func GenerateCLIFlags(existingFlags []cli.Flag, hidden bool) ([]cli.Flag, error) {
	blankConfig := &Config{}
	flags := make([]cli.Flag, 0)
	for name, value := range blankConfig.ToCLIFlagNames(existingFlags) {
		var flag cli.Flag
		envVar := fmt.Sprintf("%s_%s", envVarPrefix, strings.ToUpper(strings.ReplaceAll(name, ".", "_")))

		switch value.Kind() {
		case reflect.Bool:
			flag = &cli.BoolFlag{
				Name:   name,
				Usage:  generatedCLIFlagUsage,
				Hidden: hidden,
			}
		case reflect.String:
			flag = &cli.StringFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Int, reflect.Int32:
			flag = &cli.IntFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Int64:
			if value.Type() == reflect.TypeOf(time.Duration(0)) {
				flag = &cli.DurationFlag{
					Name:    name,
					EnvVars: []string{envVar},
					Usage:   generatedCLIFlagUsage,
					Hidden:  hidden,
				}
				break
			}
			flag = &cli.Int64Flag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Uint8, reflect.Uint16, reflect.Uint32:
			flag = &cli.UintFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Uint64:
			flag = &cli.Uint64Flag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Float32, reflect.Float64:
			flag = &cli.Float64Flag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Slice, reflect.Map, reflect.Struct, reflect.Ptr:
			// only configurable through yaml
			continue
		default:
			return flags, fmt.Errorf("cli flag generation unsupported for config type: %s is a %s", name, value.Kind().String())
		}

		flags = append(flags, flag)
	}

	return flags, nil
}

func (conf *Config) updateFromCLI(c *cli.Context, baseFlags []cli.Flag) error {
	generatedFlagNames := conf.ToCLIFlagNames(baseFlags)
	for flagName, configValue := range generatedFlagNames {
		if !c.IsSet(flagName) {
			continue
		}

		switch configValue.Kind() {
		case reflect.Bool:
			configValue.SetBool(c.Bool(flagName))
		case reflect.String:
			configValue.SetString(c.String(flagName))
		case reflect.Int, reflect.Int32:
			configValue.SetInt(int64(c.Int(flagName)))
		case reflect.Int64:
			if configValue.Type() == reflect.TypeOf(time.Duration(0)) {
				configValue.SetInt(int64(c.Duration(flagName)))
			} else {
				configValue.SetInt(c.Int64(flagName))
			}
		case reflect.Uint8, reflect.Uint16, reflect.Uint32:
			configValue.SetUint(uint64(c.Uint(flagName)))
		case reflect.Uint64:
			configValue.SetUint(c.Uint64(flagName))
		case reflect.Float32, reflect.Float64:
			configValue.SetFloat(c.Float64(flagName))
		case reflect.Slice, reflect.Map, reflect.Struct, reflect.Ptr:
			continue
		default:
			return fmt.Errorf("unsupported generated cli flag type for config: %s is a %s", flagName, configValue.Kind().String())
		}
	}

	if c.IsSet("dev") {
		conf.Development = c.Bool("dev")
	}
	if c.IsSet("url") {
		conf.Signal.URL = c.String("url")
	}
	if c.IsSet("room") {
		conf.Signal.Room = c.String("room")
	}
	if c.IsSet("name") {
		conf.Participant.DisplayName = c.String("name")
	}
	if c.IsSet("video-file") {
		conf.Video.File = c.String("video-file")
	}
	if c.IsSet("audio-file") {
		conf.Audio.File = c.String("audio-file")
	}
	if c.IsSet("bind") {
		conf.Server.BindAddress = c.String("bind")
	}
	if c.IsSet("port") {
		conf.Server.Port = uint32(c.Uint("port"))
	}
	return nil
}

func InitLoggerFromConfig(config *LoggingConfig) {
	logger.InitFromConfig(config.Config, "roomview")
}

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

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var (
	eventsProcessed    atomic.Uint64
	duplicateVideos    atomic.Uint64
	signalMessages     atomic.Uint64
	participantCurrent atomic.Int32
	videoCurrent       atomic.Int32
	screenShareActive  atomic.Bool

	promEventCounter       *prometheus.CounterVec
	promDuplicateVideos    prometheus.Counter
	promParticipantCurrent prometheus.Gauge
	promVideoCurrent       prometheus.Gauge
	promScreenShareActive  prometheus.Gauge
)

func initRoomStats(instanceID string) {
	promEventCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomviewNamespace,
		Subsystem:   "room",
		Name:        "events",
		ConstLabels: prometheus.Labels{"instance_id": instanceID},
	}, []string{"type"})
	promDuplicateVideos = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   roomviewNamespace,
		Subsystem:   "video",
		Name:        "duplicate_adds",
		ConstLabels: prometheus.Labels{"instance_id": instanceID},
	})
	promParticipantCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomviewNamespace,
		Subsystem:   "participant",
		Name:        "total",
		ConstLabels: prometheus.Labels{"instance_id": instanceID},
	})
	promVideoCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomviewNamespace,
		Subsystem:   "video",
		Name:        "total",
		ConstLabels: prometheus.Labels{"instance_id": instanceID},
	})
	promScreenShareActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomviewNamespace,
		Subsystem:   "screen_share",
		Name:        "active",
		ConstLabels: prometheus.Labels{"instance_id": instanceID},
	})

	prometheus.MustRegister(promEventCounter)
	prometheus.MustRegister(promDuplicateVideos)
	prometheus.MustRegister(promParticipantCurrent)
	prometheus.MustRegister(promVideoCurrent)
	prometheus.MustRegister(promScreenShareActive)
}

func RecordEvent(eventType string) {
	eventsProcessed.Inc()
	if initialized.Load() {
		promEventCounter.WithLabelValues(eventType).Inc()
	}
}

func RecordDuplicateVideo() {
	duplicateVideos.Inc()
	if initialized.Load() {
		promDuplicateVideos.Inc()
	}
}

// SetRoomView mirrors the latest room view into the gauges
func SetRoomView(participants int, videos int, screenSharing bool) {
	participantCurrent.Store(int32(participants))
	videoCurrent.Store(int32(videos))
	screenShareActive.Store(screenSharing)
	if !initialized.Load() {
		return
	}

	promParticipantCurrent.Set(float64(participants))
	promVideoCurrent.Set(float64(videos))
	if screenSharing {
		promScreenShareActive.Set(1)
	} else {
		promScreenShareActive.Set(0)
	}
}

type Stats struct {
	EventsProcessed   uint64
	DuplicateVideos   uint64
	SignalMessages    uint64
	Participants      int32
	Videos            int32
	ScreenShareActive bool
}

func GetStats() Stats {
	return Stats{
		EventsProcessed:   eventsProcessed.Load(),
		DuplicateVideos:   duplicateVideos.Load(),
		SignalMessages:    signalMessages.Load(),
		Participants:      participantCurrent.Load(),
		Videos:            videoCurrent.Load(),
		ScreenShareActive: screenShareActive.Load(),
	}
}

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

const (
	roomviewNamespace string = "roomview"
)

var (
	initialized atomic.Bool

	// MessageCounter counts signalling messages by direction, type and status
	MessageCounter *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Until it is
// called the Record functions only update the in-process counters.
func Init(instanceID string) {
	if initialized.Load() {
		return
	}

	MessageCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   roomviewNamespace,
			Subsystem:   "signal",
			Name:        "messages",
			ConstLabels: prometheus.Labels{"instance_id": instanceID},
		},
		[]string{"direction", "type", "status"},
	)
	prometheus.MustRegister(MessageCounter)

	initNodeStats(instanceID)
	initRoomStats(instanceID)
	initialized.Store(true)
}

func RecordSignalMessage(direction, msgType, status string) {
	signalMessages.Inc()
	if initialized.Load() {
		MessageCounter.WithLabelValues(direction, msgType, status).Inc()
	}
}

func initNodeStats(instanceID string) {
	labels := prometheus.Labels{"instance_id": instanceID}
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   roomviewNamespace,
			Subsystem:   "node",
			Name:        "cpu_load",
			ConstLabels: labels,
		},
		func() float64 {
			load, err := getCPULoad()
			if err != nil {
				return 0
			}
			return load
		},
	))
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   roomviewNamespace,
			Subsystem:   "node",
			Name:        "load_avg_1",
			ConstLabels: labels,
		},
		func() float64 {
			avg, err := getLoadAvg()
			if err != nil {
				return 0
			}
			return avg
		},
	))
}

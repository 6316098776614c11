//go:build !windows

/*
 * Copyright 2023 LiveKit, Inc
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package prometheus

import (
	"sync"

	"github.com/mackerelio/go-osstat/cpu"
	"github.com/mackerelio/go-osstat/loadavg"
)

var (
	cpuStatsLock              sync.Mutex
	lastCPUTotal, lastCPUIdle uint64
)

func getLoadAvg() (float64, error) {
	stats, err := loadavg.Get()
	if err != nil {
		return 0, err
	}
	return stats.Loadavg1, nil
}

// getCPULoad returns the share of busy cpu time since the previous call,
// the first call reports 0
func getCPULoad() (float64, error) {
	cpuInfo, err := cpu.Get()
	if err != nil {
		return 0, err
	}

	cpuStatsLock.Lock()
	defer cpuStatsLock.Unlock()

	var load float64
	if lastCPUTotal > 0 && lastCPUTotal < cpuInfo.Total {
		load = 1 - float64(cpuInfo.Idle-lastCPUIdle)/float64(cpuInfo.Total-lastCPUTotal)
	}
	lastCPUTotal = cpuInfo.Total
	lastCPUIdle = cpuInfo.Idle
	return load, nil
}
